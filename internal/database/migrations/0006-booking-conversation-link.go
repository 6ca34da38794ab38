package migrations

func init() {
	Register(Migration{
		Version:     "0006",
		Description: "Link consultation_bookings to conversations",
		Up: Statements{
			Common: []string{
				`ALTER TABLE consultation_bookings ADD COLUMN conversation_id VARCHAR(36)`,
			},
			MySQL: []string{
				`ALTER TABLE consultation_bookings
					ADD CONSTRAINT fk_consultation_bookings_conversation
					FOREIGN KEY (conversation_id) REFERENCES conversations (id)`,
			},
		},
		Down: Statements{
			// Dialect-specific on both sides: MySQL must drop the constraint
			// before the column.
			MySQL: []string{
				`ALTER TABLE consultation_bookings DROP FOREIGN KEY fk_consultation_bookings_conversation`,
				`ALTER TABLE consultation_bookings DROP COLUMN conversation_id`,
			},
			SQLite: []string{
				`ALTER TABLE consultation_bookings DROP COLUMN conversation_id`,
			},
		},
	})
}
