package migrations

func init() {
	Register(Migration{
		Version:     "0007",
		Description: "Add meeting_url and line_contact to consultation_bookings",
		Up: Statements{
			Common: []string{
				`ALTER TABLE consultation_bookings ADD COLUMN meeting_url VARCHAR(512)`,
				`ALTER TABLE consultation_bookings ADD COLUMN line_contact VARCHAR(255)`,
			},
		},
		Down: Statements{
			Common: []string{
				`ALTER TABLE consultation_bookings DROP COLUMN line_contact`,
				`ALTER TABLE consultation_bookings DROP COLUMN meeting_url`,
			},
		},
	})
}
