package migrations

func init() {
	Register(Migration{
		Version:     "0005",
		Description: "Add status to consultation_bookings",
		Up: Statements{
			MySQL: []string{
				`ALTER TABLE consultation_bookings ADD COLUMN status VARCHAR(20) NOT NULL DEFAULT 'pending'`,
				`ALTER TABLE consultation_bookings ALTER COLUMN status DROP DEFAULT`,
			},
			SQLite: []string{
				// SQLite keeps the column default; dropping it would require a
				// table rebuild for no behavioral gain.
				`ALTER TABLE consultation_bookings ADD COLUMN status VARCHAR(20) NOT NULL DEFAULT 'pending'`,
			},
		},
		Down: Statements{
			Common: []string{
				`ALTER TABLE consultation_bookings DROP COLUMN status`,
			},
		},
	})
}
