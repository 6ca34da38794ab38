package migrations

func init() {
	// Converts user-facing text columns to utf8mb4 so 4-byte characters
	// (emoji, rare kanji) survive round trips. SQLite stores UTF-8 natively,
	// so this is a recorded no-op there. Irreversible: the previous charset
	// is not recorded, so Down is empty and rollback only removes the ledger
	// row.
	Register(Migration{
		Version:     "0012",
		Description: "Convert text columns to utf8mb4",
		Up: Statements{
			MySQL: []string{
				`ALTER TABLE conversations MODIFY main_concern TEXT CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci`,
				`ALTER TABLE messages MODIFY content TEXT CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci`,
				`ALTER TABLE consultation_memos MODIFY current_points TEXT CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci`,
				`ALTER TABLE consultation_memos MODIFY important_points TEXT CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci`,
				`ALTER TABLE documents MODIFY filename VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci NOT NULL`,
				`ALTER TABLE documents MODIFY content_text TEXT CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci`,
			},
		},
		Down: Statements{},
	})
}
