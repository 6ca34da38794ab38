package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yochanchan/yorizo-back/internal/database"
)

var stampCmd = &cobra.Command{
	Use:   "stamp <version|head>",
	Short: "Record migrations as applied without executing them",
	Long: `Stamp marks registered migrations up to and including the given
version as applied, without running their SQL. Use it to adopt an
existing database whose schema was reconciled by hand.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		db, target, _, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.Stamp(db, target.Dialect, args[0]); err != nil {
			return err
		}

		version, err := database.GetLatestSchemaVersion(db)
		if err != nil {
			return err
		}
		logger.Info("ledger stamped", "version", version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stampCmd)
}
