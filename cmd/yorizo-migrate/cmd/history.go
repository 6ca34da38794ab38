package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yochanchan/yorizo-back/internal/database"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List applied migrations, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, target, _, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.EnsureLedger(db, target.Dialect); err != nil {
			return err
		}

		applied, err := database.GetAppliedMigrations(db)
		if err != nil {
			return err
		}
		if len(applied) == 0 {
			fmt.Println("No migrations applied.")
			return nil
		}

		for _, m := range applied {
			fmt.Printf("%s  %s  %s\n", m.Version, m.AppliedAt.Format(time.RFC3339), m.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
