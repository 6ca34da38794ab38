package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/yochanchan/yorizo-back/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo data for local development",
	Long: `Seed inserts the demo user, company, financial statements and sample
conversations. Re-running is a no-op; set DISABLE_DEMO_SEED to skip
seeding entirely.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		db, _, cfg, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		if cfg.DisableDemoSeed {
			logger.Info("DISABLE_DEMO_SEED is set; skipping demo seed")
			return nil
		}

		return seed.Run(context.Background(), db, logger)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
