package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yochanchan/yorizo-back/internal/database/migrations"
)

var createDir string

var createCmd = &cobra.Command{
	Use:   "create <description>",
	Short: "Scaffold a new migration file",
	Long: `Create writes a new NNNN-description.go migration file with the next
free version number. Edit the generated Up and Down statement lists,
then rebuild.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description := strings.Join(args, " ")
		slug := slugify(description)
		if slug == "" {
			return fmt.Errorf("description %q produces an empty file name", description)
		}

		version, err := nextVersion()
		if err != nil {
			return err
		}

		filename := fmt.Sprintf("%s-%s.go", version, slug)
		path := filepath.Join(createDir, filename)
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}

		content := fmt.Sprintf(`package migrations

func init() {
	Register(Migration{
		Version:     %q,
		Description: %q,
		Up: Statements{
			Common: []string{},
		},
		Down: Statements{
			Common: []string{},
		},
	})
}
`, version, description)

		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write migration file: %w", err)
		}

		fmt.Printf("Created %s\n", path)
		return nil
	},
}

func nextVersion() (string, error) {
	latest := migrations.LatestRegisteredVersion()
	if latest == "" {
		return "0001", nil
	}
	n, err := strconv.Atoi(latest)
	if err != nil {
		return "", fmt.Errorf("latest version %q is not numeric", latest)
	}
	return fmt.Sprintf("%04d", n+1), nil
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

func init() {
	createCmd.Flags().StringVar(&createDir, "dir", "internal/database/migrations", "directory for the new migration file")
	rootCmd.AddCommand(createCmd)
}
