package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/statements-dev/statements/internal/config"
	"github.com/statements-dev/statements/internal/importer"
)

func newInitCommand() *cobra.Command {
	var name string
	var period string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new statements project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, period)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "company name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&period, "period", "", "reporting period label, e.g. 2025")

	return cmd
}

// inputTemplates maps each input file to its header row.
var inputTemplates = map[string]string{
	importer.FileTransactions: "date,account,category,amount,type\n",
	importer.FileBalanceBegin: "account,amount,type\n",
	importer.FileBalanceEnd:   "account,amount,type\n",
	importer.FileAccruals:     "account,amount,affects,balance_type\n",
	importer.FileDepreciation: "asset,cost,salvage,life_years,depreciation_expense\n",
	importer.FileInvesting:    "account,amount\n",
	importer.FileFinancing:    "account,amount\n",
}

func runInit(dir, name, period string) error {
	for _, d := range []string{importer.InputDir, "logs", "reports"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(name, period)
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Header-only templates so the expected columns are discoverable.
	for file, header := range inputTemplates {
		path := filepath.Join(dir, importer.InputDir, file)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte(header), 0o644); err != nil {
			return fmt.Errorf("writing template %s: %w", file, err)
		}
	}

	fmt.Printf("Initialized statements project in %s\n", dir)
	return nil
}
