package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/statements-dev/statements/internal/amount"
	"github.com/statements-dev/statements/internal/config"
	"github.com/statements-dev/statements/internal/importer"
	"github.com/statements-dev/statements/internal/report"
	"github.com/statements-dev/statements/internal/statements"
	"github.com/statements-dev/statements/internal/warnlog"
)

func newGenerateCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the four financial reports from the project's input CSVs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runGenerate(absDir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")

	return cmd
}

func runGenerate(dir string) error {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return err
	}

	var coercer amount.Coercer
	inputs := importer.LoadAll(dir, &coercer)

	bundle := statements.Generate(inputs, statements.Params{
		Company:           cfg.Company.Name,
		Period:            cfg.Reporting.Period,
		IncomeTax:         decimal.NewFromFloat(cfg.Reporting.IncomeTax),
		BeginningRetained: decimal.NewFromFloat(cfg.Reporting.RetainedBeginning),
		StartYear:         cfg.Reporting.StartYear,
		Rules:             cfg.Ruleset(),
	})

	if err := report.WriteAll(dir, bundle); err != nil {
		return err
	}

	if len(coercer.Warnings) > 0 {
		entries := warnlog.FromWarnings(time.Now(), coercer.Warnings)
		if err := warnlog.Append(dir, entries); err != nil {
			return fmt.Errorf("logging coercion warnings: %w", err)
		}
		log.Warn().
			Int("count", len(coercer.Warnings)).
			Msg("unparsable values coerced to zero; see logs/coercion-warnings.csv")
	}

	log.Info().
		Str("company", bundle.Company).
		Str("period", bundle.Period).
		Str("net_income", bundle.Income.NetIncome.StringFixed(2)).
		Str("total_assets", bundle.Balance.TotalAssets.StringFixed(2)).
		Str("net_cash_change", bundle.CashFlow.NetChange.StringFixed(2)).
		Int("journal_entries", len(bundle.Journal)).
		Msg("reports written")

	return nil
}
