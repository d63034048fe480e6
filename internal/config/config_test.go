package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statements-dev/statements/internal/classify"
	"github.com/statements-dev/statements/internal/model"
)

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	cfg := Default("Acme Trading", "2024")
	cfg.Reporting.IncomeTax = 50
	cfg.Reporting.RetainedBeginning = 1200.50
	cfg.Reporting.StartYear = 2024
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme Trading", got.Company.Name)
	assert.Equal(t, "2024", got.Reporting.Period)
	assert.Equal(t, 2024, got.Reporting.StartYear)
	assert.InDelta(t, 50.0, got.Reporting.IncomeTax, 1e-9)
	assert.InDelta(t, 1200.50, got.Reporting.RetainedBeginning, 1e-9)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("company: [broken"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestRuleset_Defaults(t *testing.T) {
	cfg := Default("Acme", "2024")
	rules := cfg.Ruleset()

	assert.Equal(t, classify.BucketRevenue, rules.ClassifyEntry("Sales", model.TypeExpense))
	assert.Equal(t, classify.BucketCOGS, rules.ClassifyEntry("COGS", model.TypeExpense))
}

func TestRuleset_Overrides(t *testing.T) {
	cfg := Default("Acme", "2024")
	cfg.Classifier.RevenueAccounts = []string{"Subscription Income"}
	cfg.Classifier.COGSAccounts = []string{"Materials"}
	rules := cfg.Ruleset()

	assert.Equal(t, classify.BucketRevenue, rules.ClassifyEntry("Subscription Income", model.TypeExpense))
	assert.Equal(t, classify.BucketCOGS, rules.ClassifyEntry("Materials", model.TypeExpense))
	// Overridden set replaces the default: "COGS" now classifies as a
	// plain operating expense.
	assert.Equal(t, classify.BucketOperating, rules.ClassifyEntry("COGS", model.TypeExpense))
}
