package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statements-dev/statements/internal/config"
	"github.com/statements-dev/statements/internal/importer"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "Acme Trading", "2024"))

	for _, d := range []string{importer.InputDir, "logs", "reports"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, d)
		assert.True(t, info.IsDir())
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "Acme Trading", cfg.Company.Name)
	assert.Equal(t, "2024", cfg.Reporting.Period)

	// Every input template exists with its header row.
	for file, header := range inputTemplates {
		data, err := os.ReadFile(filepath.Join(dir, importer.InputDir, file))
		require.NoError(t, err, file)
		assert.Equal(t, header, string(data))
	}
}

func TestRunInit_DoesNotClobberExistingInputs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "Acme", "2024"))

	path := filepath.Join(dir, importer.InputDir, importer.FileTransactions)
	content := "date,account,category,amount,type\n2024-01-01,Sales,,100,Revenue\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	require.NoError(t, runInit(dir, "Acme", "2024"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}
