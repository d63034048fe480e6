// Package importer loads the period's input collections from CSV files.
// Parsing is lenient by design: a missing file is an empty collection, an
// unreadable file or malformed value coerces to zero, and every coercion
// is recorded on the Coercer rather than raised.
package importer

import (
	"os"
	"path/filepath"

	"github.com/statements-dev/statements/internal/amount"
	"github.com/statements-dev/statements/internal/statements"
)

// Input file names within a project's input directory.
const (
	FileTransactions = "transactions.csv"
	FileBalanceBegin = "balance-begin.csv"
	FileBalanceEnd   = "balance-end.csv"
	FileAccruals     = "accruals.csv"
	FileDepreciation = "depreciation.csv"
	FileInvesting    = "investing.csv"
	FileFinancing    = "financing.csv"
)

// InputDir is the subdirectory holding the input CSVs.
const InputDir = "input"

// LoadAll reads every input collection from <root>/input/. Missing files
// yield empty collections; coercion warnings accumulate on c.
func LoadAll(root string, c *amount.Coercer) statements.Inputs {
	dir := filepath.Join(root, InputDir)
	return statements.Inputs{
		Transactions:     ReadTransactions(readFile(dir, FileTransactions, c), FileTransactions, c),
		BalanceBeginning: ReadBalances(readFile(dir, FileBalanceBegin, c), FileBalanceBegin, c),
		BalanceEnding:    ReadBalances(readFile(dir, FileBalanceEnd, c), FileBalanceEnd, c),
		Accruals:         ReadAccruals(readFile(dir, FileAccruals, c), FileAccruals, c),
		Assets:           ReadAssets(readFile(dir, FileDepreciation, c), FileDepreciation, c),
		Investing:        ReadCashEntries(readFile(dir, FileInvesting, c), FileInvesting, c),
		Financing:        ReadCashEntries(readFile(dir, FileFinancing, c), FileFinancing, c),
	}
}

// readFile returns the file contents, or nil for a missing file. Other
// read failures are recorded as warnings and degrade to empty.
func readFile(dir, name string, c *amount.Coercer) []byte {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			c.Warnings = append(c.Warnings, amount.Warning{Context: name, Raw: err.Error()})
		}
		return nil
	}
	return data
}
