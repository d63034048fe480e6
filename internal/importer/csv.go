package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/statements-dev/statements/internal/amount"
	"github.com/statements-dev/statements/internal/model"
)

const dateFormat = "2006-01-02"

// ReadTransactions parses transactions.csv
// (date,account,category,amount,type).
func ReadTransactions(data []byte, source string, c *amount.Coercer) []model.LedgerEntry {
	var entries []model.LedgerEntry
	for i, rec := range readRows(data, source, c) {
		row := i + 2
		var date time.Time
		if raw := field(rec, 0); raw != "" {
			parsed, err := time.Parse(dateFormat, raw)
			if err != nil {
				c.Warnings = append(c.Warnings, amount.Warning{Context: rowContext(source, row, "date"), Raw: raw})
			} else {
				date = parsed
			}
		}
		entries = append(entries, model.LedgerEntry{
			Date:     date,
			Account:  field(rec, 1),
			Category: field(rec, 2),
			Amount:   c.Amount(rowContext(source, row, "amount"), field(rec, 3)),
			Type:     model.EntryType(field(rec, 4)),
		})
	}
	return entries
}

// ReadBalances parses a balance snapshot CSV (account,amount,type).
func ReadBalances(data []byte, source string, c *amount.Coercer) []model.BalanceLine {
	var balances []model.BalanceLine
	for i, rec := range readRows(data, source, c) {
		row := i + 2
		balances = append(balances, model.BalanceLine{
			Account: field(rec, 0),
			Amount:  c.Amount(rowContext(source, row, "amount"), field(rec, 1)),
			Type:    model.EntryType(field(rec, 2)),
		})
	}
	return balances
}

// ReadAccruals parses accruals.csv (account,amount,affects,balance_type).
func ReadAccruals(data []byte, source string, c *amount.Coercer) []model.AccrualAdjustment {
	var accruals []model.AccrualAdjustment
	for i, rec := range readRows(data, source, c) {
		row := i + 2
		accruals = append(accruals, model.AccrualAdjustment{
			Account:     field(rec, 0),
			Amount:      c.Amount(rowContext(source, row, "amount"), field(rec, 1)),
			Affects:     model.Affects(field(rec, 2)),
			BalanceType: model.EntryType(field(rec, 3)),
		})
	}
	return accruals
}

// ReadAssets parses depreciation.csv
// (asset,cost,salvage,life_years,depreciation_expense).
func ReadAssets(data []byte, source string, c *amount.Coercer) []model.DepreciableAsset {
	var assets []model.DepreciableAsset
	for i, rec := range readRows(data, source, c) {
		row := i + 2
		assets = append(assets, model.DepreciableAsset{
			Asset:     field(rec, 0),
			Cost:      c.Amount(rowContext(source, row, "cost"), field(rec, 1)),
			Salvage:   c.Amount(rowContext(source, row, "salvage"), field(rec, 2)),
			LifeYears: c.Int(rowContext(source, row, "life_years"), field(rec, 3)),
			Expense:   c.Amount(rowContext(source, row, "depreciation_expense"), field(rec, 4)),
		})
	}
	return assets
}

// ReadCashEntries parses an investing or financing CSV (account,amount).
func ReadCashEntries(data []byte, source string, c *amount.Coercer) []model.CashFlowEntry {
	var entries []model.CashFlowEntry
	for i, rec := range readRows(data, source, c) {
		row := i + 2
		entries = append(entries, model.CashFlowEntry{
			Account: field(rec, 0),
			Amount:  c.Amount(rowContext(source, row, "amount"), field(rec, 1)),
		})
	}
	return entries
}

// readRows returns the data rows (header skipped). A file that cannot be
// parsed as CSV degrades to no rows with a warning.
func readRows(data []byte, source string, c *amount.Coercer) [][]string {
	if len(data) == 0 {
		return nil
	}
	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		c.Warnings = append(c.Warnings, amount.Warning{Context: source, Raw: err.Error()})
		return nil
	}
	if len(records) <= 1 {
		return nil
	}
	return records[1:]
}

// field returns the trimmed column i, or "" when the row is short.
func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func rowContext(source string, row int, column string) string {
	return fmt.Sprintf("%s row %d: %s", source, row, column)
}
