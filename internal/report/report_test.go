package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statements-dev/statements/internal/model"
	"github.com/statements-dev/statements/internal/statements"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleBundle() *statements.Bundle {
	return statements.Generate(statements.Inputs{
		Transactions: []model.LedgerEntry{
			{Account: "Sales", Amount: dec("1000"), Type: model.TypeRevenue},
			{Account: "COGS", Amount: dec("400"), Type: model.TypeExpense},
			{Account: "Rent", Amount: dec("100"), Type: model.TypeExpense},
		},
		BalanceBeginning: []model.BalanceLine{
			{Account: "Accounts Receivable", Amount: dec("100"), Type: model.TypeAsset},
		},
		BalanceEnding: []model.BalanceLine{
			{Account: "Cash", Amount: dec("500"), Type: model.TypeAsset},
			{Account: "Equipment", Amount: dec("2000"), Type: model.TypeAsset},
			{Account: "Accounts Receivable", Amount: dec("150"), Type: model.TypeAsset},
			{Account: "Accounts Payable", Amount: dec("300"), Type: model.TypeLiability},
		},
		Assets: []model.DepreciableAsset{
			{Asset: "Truck", Cost: dec("1200"), Salvage: dec("200"), LifeYears: 5},
		},
	}, statements.Params{
		Company:   "Acme Trading",
		Period:    "2024",
		IncomeTax: dec("50"),
		StartYear: 2024,
	})
}

func readRows(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	cr := csv.NewReader(buf)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	require.NoError(t, err)
	return rows
}

func findRow(rows [][]string, label string) []string {
	for _, r := range rows {
		if len(r) > 0 && r[0] == label {
			return r
		}
	}
	return nil
}

func TestWriteIncome(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteIncome(&buf, sampleBundle().Income))
	rows := readRows(t, &buf)

	require.NotNil(t, findRow(rows, "REVENUE"))
	assert.Equal(t, "1000.00", findRow(rows, "Sales")[1])
	assert.Equal(t, "600.00", findRow(rows, "GROSS PROFIT")[1])
	assert.Equal(t, "200.00", findRow(rows, "Depreciation Expense")[1])
	assert.Equal(t, "300.00", findRow(rows, "Total Operating Expenses")[1])
	assert.Equal(t, "50.00", findRow(rows, "Income Tax Expense")[1])
	assert.Equal(t, "250.00", findRow(rows, "NET INCOME")[1])
}

func TestWriteBalance(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBalance(&buf, sampleBundle().Balance))
	rows := readRows(t, &buf)

	require.NotNil(t, findRow(rows, "Current Assets"))
	assert.Equal(t, "500.00", findRow(rows, "Cash")[1])
	assert.Equal(t, "-200.00", findRow(rows, "Accumulated Depreciation")[1])
	assert.Equal(t, "2450.00", findRow(rows, "TOTAL ASSETS")[1])
	assert.Equal(t, "250.00", findRow(rows, "Retained Earnings")[1])
	assert.Equal(t, "550.00", findRow(rows, "TOTAL LIABILITIES & EQUITY")[1])
}

func TestWriteBalance_EmptyClassesSkipped(t *testing.T) {
	b := statements.Generate(statements.Inputs{
		BalanceEnding: []model.BalanceLine{
			{Account: "Cash", Amount: dec("500"), Type: model.TypeAsset},
		},
	}, statements.Params{})

	var buf bytes.Buffer
	require.NoError(t, WriteBalance(&buf, b.Balance))
	rows := readRows(t, &buf)

	assert.Nil(t, findRow(rows, "Non-current Assets"))
	assert.Nil(t, findRow(rows, "Other Liabilities"))
}

func TestWriteCashFlow(t *testing.T) {
	bundle := sampleBundle()
	var buf bytes.Buffer
	require.NoError(t, WriteCashFlow(&buf, bundle.Income, bundle.CashFlow))
	rows := readRows(t, &buf)

	assert.Equal(t, "250.00", findRow(rows, "Net income")[1])
	assert.Equal(t, "200.00", findRow(rows, "Add: Depreciation")[1])
	require.NotNil(t, findRow(rows, "Changes in working capital"))
	// 300 (IBT) + 200 - 50 (receivable) + 300 (payable).
	assert.Equal(t, "750.00", findRow(rows, "Net cash from operating activities")[1])
	assert.Equal(t, "500.00", findRow(rows, "Cash at end")[1])
}

func TestWriteScheduleAndJournal(t *testing.T) {
	bundle := sampleBundle()

	var buf bytes.Buffer
	require.NoError(t, WriteSchedule(&buf, bundle.Schedule))
	rows := readRows(t, &buf)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Truck", "1200.00", "200.00", "5", "200.00", "1000.00"}, rows[1])

	buf.Reset()
	require.NoError(t, WriteJournal(&buf, bundle.Journal))
	rows = readRows(t, &buf)
	require.Len(t, rows, 6, "header + one entry per life year")
	assert.Equal(t, "2024", rows[1][0])
	assert.Equal(t, "Depreciation Expense", rows[1][1])
	assert.Equal(t, "Accumulated Depreciation", rows[1][3])
}

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteAll(dir, sampleBundle()))

	for _, name := range []string{FileIncome, FileBalance, FileCashFlow, FileSchedule, FileJournal} {
		info, err := os.Stat(filepath.Join(dir, ReportsDir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}
