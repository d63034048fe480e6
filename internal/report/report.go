// Package report renders generated statements as CSV files: per-bucket
// line items, section headers and totals in presentation order. This is
// the plain-data contract any richer renderer consumes.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/statements-dev/statements/internal/balance"
	"github.com/statements-dev/statements/internal/cashflow"
	"github.com/statements-dev/statements/internal/depreciation"
	"github.com/statements-dev/statements/internal/income"
	"github.com/statements-dev/statements/internal/lines"
	"github.com/statements-dev/statements/internal/statements"
)

// ReportsDir is the subdirectory report files are written to.
const ReportsDir = "reports"

// Report file names within ReportsDir.
const (
	FileIncome   = "income-statement.csv"
	FileBalance  = "balance-sheet.csv"
	FileCashFlow = "cash-flow.csv"
	FileSchedule = "depreciation-schedule.csv"
	FileJournal  = "depreciation-journal.csv"
)

// WriteAll writes every report in the bundle under <root>/reports/.
func WriteAll(root string, b *statements.Bundle) error {
	dir := filepath.Join(root, ReportsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating reports dir: %w", err)
	}

	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{FileIncome, func(w io.Writer) error { return WriteIncome(w, b.Income) }},
		{FileBalance, func(w io.Writer) error { return WriteBalance(w, b.Balance) }},
		{FileCashFlow, func(w io.Writer) error { return WriteCashFlow(w, b.Income, b.CashFlow) }},
		{FileSchedule, func(w io.Writer) error { return WriteSchedule(w, b.Schedule) }},
		{FileJournal, func(w io.Writer) error { return WriteJournal(w, b.Journal) }},
	}
	for _, file := range files {
		f, err := os.Create(filepath.Join(dir, file.name))
		if err != nil {
			return fmt.Errorf("creating %s: %w", file.name, err)
		}
		if err := file.write(f); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", file.name, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", file.name, err)
		}
	}
	return nil
}

// WriteIncome writes the income statement as line,amount rows.
func WriteIncome(w io.Writer, s *income.Statement) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	rows := [][]string{{"line", "amount"}}
	rows = append(rows, section("REVENUE", s.Revenue)...)
	rows = append(rows, total("Total Revenue", s.TotalRevenue))
	rows = append(rows, section("COST OF GOODS SOLD", s.COGS)...)
	rows = append(rows, total("Total COGS", s.TotalCOGS))
	rows = append(rows, total("GROSS PROFIT", s.GrossProfit))
	rows = append(rows, section("OPERATING EXPENSES", s.Operating)...)
	rows = append(rows, total("Total Operating Expenses", s.TotalOperating))
	rows = append(rows, total("OPERATING INCOME", s.OperatingIncome))
	rows = append(rows, []string{"OTHER INCOME / (EXPENSE)", ""})
	rows = append(rows, bucketLines(s.OtherIncome)...)
	rows = append(rows, bucketLines(s.OtherExpense)...)
	rows = append(rows, total("Net Other Income (Expense)", s.NetOtherIncome))
	rows = append(rows, total("INCOME BEFORE TAX", s.IncomeBeforeTax))
	rows = append(rows, total("Income Tax Expense", s.IncomeTax))
	rows = append(rows, total("NET INCOME", s.NetIncome))

	return writeRows(cw, rows)
}

// WriteBalance writes the top-down balance sheet as line,amount rows.
func WriteBalance(w io.Writer, s *balance.Statement) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	rows := [][]string{{"line", "amount"}, {"ASSETS", ""}}
	rows = append(rows, classedSection("Current Assets", s.CurrentAssets)...)
	rows = append(rows, classedSection("Non-current Assets", s.NonCurrentAssets)...)
	rows = append(rows, classedSection("Other Assets", s.OtherAssets)...)
	rows = append(rows, total("TOTAL ASSETS", s.TotalAssets))

	rows = append(rows, []string{"LIABILITIES", ""})
	rows = append(rows, classedSection("Current Liabilities", s.CurrentLiabilities)...)
	rows = append(rows, classedSection("Non-current Liabilities", s.NonCurrentLiabilities)...)
	rows = append(rows, classedSection("Other Liabilities", s.OtherLiabilities)...)
	rows = append(rows, total("TOTAL LIABILITIES", s.TotalLiabilities))

	rows = append(rows, []string{"EQUITY", ""})
	rows = append(rows, bucketLines(s.Equity)...)
	rows = append(rows, total("TOTAL EQUITY", s.TotalEquity))
	rows = append(rows, total("TOTAL LIABILITIES & EQUITY", s.TotalLiabilities.Add(s.TotalEquity)))

	return writeRows(cw, rows)
}

// WriteCashFlow writes the indirect-method reconciliation as
// description,amount rows.
func WriteCashFlow(w io.Writer, inc *income.Statement, cf *cashflow.Statement) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	rows := [][]string{
		{"description", "amount"},
		{"Net income", inc.NetIncome.StringFixed(2)},
		{"Add: Depreciation", inc.DepreciationTotal.StringFixed(2)},
	}
	if len(cf.WorkingCapital) > 0 {
		rows = append(rows, []string{"Changes in working capital", ""})
		for _, adj := range cf.WorkingCapital {
			rows = append(rows, []string{fmt.Sprintf("%s: %s", adj.Kind, adj.Account), adj.Change.StringFixed(2)})
		}
	}
	rows = append(rows,
		[]string{"Net cash from operating activities", cf.OperatingCash.StringFixed(2)},
		[]string{"Net cash from investing activities", cf.InvestingTotal.StringFixed(2)},
		[]string{"Net cash from financing activities", cf.FinancingTotal.StringFixed(2)},
		[]string{"Net increase (decrease) in cash", cf.NetChange.StringFixed(2)},
		[]string{"Cash at beginning", cf.BeginningCash.StringFixed(2)},
		[]string{"Cash at end", cf.EndingCash.StringFixed(2)},
	)

	return writeRows(cw, rows)
}

// WriteSchedule writes the depreciation schedule. The accumulated column
// is the expense-times-life approximation the schedule has always shown.
func WriteSchedule(w io.Writer, schedule []depreciation.ScheduleRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	rows := [][]string{{"asset", "cost", "salvage", "life_years", "depreciation_expense", "accumulated_depreciation"}}
	for _, r := range schedule {
		rows = append(rows, []string{
			r.Asset,
			r.Cost.StringFixed(2),
			r.Salvage.StringFixed(2),
			strconv.Itoa(r.LifeYears),
			r.Expense.StringFixed(2),
			r.Accumulated.StringFixed(2),
		})
	}
	return writeRows(cw, rows)
}

// WriteJournal writes the generated depreciation journal entries.
func WriteJournal(w io.Writer, journal []depreciation.JournalRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	rows := [][]string{{"year", "debit_account", "debit", "credit_account", "credit", "narration"}}
	for _, r := range journal {
		rows = append(rows, []string{
			strconv.Itoa(r.Year),
			r.DebitAccount,
			r.Debit.StringFixed(2),
			r.CreditAccount,
			r.Credit.StringFixed(2),
			r.Narration,
		})
	}
	return writeRows(cw, rows)
}

// section emits a header row followed by the group's lines.
func section(header string, g *lines.Group) [][]string {
	rows := [][]string{{header, ""}}
	return append(rows, bucketLines(g)...)
}

// classedSection emits a balance-sheet class with its own subtotal,
// skipped entirely when empty.
func classedSection(header string, g *lines.Group) [][]string {
	if g.Len() == 0 {
		return nil
	}
	rows := [][]string{{header, ""}}
	rows = append(rows, bucketLines(g)...)
	return append(rows, total("Total "+header, g.Total()))
}

func bucketLines(g *lines.Group) [][]string {
	var rows [][]string
	for _, l := range g.Lines() {
		rows = append(rows, []string{l.Account, l.Amount.StringFixed(2)})
	}
	return rows
}

func total(label string, amount decimal.Decimal) []string {
	return []string{label, amount.StringFixed(2)}
}

func writeRows(cw *csv.Writer, rows [][]string) error {
	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
