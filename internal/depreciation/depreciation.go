// Package depreciation computes straight-line depreciation: per-asset
// period expense, the period total, and the year-by-year journal of
// debit/credit pairs.
package depreciation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/statements-dev/statements/internal/model"
)

// Fixed account names used by generated journal entries.
const (
	ExpenseAccount     = "Depreciation Expense"
	AccumulatedAccount = "Accumulated Depreciation"
)

// JournalRow is one generated journal entry: a debit to the depreciation
// expense account and a matching credit to accumulated depreciation.
type JournalRow struct {
	Year          int
	DebitAccount  string
	Debit         decimal.Decimal
	CreditAccount string
	Credit        decimal.Decimal
	Narration     string
}

// ScheduleRow is one asset on the depreciation schedule. Accumulated is
// approximated as period expense times full life, which overstates the
// figure for assets not yet at end of life; kept for presentation parity.
type ScheduleRow struct {
	Asset       string
	Cost        decimal.Decimal
	Salvage     decimal.Decimal
	LifeYears   int
	Expense     decimal.Decimal
	Accumulated decimal.Decimal
}

// PeriodExpense returns the asset's per-period expense: the supplied
// figure when non-zero, otherwise max(0, (cost - salvage) / life) with
// life clamped to at least 1.
func PeriodExpense(a model.DepreciableAsset) decimal.Decimal {
	if !a.Expense.IsZero() {
		return a.Expense
	}
	life := clampLife(a.LifeYears)
	derived := a.Cost.Sub(a.Salvage).Div(decimal.NewFromInt(int64(life)))
	if derived.IsNegative() {
		return decimal.Zero
	}
	return derived
}

// Total sums the per-period expense across all assets.
func Total(assets []model.DepreciableAsset) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(PeriodExpense(a))
	}
	return total
}

// Journal generates one entry per asset per life year, years numbered
// startYear through startYear+life-1.
func Journal(assets []model.DepreciableAsset, startYear int) []JournalRow {
	var rows []JournalRow
	for _, a := range assets {
		expense := PeriodExpense(a)
		life := clampLife(a.LifeYears)
		for i := 0; i < life; i++ {
			year := startYear + i
			rows = append(rows, JournalRow{
				Year:          year,
				DebitAccount:  ExpenseAccount,
				Debit:         expense,
				CreditAccount: AccumulatedAccount,
				Credit:        expense,
				Narration:     fmt.Sprintf("Straight-line depreciation for %s - year %d", a.Asset, year),
			})
		}
	}
	return rows
}

// Schedule returns one row per asset for the depreciation schedule page.
func Schedule(assets []model.DepreciableAsset) []ScheduleRow {
	var rows []ScheduleRow
	for _, a := range assets {
		expense := PeriodExpense(a)
		life := clampLife(a.LifeYears)
		rows = append(rows, ScheduleRow{
			Asset:       a.Asset,
			Cost:        a.Cost,
			Salvage:     a.Salvage,
			LifeYears:   life,
			Expense:     expense,
			Accumulated: expense.Mul(decimal.NewFromInt(int64(life))),
		})
	}
	return rows
}

func clampLife(life int) int {
	if life < 1 {
		return 1
	}
	return life
}
