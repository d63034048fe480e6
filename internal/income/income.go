// Package income builds the income statement from ledger entries, accrual
// adjustments, the depreciation total, and a caller-supplied tax amount.
package income

import (
	"github.com/shopspring/decimal"

	"github.com/statements-dev/statements/internal/classify"
	"github.com/statements-dev/statements/internal/depreciation"
	"github.com/statements-dev/statements/internal/lines"
	"github.com/statements-dev/statements/internal/model"
)

// Params are the inputs to Build. Nil collections are treated as empty.
type Params struct {
	Entries      []model.LedgerEntry
	Accruals     []model.AccrualAdjustment
	Depreciation decimal.Decimal // period total from the depreciation engine
	IncomeTax    decimal.Decimal // manual amount; never derived here
}

// Statement is the built income statement: the five line groups for
// presentation plus the scalar totals.
type Statement struct {
	Revenue      *lines.Group
	COGS         *lines.Group
	Operating    *lines.Group
	OtherIncome  *lines.Group
	OtherExpense *lines.Group

	TotalRevenue      decimal.Decimal
	TotalCOGS         decimal.Decimal
	GrossProfit       decimal.Decimal
	TotalOperating    decimal.Decimal
	OperatingIncome   decimal.Decimal
	NetOtherIncome    decimal.Decimal
	IncomeBeforeTax   decimal.Decimal
	IncomeTax         decimal.Decimal
	NetIncome         decimal.Decimal
	DepreciationTotal decimal.Decimal
}

// Build produces the income statement. Pure function: it owns none of the
// inputs and never fails.
func Build(rules *classify.Ruleset, p Params) *Statement {
	s := &Statement{
		Revenue:      lines.NewGroup(),
		COGS:         lines.NewGroup(),
		Operating:    lines.NewGroup(),
		OtherIncome:  lines.NewGroup(),
		OtherExpense: lines.NewGroup(),
	}

	for _, e := range p.Entries {
		switch rules.ClassifyEntry(e.Account, e.Type) {
		case classify.BucketRevenue:
			s.Revenue.Add(e.Account, e.Amount)
		case classify.BucketCOGS:
			s.COGS.Add(e.Account, e.Amount)
		case classify.BucketOperating:
			s.Operating.Add(e.Account, e.Amount)
		case classify.BucketOtherIncome:
			s.OtherIncome.Add(e.Account, e.Amount)
		default:
			s.OtherExpense.Add(e.Account, e.Amount)
		}
	}

	// Revenue- and expense-affecting accruals land under their own account
	// names. Balance-affecting accruals belong to the balance sheet.
	for _, a := range p.Accruals {
		switch a.Affects {
		case model.AffectsRevenue:
			s.Revenue.Add(a.Account, a.Amount)
		case model.AffectsExpense:
			s.Operating.Add(a.Account, a.Amount)
		}
	}

	if !p.Depreciation.IsZero() {
		s.Operating.Add(depreciation.ExpenseAccount, p.Depreciation)
	}
	s.DepreciationTotal = p.Depreciation

	s.TotalRevenue = s.Revenue.Total()
	s.TotalCOGS = s.COGS.Total()
	s.GrossProfit = s.TotalRevenue.Sub(s.TotalCOGS)
	s.TotalOperating = s.Operating.Total()
	s.OperatingIncome = s.GrossProfit.Sub(s.TotalOperating)
	s.NetOtherIncome = s.OtherIncome.Total().Sub(s.OtherExpense.Total())
	s.IncomeBeforeTax = s.OperatingIncome.Add(s.NetOtherIncome)
	s.IncomeTax = p.IncomeTax
	s.NetIncome = s.IncomeBeforeTax.Sub(s.IncomeTax)

	return s
}
