// Package statements composes the builders into the fixed report
// pipeline: depreciation, then income statement, then balance sheet, then
// cash flow. One call turns one input snapshot into all four reports.
package statements

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/statements-dev/statements/internal/balance"
	"github.com/statements-dev/statements/internal/cashflow"
	"github.com/statements-dev/statements/internal/classify"
	"github.com/statements-dev/statements/internal/depreciation"
	"github.com/statements-dev/statements/internal/income"
	"github.com/statements-dev/statements/internal/model"
)

// Inputs is one reporting period's record snapshot. The engine reads it
// and owns none of it; nil collections are treated as empty.
type Inputs struct {
	Transactions     []model.LedgerEntry
	BalanceBeginning []model.BalanceLine
	BalanceEnding    []model.BalanceLine
	Accruals         []model.AccrualAdjustment
	Assets           []model.DepreciableAsset
	Investing        []model.CashFlowEntry
	Financing        []model.CashFlowEntry
}

// Params are the scalar report parameters.
type Params struct {
	Company           string
	Period            string
	IncomeTax         decimal.Decimal
	BeginningRetained decimal.Decimal
	StartYear         int               // depreciation schedule start; 0 means current calendar year
	Rules             *classify.Ruleset // nil means DefaultRuleset
}

// Bundle is the full set of generated reports for one period.
type Bundle struct {
	Company  string
	Period   string
	Income   *income.Statement
	Balance  *balance.Statement
	CashFlow *cashflow.Statement
	Journal  []depreciation.JournalRow
	Schedule []depreciation.ScheduleRow
}

// Generate runs the pipeline over one snapshot. Pure function of its
// inputs apart from the start-year default; never fails.
func Generate(in Inputs, p Params) *Bundle {
	rules := p.Rules
	if rules == nil {
		rules = classify.DefaultRuleset()
	}
	startYear := p.StartYear
	if startYear == 0 {
		startYear = time.Now().Year()
	}

	deprTotal := depreciation.Total(in.Assets)

	inc := income.Build(rules, income.Params{
		Entries:      in.Transactions,
		Accruals:     in.Accruals,
		Depreciation: deprTotal,
		IncomeTax:    p.IncomeTax,
	})

	bal := balance.Build(rules, balance.Params{
		Ending:                  in.BalanceEnding,
		Accruals:                in.Accruals,
		AccumulatedDepreciation: deprTotal,
		BeginningRetained:       p.BeginningRetained,
		NetIncome:               inc.NetIncome,
	})

	// The indirect method is fed income before tax rather than net income,
	// matching the behavior reports have always shown.
	cf := cashflow.Build(cashflow.Params{
		StartingIncome: inc.IncomeBeforeTax,
		Depreciation:   deprTotal,
		Beginning:      in.BalanceBeginning,
		Ending:         in.BalanceEnding,
		Investing:      in.Investing,
		Financing:      in.Financing,
	})

	return &Bundle{
		Company:  p.Company,
		Period:   p.Period,
		Income:   inc,
		Balance:  bal,
		CashFlow: cf,
		Journal:  depreciation.Journal(in.Assets, startYear),
		Schedule: depreciation.Schedule(in.Assets),
	}
}
