// Package cashflow builds the indirect-method cash flow statement:
// starting income plus depreciation, adjusted for working-capital changes
// between the beginning and ending balance snapshots, plus investing and
// financing activity.
package cashflow

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/statements-dev/statements/internal/model"
)

// Working-capital proxies: account names matching these substrings are
// treated as current assets or current liabilities for the adjustment.
// Everything else, including cash itself, is excluded.
var (
	currentAssetProxies     = []string{"receivable", "inventory", "prepaid"}
	currentLiabilityProxies = []string{"payable", "accrued", "tax payable"}
)

// Adjustment kinds, also used as disclosure labels.
const (
	KindCurrentAsset     = "Change in current asset"
	KindCurrentLiability = "Change in current liability"
)

// Adjustment is one working-capital line: the account, its period change
// (ending minus beginning), and which side it adjusted.
type Adjustment struct {
	Account string
	Change  decimal.Decimal
	Kind    string
}

// Params are the inputs to Build. Nil collections are treated as empty.
type Params struct {
	StartingIncome decimal.Decimal
	Depreciation   decimal.Decimal
	Beginning      []model.BalanceLine
	Ending         []model.BalanceLine
	Investing      []model.CashFlowEntry
	Financing      []model.CashFlowEntry
}

// Statement is the built cash flow statement. The beginning/ending cash
// figures are informational; beginning + net change is not reconciled
// against ending here.
type Statement struct {
	OperatingCash  decimal.Decimal
	WorkingCapital []Adjustment
	InvestingTotal decimal.Decimal
	FinancingTotal decimal.Decimal
	NetChange      decimal.Decimal
	BeginningCash  decimal.Decimal
	EndingCash     decimal.Decimal
}

// Build produces the cash flow statement. Pure function; never fails.
func Build(p Params) *Statement {
	s := &Statement{}
	s.OperatingCash = p.StartingIncome.Add(p.Depreciation)

	beg := sumByAccount(p.Beginning)
	end := sumByAccount(p.Ending)

	// Union of account names, sorted for deterministic output.
	seen := make(map[string]bool)
	var accounts []string
	for name := range beg {
		if !seen[name] {
			seen[name] = true
			accounts = append(accounts, name)
		}
	}
	for name := range end {
		if !seen[name] {
			seen[name] = true
			accounts = append(accounts, name)
		}
	}
	sort.Strings(accounts)

	for _, name := range accounts {
		change := end[name].Sub(beg[name])
		lower := strings.ToLower(name)
		switch {
		case containsAny(lower, currentAssetProxies):
			s.OperatingCash = s.OperatingCash.Sub(change)
			s.WorkingCapital = append(s.WorkingCapital, Adjustment{Account: name, Change: change, Kind: KindCurrentAsset})
		case containsAny(lower, currentLiabilityProxies):
			s.OperatingCash = s.OperatingCash.Add(change)
			s.WorkingCapital = append(s.WorkingCapital, Adjustment{Account: name, Change: change, Kind: KindCurrentLiability})
		}
	}

	for _, e := range p.Investing {
		s.InvestingTotal = s.InvestingTotal.Add(e.Amount)
	}
	for _, e := range p.Financing {
		s.FinancingTotal = s.FinancingTotal.Add(e.Amount)
	}

	s.BeginningCash = firstCashBalance(p.Beginning)
	s.EndingCash = firstCashBalance(p.Ending)
	s.NetChange = s.OperatingCash.Add(s.InvestingTotal).Add(s.FinancingTotal)

	return s
}

func sumByAccount(balances []model.BalanceLine) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal, len(balances))
	for _, b := range balances {
		sums[b.Account] = sums[b.Account].Add(b.Amount)
	}
	return sums
}

// firstCashBalance returns the amount of the first line whose account name
// contains "cash", or zero if none does.
func firstCashBalance(balances []model.BalanceLine) decimal.Decimal {
	for _, b := range balances {
		if strings.Contains(strings.ToLower(b.Account), "cash") {
			return b.Amount
		}
	}
	return decimal.Zero
}

func containsAny(name string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(name, k) {
			return true
		}
	}
	return false
}
