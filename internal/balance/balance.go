// Package balance builds the classified, top-down balance sheet from
// ending balances, balance-affecting accruals, accumulated depreciation,
// and the retained-earnings roll-forward.
package balance

import (
	"github.com/shopspring/decimal"

	"github.com/statements-dev/statements/internal/classify"
	"github.com/statements-dev/statements/internal/depreciation"
	"github.com/statements-dev/statements/internal/lines"
	"github.com/statements-dev/statements/internal/model"
)

// RetainedEarningsAccount is the equity line the roll-forward writes to.
const RetainedEarningsAccount = "Retained Earnings"

// Params are the inputs to Build. Nil collections are treated as empty.
type Params struct {
	Ending                  []model.BalanceLine
	Accruals                []model.AccrualAdjustment
	AccumulatedDepreciation decimal.Decimal
	BeginningRetained       decimal.Decimal
	NetIncome               decimal.Decimal
}

// Statement is the built balance sheet. Assets and Liabilities hold every
// line; the per-class groups partition them for top-down presentation.
// Equity is not sub-classified. No assets = liabilities + equity identity
// is enforced; the statement surfaces whatever the inputs produce.
type Statement struct {
	Assets      *lines.Group
	Liabilities *lines.Group
	Equity      *lines.Group

	CurrentAssets    *lines.Group
	NonCurrentAssets *lines.Group
	OtherAssets      *lines.Group

	CurrentLiabilities    *lines.Group
	NonCurrentLiabilities *lines.Group
	OtherLiabilities      *lines.Group

	TotalAssets             decimal.Decimal
	TotalLiabilities        decimal.Decimal
	TotalEquity             decimal.Decimal
	AccumulatedDepreciation decimal.Decimal
	EndingRetained          decimal.Decimal
}

// Build produces the balance sheet. Pure function; never fails.
func Build(rules *classify.Ruleset, p Params) *Statement {
	s := &Statement{
		Assets:                lines.NewGroup(),
		Liabilities:           lines.NewGroup(),
		Equity:                lines.NewGroup(),
		CurrentAssets:         lines.NewGroup(),
		NonCurrentAssets:      lines.NewGroup(),
		OtherAssets:           lines.NewGroup(),
		CurrentLiabilities:    lines.NewGroup(),
		NonCurrentLiabilities: lines.NewGroup(),
		OtherLiabilities:      lines.NewGroup(),
	}

	for _, b := range p.Ending {
		switch b.Type {
		case model.TypeAsset:
			s.Assets.Add(b.Account, b.Amount)
		case model.TypeLiability:
			s.Liabilities.Add(b.Account, b.Amount)
		case model.TypeEquity:
			s.Equity.Add(b.Account, b.Amount)
		}
	}

	// Balance-affecting accruals add into the matching account, appending
	// a new line when absent. Unrecognized balance types default to Asset.
	for _, a := range p.Accruals {
		if a.Affects != model.AffectsBalance {
			continue
		}
		switch a.BalanceType {
		case model.TypeLiability:
			s.Liabilities.Add(a.Account, a.Amount)
		case model.TypeEquity:
			s.Equity.Add(a.Account, a.Amount)
		default:
			s.Assets.Add(a.Account, a.Amount)
		}
	}

	s.AccumulatedDepreciation = p.AccumulatedDepreciation
	if !p.AccumulatedDepreciation.IsZero() {
		s.Assets.Add(depreciation.AccumulatedAccount, p.AccumulatedDepreciation.Neg())
	}

	for _, l := range s.Assets.Lines() {
		switch rules.AssetClass(l.Account) {
		case classify.ClassCurrent:
			s.CurrentAssets.Add(l.Account, l.Amount)
		case classify.ClassNonCurrent:
			s.NonCurrentAssets.Add(l.Account, l.Amount)
		default:
			s.OtherAssets.Add(l.Account, l.Amount)
		}
	}
	for _, l := range s.Liabilities.Lines() {
		switch rules.LiabilityClass(l.Account) {
		case classify.ClassCurrent:
			s.CurrentLiabilities.Add(l.Account, l.Amount)
		case classify.ClassNonCurrent:
			s.NonCurrentLiabilities.Add(l.Account, l.Amount)
		default:
			s.OtherLiabilities.Add(l.Account, l.Amount)
		}
	}

	s.TotalAssets = s.Assets.Total()
	s.TotalLiabilities = s.Liabilities.Total()

	// Roll forward retained earnings; an existing line is overwritten, not
	// accumulated, so rebuilding the statement is idempotent.
	s.EndingRetained = p.BeginningRetained.Add(p.NetIncome)
	s.Equity.Set(RetainedEarningsAccount, s.EndingRetained)
	s.TotalEquity = s.Equity.Total()

	return s
}
