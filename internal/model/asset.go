package model

import "github.com/shopspring/decimal"

// DepreciableAsset is one depreciable-asset record. Expense may be
// supplied directly; when zero it is derived straight-line from cost,
// salvage and life.
type DepreciableAsset struct {
	Asset     string
	Cost      decimal.Decimal
	Salvage   decimal.Decimal
	LifeYears int
	Expense   decimal.Decimal
}
