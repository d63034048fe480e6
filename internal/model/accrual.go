package model

import "github.com/shopspring/decimal"

// Affects names the statement side an accrual adjustment lands on.
type Affects string

const (
	AffectsRevenue Affects = "Revenue"
	AffectsExpense Affects = "Expense"
	AffectsBalance Affects = "Balance"
)

// AccrualAdjustment is a period-end adjustment. BalanceType is meaningful
// only when Affects is AffectsBalance.
type AccrualAdjustment struct {
	Account     string
	Amount      decimal.Decimal
	Affects     Affects
	BalanceType EntryType
}
