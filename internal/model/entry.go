package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies a ledger entry or balance line.
type EntryType string

const (
	TypeRevenue   EntryType = "Revenue"
	TypeExpense   EntryType = "Expense"
	TypeAsset     EntryType = "Asset"
	TypeLiability EntryType = "Liability"
	TypeEquity    EntryType = "Equity"
)

// LedgerEntry is a single bookkeeping transaction for the period.
type LedgerEntry struct {
	Date     time.Time
	Account  string
	Category string
	Amount   decimal.Decimal
	Type     EntryType
}

// BalanceLine is one account balance in a period-end snapshot. Beginning
// and ending snapshots are independent collections, not deltas.
type BalanceLine struct {
	Account string
	Amount  decimal.Decimal
	Type    EntryType
}

// CashFlowEntry is an investing or financing cash movement. Sign
// convention: inflow positive, outflow negative (caller's responsibility).
type CashFlowEntry struct {
	Account string
	Amount  decimal.Decimal
}
