// Package classify assigns accounts to statement buckets and balance-sheet
// classes. Rules are plain data (name sets and keyword lists) on a Ruleset
// so they can be tested and extended without touching builder logic.
package classify

import (
	"github.com/statements-dev/statements/internal/model"
)

// Bucket is an income-statement bucket.
type Bucket string

const (
	BucketRevenue      Bucket = "revenue"
	BucketCOGS         Bucket = "cogs"
	BucketOperating    Bucket = "operating"
	BucketOtherIncome  Bucket = "other-income"
	BucketOtherExpense Bucket = "other-expense"
)

// Ruleset holds the classification data. Zero-value sets mean "match
// nothing"; use DefaultRuleset for the standard rules.
type Ruleset struct {
	RevenueAccounts   map[string]bool
	COGSAccounts      map[string]bool
	OperatingAccounts map[string]bool // reserved for future grouping; does not change bucket choice today

	CurrentAssetKeywords        []string
	NonCurrentAssetKeywords     []string
	CurrentLiabilityKeywords    []string
	NonCurrentLiabilityKeywords []string
}

// DefaultRuleset returns the standard classification rules.
func DefaultRuleset() *Ruleset {
	return &Ruleset{
		RevenueAccounts:   NameSet("Sales", "Service Income"),
		COGSAccounts:      NameSet("COGS"),
		OperatingAccounts: NameSet("Rent", "Salaries"),

		CurrentAssetKeywords: []string{
			"cash", "receivable", "inventory", "prepaid", "short-term", "short term",
		},
		NonCurrentAssetKeywords: []string{
			"property", "plant", "equipment", "ppe", "building", "machinery",
			"long-term", "long term", "intangible", "goodwill",
		},
		CurrentLiabilityKeywords: []string{
			"payable", "accrued", "current portion", "tax payable", "short-term", "short term",
		},
		NonCurrentLiabilityKeywords: []string{
			"loan", "bond", "mortgage", "long-term", "long term",
		},
	}
}

// NameSet builds an account-name set from a list of names.
func NameSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// ClassifyEntry assigns one account/type pair to exactly one bucket.
// First match wins:
//  1. revenue name set, or Type Revenue -> revenue
//  2. COGS name set -> cogs
//  3. Type Expense -> operating
//  4. anything else: Type Revenue -> other income, else other expense
func (r *Ruleset) ClassifyEntry(account string, typ model.EntryType) Bucket {
	switch {
	case r.RevenueAccounts[account] || typ == model.TypeRevenue:
		return BucketRevenue
	case r.COGSAccounts[account]:
		return BucketCOGS
	case typ == model.TypeExpense:
		return BucketOperating
	case typ == model.TypeRevenue:
		return BucketOtherIncome
	default:
		return BucketOtherExpense
	}
}
