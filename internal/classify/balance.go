package classify

import "strings"

// Class is a balance-sheet presentation class.
type Class string

const (
	ClassCurrent    Class = "current"
	ClassNonCurrent Class = "non-current"
	ClassOther      Class = "other"
)

// AssetClass classifies an asset account name. Current keywords are
// checked before non-current, so the result is always exactly one class.
func (r *Ruleset) AssetClass(account string) Class {
	name := strings.ToLower(account)
	switch {
	case containsAny(name, r.CurrentAssetKeywords):
		return ClassCurrent
	case containsAny(name, r.NonCurrentAssetKeywords):
		return ClassNonCurrent
	default:
		return ClassOther
	}
}

// LiabilityClass classifies a liability account name.
func (r *Ruleset) LiabilityClass(account string) Class {
	name := strings.ToLower(account)
	switch {
	case containsAny(name, r.CurrentLiabilityKeywords):
		return ClassCurrent
	case containsAny(name, r.NonCurrentLiabilityKeywords):
		return ClassNonCurrent
	default:
		return ClassOther
	}
}

func containsAny(name string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(name, k) {
			return true
		}
	}
	return false
}
