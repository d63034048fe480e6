package lines

import "github.com/shopspring/decimal"

// Line is one account with its accumulated amount.
type Line struct {
	Account string
	Amount  decimal.Decimal
}

// Group is an ordered account -> amount mapping. Lines keep first-insertion
// order so renderers can present them as entered; amounts for a repeated
// account accumulate.
type Group struct {
	lines []Line
	index map[string]int
}

// NewGroup creates an empty Group.
func NewGroup() *Group {
	return &Group{index: make(map[string]int)}
}

// Add accumulates amount into the named account, appending a new line on
// first sight.
func (g *Group) Add(account string, amount decimal.Decimal) {
	if i, ok := g.index[account]; ok {
		g.lines[i].Amount = g.lines[i].Amount.Add(amount)
		return
	}
	g.index[account] = len(g.lines)
	g.lines = append(g.lines, Line{Account: account, Amount: amount})
}

// Set overwrites the named account's amount, appending a new line if the
// account is absent.
func (g *Group) Set(account string, amount decimal.Decimal) {
	if i, ok := g.index[account]; ok {
		g.lines[i].Amount = amount
		return
	}
	g.index[account] = len(g.lines)
	g.lines = append(g.lines, Line{Account: account, Amount: amount})
}

// Get returns the amount for account, or zero if absent.
func (g *Group) Get(account string) decimal.Decimal {
	if i, ok := g.index[account]; ok {
		return g.lines[i].Amount
	}
	return decimal.Zero
}

// Has reports whether the account has a line.
func (g *Group) Has(account string) bool {
	_, ok := g.index[account]
	return ok
}

// Len returns the number of lines.
func (g *Group) Len() int {
	return len(g.lines)
}

// Lines returns the lines in insertion order. The slice is shared; callers
// must not mutate it.
func (g *Group) Lines() []Line {
	return g.lines
}

// Total returns the sum of all line amounts.
func (g *Group) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range g.lines {
		total = total.Add(l.Amount)
	}
	return total
}
