package ledger

import "github.com/shopspring/decimal"

// Line is one (account, amount) row of a statement category.
type Line struct {
	Account string
	Amount  decimal.Decimal
}

// BalanceSheet holds the asset, liability and equity categories.
type BalanceSheet struct {
	Assets           []Line
	Liabilities      []Line
	Equity           []Line
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	TotalEquity      decimal.Decimal
}

// LiabilitiesAndEquity returns TotalLiabilities + TotalEquity.
func (b BalanceSheet) LiabilitiesAndEquity() decimal.Decimal {
	return b.TotalLiabilities.Add(b.TotalEquity)
}

// Difference returns TotalAssets - (TotalLiabilities + TotalEquity).
func (b BalanceSheet) Difference() decimal.Decimal {
	return b.TotalAssets.Sub(b.LiabilitiesAndEquity())
}

// Balanced reports whether the accounting equation holds. A mismatch is not
// an error: offsetting entries may fall outside the selected window.
func (b BalanceSheet) Balanced() bool {
	return b.Difference().IsZero()
}

// IncomeStatement holds the revenue and expense categories.
type IncomeStatement struct {
	Revenues      []Line
	Expenses      []Line
	TotalRevenues decimal.Decimal
	TotalExpenses decimal.Decimal
	NetIncome     decimal.Decimal
}

// DiagnosticKind names a non-fatal condition found while aggregating.
type DiagnosticKind string

// UnclassifiableAccount marks a line whose account type is missing or
// unrecognized. The line is left out of every category.
const UnclassifiableAccount DiagnosticKind = "unclassifiable-account"

// Diagnostic records a skipped line item.
type Diagnostic struct {
	Kind        DiagnosticKind
	EntryIndex  int
	LineIndex   int
	EntryID     string
	Account     string
	AccountType string
	Message     string
}

// Result is the output of one aggregation call.
type Result struct {
	BalanceSheet    BalanceSheet
	IncomeStatement IncomeStatement
	Diagnostics     []Diagnostic
}

func newResult() Result {
	return Result{
		BalanceSheet: BalanceSheet{
			Assets:      []Line{},
			Liabilities: []Line{},
			Equity:      []Line{},
		},
		IncomeStatement: IncomeStatement{
			Revenues: []Line{},
			Expenses: []Line{},
		},
		Diagnostics: []Diagnostic{},
	}
}
