package model

import "strings"

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// AccountTypes lists the recognized account types in statement order.
var AccountTypes = []AccountType{
	AccountTypeAsset,
	AccountTypeLiability,
	AccountTypeEquity,
	AccountTypeRevenue,
	AccountTypeExpense,
}

// backendTypes maps the tags used by the dealership backend onto the
// canonical types. "capital" is equity and "egreso" is expense.
var backendTypes = map[string]AccountType{
	"activo":  AccountTypeAsset,
	"pasivo":  AccountTypeLiability,
	"capital": AccountTypeEquity,
	"ingreso": AccountTypeRevenue,
	"egreso":  AccountTypeExpense,
}

// Known reports whether t is one of the five recognized types.
func (t AccountType) Known() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// ParseAccountType normalizes a type tag read from a file or the backend.
// Unrecognized tags are returned verbatim with ok=false so callers can still
// report what they saw.
func ParseAccountType(s string) (t AccountType, ok bool) {
	tag := strings.ToLower(strings.TrimSpace(s))
	if at := AccountType(tag); at.Known() {
		return at, true
	}
	if at, found := backendTypes[tag]; found {
		return at, true
	}
	return AccountType(s), false
}

// Account is a ledger account. Accounts are reference data and are never
// mutated while statements are computed.
type Account struct {
	ID   int
	Code string
	Name string
	Type AccountType
}
