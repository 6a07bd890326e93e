package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one row of a journal entry. Debit and Credit are nullable so an
// absent side can be told apart from an explicit zero.
type LineItem struct {
	Account Account
	Debit   decimal.NullDecimal
	Credit  decimal.NullDecimal
	Memo    string
}

// DebitAmount returns the debit side, 0 when absent.
func (l LineItem) DebitAmount() decimal.Decimal {
	if !l.Debit.Valid {
		return decimal.Zero
	}
	return l.Debit.Decimal
}

// CreditAmount returns the credit side, 0 when absent.
func (l LineItem) CreditAmount() decimal.Decimal {
	if !l.Credit.Valid {
		return decimal.Zero
	}
	return l.Credit.Decimal
}

// HasAmount reports whether at least one side carries a value.
func (l LineItem) HasAmount() bool {
	return l.Debit.Valid || l.Credit.Valid
}

// JournalEntry is one dated accounting transaction.
type JournalEntry struct {
	ID          string
	Date        time.Time
	Description string
	Lines       []LineItem
}

// Debit returns a line item with only the debit side set.
func Debit(acct Account, amount decimal.Decimal) LineItem {
	return LineItem{Account: acct, Debit: decimal.NewNullDecimal(amount)}
}

// Credit returns a line item with only the credit side set.
func Credit(acct Account, amount decimal.Decimal) LineItem {
	return LineItem{Account: acct, Credit: decimal.NewNullDecimal(amount)}
}
