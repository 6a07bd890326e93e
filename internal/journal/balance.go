package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dealerbooks/dealerbooks/internal/model"
)

// BalanceState says which side of an entry is larger.
type BalanceState string

const (
	Balanced    BalanceState = "balanced"
	DebitHeavy  BalanceState = "debit-heavy"
	CreditHeavy BalanceState = "credit-heavy"
)

// Balance holds the debit and credit totals of one entry.
type Balance struct {
	Debits  decimal.Decimal
	Credits decimal.Decimal
	State   BalanceState
}

// CheckBalance totals both sides of an entry.
func CheckBalance(entry model.JournalEntry) Balance {
	b := Balance{Debits: decimal.Zero, Credits: decimal.Zero}
	for _, l := range entry.Lines {
		b.Debits = b.Debits.Add(l.DebitAmount())
		b.Credits = b.Credits.Add(l.CreditAmount())
	}
	switch b.Debits.Cmp(b.Credits) {
	case 1:
		b.State = DebitHeavy
	case -1:
		b.State = CreditHeavy
	default:
		b.State = Balanced
	}
	return b
}

func (b Balance) String() string {
	switch b.State {
	case DebitHeavy:
		return fmt.Sprintf("debits exceed credits by %s", b.Debits.Sub(b.Credits).StringFixed(2))
	case CreditHeavy:
		return fmt.Sprintf("credits exceed debits by %s", b.Credits.Sub(b.Debits).StringFixed(2))
	}
	return fmt.Sprintf("balanced at %s", b.Debits.StringFixed(2))
}
