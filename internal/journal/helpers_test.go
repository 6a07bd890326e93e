package journal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dealerbooks/dealerbooks/internal/accounts"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func amt(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(s))
}

func testChart() *accounts.Chart {
	return accounts.NewChart(accounts.DefaultChart())
}

// balancedRows returns a two-line entry: debit debitAcct, credit creditAcct.
func balancedRows(seq, debitAcct, creditAcct int, amount string) []Row {
	id := FormatEntryID(2025, 1, seq)
	return []Row{
		{LineID: FormatLineID(id, 0), Date: date(2025, 1, 15), AccountID: debitAcct, Debit: amt(amount)},
		{LineID: FormatLineID(id, 1), Date: date(2025, 1, 15), AccountID: creditAcct, Credit: amt(amount)},
	}
}
