// Package ledger derives the balance sheet and income statement from journal
// entries.
package ledger

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dealerbooks/dealerbooks/internal/model"
)

// Aggregator turns journal entries into financial statements. It holds no
// state besides its logger and is safe for concurrent use.
type Aggregator struct {
	logger *zap.Logger
}

// NewAggregator returns an Aggregator. A nil logger discards diagnostics.
func NewAggregator(logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{logger: logger}
}

// Aggregate runs a one-off aggregation without logging.
func Aggregate(entries []model.JournalEntry, rangeStart, rangeEnd time.Time) (Result, error) {
	return NewAggregator(nil).Aggregate(entries, rangeStart, rangeEnd)
}

// Aggregate filters entries to the inclusive calendar range
// [rangeStart, rangeEnd] and classifies every line item by account type.
// Lines with a missing or unknown type are skipped and reported in
// Result.Diagnostics. A line with neither a debit nor a credit value fails
// the whole call with ErrMalformedInput.
func (a *Aggregator) Aggregate(entries []model.JournalEntry, rangeStart, rangeEnd time.Time) (Result, error) {
	if err := checkAmounts(entries); err != nil {
		return Result{}, err
	}

	res := newResult()
	period := model.NewPeriod(rangeStart, rangeEnd)
	if period.Empty() {
		return res, nil
	}

	bs := &res.BalanceSheet
	is := &res.IncomeStatement

	for ei, entry := range entries {
		if !period.Contains(entry.Date) {
			continue
		}
		for li, item := range entry.Lines {
			debit, credit := item.DebitAmount(), item.CreditAmount()
			line := Line{Account: item.Account.Name}

			switch item.Account.Type {
			case model.AccountTypeAsset:
				line.Amount = debit.Sub(credit)
				bs.Assets = append(bs.Assets, line)
				bs.TotalAssets = bs.TotalAssets.Add(line.Amount)
			case model.AccountTypeLiability:
				line.Amount = credit.Sub(debit)
				bs.Liabilities = append(bs.Liabilities, line)
				bs.TotalLiabilities = bs.TotalLiabilities.Add(line.Amount)
			case model.AccountTypeEquity:
				line.Amount = credit.Sub(debit)
				bs.Equity = append(bs.Equity, line)
				bs.TotalEquity = bs.TotalEquity.Add(line.Amount)
			case model.AccountTypeRevenue:
				line.Amount = credit.Sub(debit)
				is.Revenues = append(is.Revenues, line)
				is.TotalRevenues = is.TotalRevenues.Add(line.Amount)
			case model.AccountTypeExpense:
				line.Amount = debit.Sub(credit)
				is.Expenses = append(is.Expenses, line)
				is.TotalExpenses = is.TotalExpenses.Add(line.Amount)
			default:
				res.Diagnostics = append(res.Diagnostics, a.unclassifiable(ei, li, entry, item))
			}
		}
	}

	is.NetIncome = is.TotalRevenues.Sub(is.TotalExpenses)
	return res, nil
}

func (a *Aggregator) unclassifiable(ei, li int, entry model.JournalEntry, item model.LineItem) Diagnostic {
	reason := "account type is missing"
	if item.Account.Type != "" {
		reason = fmt.Sprintf("account type %q is not recognized", item.Account.Type)
	}

	a.logger.Warn("skipping unclassifiable line item",
		zap.Int("entry", ei),
		zap.String("entry_id", entry.ID),
		zap.Int("line", li),
		zap.String("account", item.Account.Name),
		zap.String("account_type", string(item.Account.Type)),
	)

	return Diagnostic{
		Kind:        UnclassifiableAccount,
		EntryIndex:  ei,
		LineIndex:   li,
		EntryID:     entry.ID,
		Account:     item.Account.Name,
		AccountType: string(item.Account.Type),
		Message:     reason,
	}
}

// checkAmounts rejects line items that carry no amount on either side. Every
// entry is checked, including those outside the requested range.
func checkAmounts(entries []model.JournalEntry) error {
	for ei, entry := range entries {
		for li, item := range entry.Lines {
			if !item.HasAmount() {
				return &MalformedInputError{
					EntryIndex: ei,
					LineIndex:  li,
					EntryID:    entry.ID,
					Reason:     "line item has neither a debit nor a credit amount",
				}
			}
		}
	}
	return nil
}
