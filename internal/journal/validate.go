package journal

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rule names a journal invariant.
type Rule string

const (
	RuleBalanced     Rule = "balanced"
	RuleOneSided     Rule = "one-sided"
	RuleKnownAccount Rule = "known-account"
	RuleInMonth      Rule = "in-month"
	RuleSequence     Rule = "sequence"
	RulePrecision    Rule = "precision"
)

// ValidationError describes a single rule violation.
type ValidationError struct {
	Rule        Rule
	EntryID     string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s [%s]: %s", e.Rule, e.EntryID, e.Description)
}

// AccountChecker tests whether an account ID exists in the chart of accounts.
type AccountChecker interface {
	Exists(id int) bool
}

var hundred = decimal.NewFromInt(100)

// Validate checks the rows of one month file.
func Validate(rows []Row, accounts AccountChecker, year, month int) []ValidationError {
	var errs []ValidationError

	groups := make(map[string][]Row)
	var order []string
	for _, row := range rows {
		g := EntryGroup(row.LineID)
		if _, seen := groups[g]; !seen {
			order = append(order, g)
		}
		groups[g] = append(groups[g], row)
	}

	for _, g := range order {
		debits, credits := decimal.Zero, decimal.Zero
		for _, row := range groups[g] {
			if row.Debit.Valid {
				debits = debits.Add(row.Debit.Decimal)
			}
			if row.Credit.Valid {
				credits = credits.Add(row.Credit.Decimal)
			}
		}
		if !debits.Equal(credits) {
			errs = append(errs, ValidationError{
				Rule:        RuleBalanced,
				EntryID:     g,
				Description: fmt.Sprintf("debits (%s) != credits (%s)", debits.StringFixed(2), credits.StringFixed(2)),
			})
		}
	}

	for _, row := range rows {
		hasDebit := row.Debit.Valid && !row.Debit.Decimal.IsZero()
		hasCredit := row.Credit.Valid && !row.Credit.Decimal.IsZero()
		if hasDebit == hasCredit {
			errs = append(errs, ValidationError{
				Rule:        RuleOneSided,
				EntryID:     row.LineID,
				Description: "line must have exactly one of debit or credit",
			})
		}

		if !accounts.Exists(row.AccountID) {
			errs = append(errs, ValidationError{
				Rule:        RuleKnownAccount,
				EntryID:     row.LineID,
				Description: fmt.Sprintf("unknown account %d", row.AccountID),
			})
		}

		if row.Date.Year() != year || int(row.Date.Month()) != month {
			errs = append(errs, ValidationError{
				Rule:        RuleInMonth,
				EntryID:     row.LineID,
				Description: fmt.Sprintf("date %s not in %04d-%02d", row.Date.Format("2006-01-02"), year, month),
			})
		}

		for _, side := range []struct {
			name string
			v    decimal.NullDecimal
		}{{"debit", row.Debit}, {"credit", row.Credit}} {
			if side.v.Valid && !side.v.Decimal.Mul(hundred).IsInteger() {
				errs = append(errs, ValidationError{
					Rule:        RulePrecision,
					EntryID:     row.LineID,
					Description: fmt.Sprintf("%s %s has more than 2 decimal places", side.name, side.v.Decimal),
				})
			}
		}
	}

	// Entry sequence numbers must run 1..N without gaps.
	seen := make(map[int]bool)
	for _, g := range order {
		_, _, seq, err := ParseEntryID(g)
		if err != nil {
			errs = append(errs, ValidationError{
				Rule:        RuleSequence,
				EntryID:     g,
				Description: fmt.Sprintf("invalid entry ID: %v", err),
			})
			continue
		}
		seen[seq] = true
	}
	for i := 1; i <= len(seen); i++ {
		if !seen[i] {
			errs = append(errs, ValidationError{
				Rule:        RuleSequence,
				EntryID:     fmt.Sprintf("seq %d", i),
				Description: fmt.Sprintf("missing sequence %d in 1..%d", i, len(seen)),
			})
		}
	}

	return errs
}
