// Package render formats aggregation results for the terminal or as JSON.
package render

import (
	"fmt"
	"strings"

	"github.com/dealerbooks/dealerbooks/internal/ledger"
)

// Statement selects which statements are rendered.
type Statement string

const (
	StatementBalance Statement = "balance"
	StatementIncome  Statement = "income"
	StatementAll     Statement = "all"
)

// ParseStatement validates a statement selector. Empty means all.
func ParseStatement(s string) (Statement, error) {
	switch Statement(strings.ToLower(strings.TrimSpace(s))) {
	case "", StatementAll:
		return StatementAll, nil
	case StatementBalance:
		return StatementBalance, nil
	case StatementIncome:
		return StatementIncome, nil
	}
	return "", fmt.Errorf("unknown statement %q (want balance, income or all)", s)
}

func (s Statement) balance() bool { return s == StatementBalance || s == StatementAll }
func (s Statement) income() bool  { return s == StatementIncome || s == StatementAll }

// Report is a result plus the period it covers.
type Report struct {
	Title  string
	Period string
	Result ledger.Result
}
