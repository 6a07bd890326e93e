package render

import (
	"encoding/json"
	"io"

	"github.com/shopspring/decimal"

	"github.com/dealerbooks/dealerbooks/internal/ledger"
)

type jsonLine struct {
	Account string      `json:"account"`
	Amount  json.Number `json:"amount"`
}

type jsonBalanceSheet struct {
	Assets           []jsonLine  `json:"assets"`
	Liabilities      []jsonLine  `json:"liabilities"`
	Equity           []jsonLine  `json:"equity"`
	TotalAssets      json.Number `json:"total_assets"`
	TotalLiabilities json.Number `json:"total_liabilities"`
	TotalEquity      json.Number `json:"total_equity"`
	Balanced         bool        `json:"balanced"`
}

type jsonIncomeStatement struct {
	Revenues      []jsonLine  `json:"revenues"`
	Expenses      []jsonLine  `json:"expenses"`
	TotalRevenues json.Number `json:"total_revenues"`
	TotalExpenses json.Number `json:"total_expenses"`
	NetIncome     json.Number `json:"net_income"`
}

type jsonDiagnostic struct {
	Kind        string `json:"kind"`
	Entry       int    `json:"entry"`
	EntryID     string `json:"entry_id,omitempty"`
	Line        int    `json:"line"`
	Account     string `json:"account"`
	AccountType string `json:"account_type"`
	Message     string `json:"message"`
}

type jsonReport struct {
	Period          string               `json:"period,omitempty"`
	BalanceSheet    *jsonBalanceSheet    `json:"balance_sheet,omitempty"`
	IncomeStatement *jsonIncomeStatement `json:"income_statement,omitempty"`
	Diagnostics     []jsonDiagnostic     `json:"diagnostics"`
}

// JSON writes r as an indented JSON document. Amounts are JSON numbers.
func JSON(w io.Writer, r Report, which Statement) error {
	out := jsonReport{
		Period:      r.Period,
		Diagnostics: make([]jsonDiagnostic, 0, len(r.Result.Diagnostics)),
	}

	if which.balance() {
		bs := r.Result.BalanceSheet
		out.BalanceSheet = &jsonBalanceSheet{
			Assets:           jsonLines(bs.Assets),
			Liabilities:      jsonLines(bs.Liabilities),
			Equity:           jsonLines(bs.Equity),
			TotalAssets:      number(bs.TotalAssets),
			TotalLiabilities: number(bs.TotalLiabilities),
			TotalEquity:      number(bs.TotalEquity),
			Balanced:         bs.Balanced(),
		}
	}
	if which.income() {
		is := r.Result.IncomeStatement
		out.IncomeStatement = &jsonIncomeStatement{
			Revenues:      jsonLines(is.Revenues),
			Expenses:      jsonLines(is.Expenses),
			TotalRevenues: number(is.TotalRevenues),
			TotalExpenses: number(is.TotalExpenses),
			NetIncome:     number(is.NetIncome),
		}
	}
	for _, d := range r.Result.Diagnostics {
		out.Diagnostics = append(out.Diagnostics, jsonDiagnostic{
			Kind:        string(d.Kind),
			Entry:       d.EntryIndex,
			EntryID:     d.EntryID,
			Line:        d.LineIndex,
			Account:     d.Account,
			AccountType: d.AccountType,
			Message:     d.Message,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func jsonLines(lines []ledger.Line) []jsonLine {
	out := make([]jsonLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, jsonLine{Account: l.Account, Amount: number(l.Amount)})
	}
	return out
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
