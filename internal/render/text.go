package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/dealerbooks/dealerbooks/internal/ledger"
)

// Text writes r as aligned plain-text tables.
func Text(w io.Writer, r Report, which Statement) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	p := &printer{w: tw}

	if r.Title != "" {
		p.linef("%s\t\n", r.Title)
	}
	if r.Period != "" {
		p.linef("Period: %s\t\n", r.Period)
	}

	if which.balance() {
		bs := r.Result.BalanceSheet
		p.linef("\t\n")
		p.linef("BALANCE SHEET\t\n")
		p.section("Assets", bs.Assets, "Total assets", bs.TotalAssets)
		p.section("Liabilities", bs.Liabilities, "Total liabilities", bs.TotalLiabilities)
		p.section("Equity", bs.Equity, "Total equity", bs.TotalEquity)
		p.linef("\t\n")
		p.linef("Assets = Liabilities + Equity\t%s = %s\t\n", money(bs.TotalAssets), money(bs.LiabilitiesAndEquity()))
		if bs.Balanced() {
			p.linef("Status\tBALANCED\t\n")
		} else {
			p.linef("Status\tNOT BALANCED (difference %s)\t\n", money(bs.Difference()))
		}
	}

	if which.income() {
		is := r.Result.IncomeStatement
		p.linef("\t\n")
		p.linef("INCOME STATEMENT\t\n")
		p.section("Revenues", is.Revenues, "Total revenues", is.TotalRevenues)
		p.section("Expenses", is.Expenses, "Total expenses", is.TotalExpenses)
		p.linef("\t\n")
		label := "Net income"
		if is.NetIncome.IsNegative() {
			label = "Net loss"
		}
		p.linef("%s\t%s\t\n", label, money(is.NetIncome))
	}

	if p.err != nil {
		return p.err
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, d := range r.Result.Diagnostics {
		if _, err := fmt.Fprintf(w, "warning: %s\n", describe(d)); err != nil {
			return err
		}
	}
	return nil
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) linef(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) section(heading string, lines []ledger.Line, totalLabel string, total decimal.Decimal) {
	p.linef("%s\t\n", heading)
	if len(lines) == 0 {
		p.linef("  (none)\t\n")
	}
	for _, l := range lines {
		p.linef("  %s\t%s\t\n", l.Account, money(l.Amount))
	}
	p.linef("%s\t%s\t\n", totalLabel, money(total))
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func describe(d ledger.Diagnostic) string {
	entry := d.EntryID
	if entry == "" {
		entry = fmt.Sprintf("#%d", d.EntryIndex)
	}
	return fmt.Sprintf("entry %s line %d: skipped %q: %s", entry, d.LineIndex, d.Account, d.Message)
}
