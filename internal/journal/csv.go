package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dealerbooks/dealerbooks/internal/model"
)

// Header is the CSV header for journal.csv.
var Header = []string{"entry_id", "date", "account_id", "description", "debit", "credit", "memo"}

const (
	numFields = 7
	colLineID = 0
	colDate   = 1
	colAcctID = 2
	colDesc   = 3
	colDebit  = 4
	colCredit = 5
	colMemo   = 6
)

// Row is one line of journal.csv. An empty debit or credit cell is an absent
// value, not zero.
type Row struct {
	LineID      string
	Date        time.Time
	AccountID   int
	Description string
	Debit       decimal.NullDecimal
	Credit      decimal.NullDecimal
	Memo        string
}

// ReadRows reads all rows from a journal.csv reader.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var rows []Row
	for i, rec := range records[1:] {
		row, err := UnmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// AppendRows writes rows without a header.
func AppendRows(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	for i, row := range rows {
		if err := cw.Write(MarshalRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalRow converts a Row to CSV fields.
func MarshalRow(row Row) []string {
	rec := make([]string, numFields)
	rec[colLineID] = row.LineID
	rec[colDate] = row.Date.Format(model.DateFormat)
	rec[colAcctID] = strconv.Itoa(row.AccountID)
	rec[colDesc] = row.Description
	if row.Debit.Valid {
		rec[colDebit] = row.Debit.Decimal.StringFixed(2)
	}
	if row.Credit.Valid {
		rec[colCredit] = row.Credit.Decimal.StringFixed(2)
	}
	rec[colMemo] = row.Memo
	return rec
}

// UnmarshalRow converts CSV fields to a Row.
func UnmarshalRow(record []string) (Row, error) {
	if len(record) != numFields {
		return Row{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(model.DateFormat, record[colDate])
	if err != nil {
		return Row{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	accountID, err := strconv.Atoi(record[colAcctID])
	if err != nil {
		return Row{}, fmt.Errorf("parsing account_id %q: %w", record[colAcctID], err)
	}

	debit, err := parseAmount(record[colDebit])
	if err != nil {
		return Row{}, fmt.Errorf("parsing debit %q: %w", record[colDebit], err)
	}
	credit, err := parseAmount(record[colCredit])
	if err != nil {
		return Row{}, fmt.Errorf("parsing credit %q: %w", record[colCredit], err)
	}

	return Row{
		LineID:      record[colLineID],
		Date:        date,
		AccountID:   accountID,
		Description: record[colDesc],
		Debit:       debit,
		Credit:      credit,
		Memo:        record[colMemo],
	}, nil
}

func parseAmount(s string) (decimal.NullDecimal, error) {
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

// AccountResolver maps account IDs to accounts.
type AccountResolver interface {
	Resolve(id int) model.Account
}

// GroupEntries folds rows into journal entries in first-seen order. An
// entry takes its date and description from its first row.
func GroupEntries(rows []Row, accounts AccountResolver) []model.JournalEntry {
	var entries []model.JournalEntry
	index := make(map[string]int)
	for _, row := range rows {
		g := EntryGroup(row.LineID)
		i, seen := index[g]
		if !seen {
			i = len(entries)
			index[g] = i
			entries = append(entries, model.JournalEntry{
				ID:          g,
				Date:        row.Date,
				Description: row.Description,
			})
		}
		entries[i].Lines = append(entries[i].Lines, model.LineItem{
			Account: accounts.Resolve(row.AccountID),
			Debit:   row.Debit,
			Credit:  row.Credit,
			Memo:    row.Memo,
		})
	}
	return entries
}
