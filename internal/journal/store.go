package journal

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/dealerbooks/dealerbooks/internal/accounts"
	"github.com/dealerbooks/dealerbooks/internal/model"
)

// Dir is the journal directory relative to the book root.
const Dir = "journal"

// Month identifies one journal.csv file.
type Month struct {
	Year  int
	Month int
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

func (m Month) first() time.Time {
	return time.Date(m.Year, time.Month(m.Month), 1, 0, 0, 0, 0, time.UTC)
}

// overlaps reports whether any day of m lies in p.
func (m Month) overlaps(p model.Period) bool {
	start := m.first()
	end := start.AddDate(0, 1, -1)
	return !end.Before(model.CalendarDate(p.Start)) && !start.After(model.CalendarDate(p.End))
}

// ParseMonth parses "YYYY-MM".
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("parsing month %q: %w", s, err)
	}
	return Month{Year: t.Year(), Month: int(t.Month())}, nil
}

// Store reads and appends to the CSV journal kept under a book root.
type Store struct {
	root   string
	chart  *accounts.Chart
	logger *zap.Logger
}

// NewStore creates a Store. A nil logger is replaced by a no-op logger.
func NewStore(root string, chart *accounts.Chart, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{root: root, chart: chart, logger: logger}
}

// LineParams is one line of a new entry. Zero sides are left empty.
type LineParams struct {
	AccountID int
	Debit     decimal.Decimal
	Credit    decimal.Decimal
	Memo      string
}

// AddEntryParams holds parameters for a new journal entry.
type AddEntryParams struct {
	Date        time.Time
	Description string
	Lines       []LineParams
}

// AddEntry validates the month with the new entry included and appends it
// to the month's journal.csv. Returns the entry ID.
func (s *Store) AddEntry(params AddEntryParams) (string, error) {
	if len(params.Lines) == 0 {
		return "", errors.New("entry has no lines")
	}

	year := params.Date.Year()
	month := int(params.Date.Month())

	existing, err := s.ReadMonth(year, month)
	if err != nil {
		return "", err
	}

	entryID := FormatEntryID(year, month, nextSeq(existing))
	newRows := make([]Row, len(params.Lines))
	for i, lp := range params.Lines {
		row := Row{
			LineID:      FormatLineID(entryID, i),
			Date:        model.CalendarDate(params.Date),
			AccountID:   lp.AccountID,
			Description: params.Description,
			Memo:        lp.Memo,
		}
		if !lp.Debit.IsZero() {
			row.Debit = decimal.NewNullDecimal(lp.Debit)
		}
		if !lp.Credit.IsZero() {
			row.Credit = decimal.NewNullDecimal(lp.Credit)
		}
		newRows[i] = row
	}

	all := append(existing, newRows...)
	if verrs := Validate(all, s.chart, year, month); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return "", fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	path := s.monthPath(year, month)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating journal dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, strings.Join(Header, ",")); err != nil {
			return "", fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendRows(f, newRows); err != nil {
		return "", fmt.Errorf("appending rows: %w", err)
	}

	s.logger.Info("journal entry added", zap.String("entry_id", entryID), zap.Int("lines", len(newRows)))
	return entryID, nil
}

// ReadMonth reads all rows for a given year/month. A missing file is an
// empty month.
func (s *Store) ReadMonth(year, month int) ([]Row, error) {
	path := s.monthPath(year, month)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}
	return rows, nil
}

// Months lists the months that have a journal file, oldest first.
func (s *Store) Months() ([]Month, error) {
	matches, err := filepath.Glob(filepath.Join(s.root, Dir, "*", "*", "journal.csv"))
	if err != nil {
		return nil, fmt.Errorf("listing journal files: %w", err)
	}

	var months []Month
	for _, m := range matches {
		monthDir := filepath.Dir(m)
		year, yerr := strconv.Atoi(filepath.Base(filepath.Dir(monthDir)))
		month, merr := strconv.Atoi(filepath.Base(monthDir))
		if yerr != nil || merr != nil || month < 1 || month > 12 {
			s.logger.Warn("ignoring journal file outside YYYY/MM layout", zap.String("path", m))
			continue
		}
		months = append(months, Month{Year: year, Month: month})
	}
	sort.Slice(months, func(i, j int) bool {
		if months[i].Year != months[j].Year {
			return months[i].Year < months[j].Year
		}
		return months[i].Month < months[j].Month
	})
	return months, nil
}

// Entries returns the entries of every month file that overlaps p, oldest
// month first. Entries on days outside p are included; filtering by date is
// left to the caller.
func (s *Store) Entries(ctx context.Context, p model.Period) ([]model.JournalEntry, error) {
	if p.Empty() {
		return nil, nil
	}

	months, err := s.Months()
	if err != nil {
		return nil, err
	}

	var entries []model.JournalEntry
	for _, m := range months {
		if !m.overlaps(p) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows, err := s.ReadMonth(m.Year, m.Month)
		if err != nil {
			return nil, err
		}
		entries = append(entries, GroupEntries(rows, s.chart)...)
	}

	s.logger.Debug("loaded journal entries", zap.Stringer("period", p), zap.Int("entries", len(entries)))
	return entries, nil
}

func nextSeq(rows []Row) int {
	maxSeq := 0
	for _, row := range rows {
		_, _, seq, err := ParseEntryID(row.LineID)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1
}

func (s *Store) monthPath(year, month int) string {
	return filepath.Join(s.root, Dir, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), "journal.csv")
}
