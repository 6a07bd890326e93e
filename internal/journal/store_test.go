package journal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealerbooks/dealerbooks/internal/model"
)

func saleParams(d int, amount string) AddEntryParams {
	return AddEntryParams{
		Date:        date(2025, 1, d),
		Description: "Venta de vehículo",
		Lines: []LineParams{
			{AccountID: 1020, Debit: dec(amount)},
			{AccountID: 4010, Credit: dec(amount), Memo: "Nissan Versa"},
		},
	}
}

func TestAddEntry_NewMonth(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, testChart(), nil)

	entryID, err := store.AddEntry(saleParams(15, "185000.00"))
	require.NoError(t, err)
	assert.Equal(t, "2025-01-001", entryID)

	_, err = os.Stat(filepath.Join(dir, "journal", "2025", "01", "journal.csv"))
	require.NoError(t, err)

	rows, err := store.ReadMonth(2025, 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2025-01-001a", rows[0].LineID)
	assert.True(t, rows[0].Debit.Decimal.Equal(dec("185000")))
	assert.False(t, rows[0].Credit.Valid)
	assert.True(t, rows[1].Credit.Decimal.Equal(dec("185000")))
	assert.Equal(t, "Nissan Versa", rows[1].Memo)
}

func TestAddEntry_ExistingMonth(t *testing.T) {
	store := NewStore(t.TempDir(), testChart(), nil)

	_, err := store.AddEntry(saleParams(10, "10.00"))
	require.NoError(t, err)
	id2, err := store.AddEntry(saleParams(12, "20.00"))
	require.NoError(t, err)
	assert.Equal(t, "2025-01-002", id2)

	rows, err := store.ReadMonth(2025, 1)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
	assert.Empty(t, Validate(rows, testChart(), 2025, 1))
}

func TestAddEntry_Rejected(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, testChart(), nil)

	params := saleParams(10, "10.00")
	params.Lines[1].Credit = dec("9.00")
	_, err := store.AddEntry(params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	params = saleParams(10, "10.00")
	params.Lines[0].AccountID = 9999
	_, err = store.AddEntry(params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown account 9999")

	_, err = store.AddEntry(AddEntryParams{Date: date(2025, 1, 1)})
	require.Error(t, err)

	_, err = os.Stat(filepath.Join(dir, "journal", "2025", "01", "journal.csv"))
	assert.True(t, os.IsNotExist(err), "rejected entries leave no file behind")
}

func TestAddEntry_MultiLine(t *testing.T) {
	store := NewStore(t.TempDir(), testChart(), nil)

	_, err := store.AddEntry(AddEntryParams{
		Date:        date(2025, 1, 20),
		Description: "Compra de vehículo a crédito",
		Lines: []LineParams{
			{AccountID: 1040, Debit: dec("300000")},
			{AccountID: 1020, Credit: dec("100000")},
			{AccountID: 2010, Credit: dec("200000")},
		},
	})
	require.NoError(t, err)

	rows, err := store.ReadMonth(2025, 1)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2025-01-001c", rows[2].LineID)
}

func TestReadMonth_Missing(t *testing.T) {
	store := NewStore(t.TempDir(), testChart(), nil)
	rows, err := store.ReadMonth(2030, 6)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMonths(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, testChart(), nil)

	for _, d := range []AddEntryParams{
		{Date: date(2025, 3, 1), Description: "a", Lines: []LineParams{{AccountID: 1010, Debit: dec("1")}, {AccountID: 4010, Credit: dec("1")}}},
		{Date: date(2024, 12, 1), Description: "b", Lines: []LineParams{{AccountID: 1010, Debit: dec("1")}, {AccountID: 4010, Credit: dec("1")}}},
	} {
		_, err := store.AddEntry(d)
		require.NoError(t, err)
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "journal", "misc", "xx"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "journal", "misc", "xx", "journal.csv"), nil, 0o644))

	months, err := store.Months()
	require.NoError(t, err)
	assert.Equal(t, []Month{{2024, 12}, {2025, 3}}, months)
}

func TestEntries(t *testing.T) {
	store := NewStore(t.TempDir(), testChart(), nil)
	for _, p := range []AddEntryParams{saleParams(5, "10"), saleParams(25, "20")} {
		_, err := store.AddEntry(p)
		require.NoError(t, err)
	}
	feb := saleParams(1, "40")
	feb.Date = date(2025, 2, 3)
	_, err := store.AddEntry(feb)
	require.NoError(t, err)

	p, err := model.ParsePeriod("2025-01-20", "2025-01-31")
	require.NoError(t, err)
	entries, err := store.Entries(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, entries, 2, "whole month files are returned")
	assert.Equal(t, "2025-01-001", entries[0].ID)
	assert.Equal(t, "Bancos", entries[0].Lines[0].Account.Name)

	p, err = model.ParsePeriod("2025-01-01", "2025-12-31")
	require.NoError(t, err)
	entries, err = store.Entries(context.Background(), p)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	p, err = model.ParsePeriod("2025-12-31", "2025-01-01")
	require.NoError(t, err)
	entries, err = store.Entries(context.Background(), p)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntries_Cancelled(t *testing.T) {
	store := NewStore(t.TempDir(), testChart(), nil)
	_, err := store.AddEntry(saleParams(5, "10"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p, err := model.ParsePeriod("2025-01-01", "2025-01-31")
	require.NoError(t, err)
	_, err = store.Entries(ctx, p)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2025-07")
	require.NoError(t, err)
	assert.Equal(t, Month{Year: 2025, Month: 7}, m)
	assert.Equal(t, "2025-07", m.String())

	_, err = ParseMonth("2025-13")
	assert.Error(t, err)
}
