package accounts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealerbooks/dealerbooks/internal/model"
)

func TestNewChart(t *testing.T) {
	chart := NewChart(DefaultChart())
	assert.Len(t, chart.All(), len(DefaultChart()))
}

func TestGetExists(t *testing.T) {
	chart := NewChart(DefaultChart())

	acct, ok := chart.Get(1010)
	assert.True(t, ok)
	assert.Equal(t, "Caja", acct.Name)

	_, ok = chart.Get(9999)
	assert.False(t, ok)

	assert.True(t, chart.Exists(1010))
	assert.False(t, chart.Exists(9999))
}

func TestResolve(t *testing.T) {
	chart := NewChart(DefaultChart())

	assert.Equal(t, "Bancos", chart.Resolve(1020).Name)

	unknown := chart.Resolve(9999)
	assert.Equal(t, 9999, unknown.ID)
	assert.Equal(t, "unknown account 9999", unknown.Name)
	assert.Empty(t, unknown.Type)
}

func TestByType(t *testing.T) {
	chart := NewChart(DefaultChart())

	assets := chart.ByType(model.AccountTypeAsset)
	assert.Len(t, assets, 4)
	for _, a := range assets {
		assert.Equal(t, model.AccountTypeAsset, a.Type)
	}

	assert.Len(t, chart.ByType(model.AccountTypeExpense), 4)
	assert.Empty(t, chart.ByType("orden"))
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	chart := NewChart(DefaultChart())
	require.NoError(t, chart.Save(dir))

	_, err := os.Stat(filepath.Join(dir, "accounts", "chart-of-accounts.csv"))
	require.NoError(t, err)

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, chart.All(), loaded.All())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
