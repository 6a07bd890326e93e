package commands_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealerbooks/dealerbooks/internal/config"
)

func TestReport_Text(t *testing.T) {
	cfgPath := newBook(t)
	seedJanuary(t, cfgPath)

	out, _, err := runDealerbooks(t, "report", "--config", cfgPath, "--from", "2025-01-01", "--to", "2025-01-31")
	require.NoError(t, err)
	assert.Contains(t, out, "Concesionaria Norte")
	assert.Contains(t, out, "Period: 2025-01-01..2025-01-31")
	assert.Contains(t, out, "BALANCE SHEET")
	assert.Contains(t, out, "INCOME STATEMENT")
	assert.Contains(t, out, "58800.00 = 50000.00")
	assert.Contains(t, out, "NOT BALANCED (difference 8800.00)")
}

func TestReport_JSON(t *testing.T) {
	cfgPath := newBook(t)
	seedJanuary(t, cfgPath)

	out, _, err := runDealerbooks(t, "report", "all", "--config", cfgPath,
		"--from", "2025-01-01", "--to", "2025-01-31", "--format", "json")
	require.NoError(t, err)

	var doc struct {
		BalanceSheet struct {
			Assets      []map[string]any `json:"assets"`
			TotalAssets float64          `json:"total_assets"`
			TotalEquity float64          `json:"total_equity"`
		} `json:"balance_sheet"`
		IncomeStatement struct {
			TotalRevenues float64 `json:"total_revenues"`
			TotalExpenses float64 `json:"total_expenses"`
			NetIncome     float64 `json:"net_income"`
		} `json:"income_statement"`
		Diagnostics []any `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc.BalanceSheet.Assets, 3)
	assert.Equal(t, 58800.0, doc.BalanceSheet.TotalAssets)
	assert.Equal(t, 50000.0, doc.BalanceSheet.TotalEquity)
	assert.Equal(t, 10000.0, doc.IncomeStatement.TotalRevenues)
	assert.Equal(t, 1200.0, doc.IncomeStatement.TotalExpenses)
	assert.Equal(t, 8800.0, doc.IncomeStatement.NetIncome)
	assert.Empty(t, doc.Diagnostics)
}

func TestReport_Window(t *testing.T) {
	cfgPath := newBook(t)
	seedJanuary(t, cfgPath)

	out, _, err := runDealerbooks(t, "report", "income", "--config", cfgPath,
		"--from", "2025-01-16", "--to", "2025-01-20", "--format", "json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	_, hasBalance := doc["balance_sheet"]
	assert.False(t, hasBalance)
	is, ok := doc["income_statement"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 0.0, is["total_revenues"])
	assert.Equal(t, -1200.0, is["net_income"])
}

func TestReport_InvertedRangeIsEmpty(t *testing.T) {
	cfgPath := newBook(t)
	seedJanuary(t, cfgPath)

	out, _, err := runDealerbooks(t, "report", "balance", "--config", cfgPath,
		"--from", "2025-01-31", "--to", "2025-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "(none)")
	assert.Contains(t, out, "BALANCED")
}

func TestReport_BadArgs(t *testing.T) {
	cfgPath := newBook(t)

	_, _, err := runDealerbooks(t, "report", "cashflow", "--config", cfgPath)
	assert.Error(t, err)

	_, _, err = runDealerbooks(t, "report", "--config", cfgPath, "--format", "xml")
	assert.Error(t, err)

	_, _, err = runDealerbooks(t, "report", "--config", cfgPath, "--from", "01/01/2025")
	assert.Error(t, err)

	_, _, err = runDealerbooks(t, "report", "--config", cfgPath, "--source", "ftp")
	assert.Error(t, err)
}

// remoteBook writes a config pointing at a fake backend.
func remoteBook(t *testing.T, handler http.Handler) string {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	cfg := config.Default("Concesionaria Remota")
	cfg.Source = config.SourceRemote
	cfg.Backend.BaseURL = srv.URL + "/api"
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, config.Save(path, cfg))
	return path
}

func fakeBackend(t *testing.T, token string) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data": {"access_token": "`+token+`", "token_type": "Bearer"}}`)
	})
	authed := func(body string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+token {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w, `{"message": "Unauthenticated."}`)
				return
			}
			_, _ = io.WriteString(w, body)
		}
	}
	mux.HandleFunc("GET /api/cuentas", authed(`{"data": [
		{"id": 1, "codigo": "1.1.01", "nombre": "Caja", "tipo": "activo"},
		{"id": 2, "codigo": "4.1.01", "nombre": "Ventas", "tipo": "ingreso"},
		{"id": 3, "codigo": "9.1.01", "nombre": "Orden", "tipo": "orden"}
	]}`))
	mux.HandleFunc("GET /api/asientos-contables", authed(`{"data": {"current_page": 1, "data": [
		{"id": 1, "fecha": "2025-01-15", "descripcion": "Venta", "partidas": [
			{"cuenta_id": 1, "debe": "10000.00", "haber": "0.00"},
			{"cuenta_id": 2, "debe": "0.00", "haber": "10000.00"},
			{"cuenta_id": 3, "debe": "1.00", "haber": "0.00"}
		]},
		{"id": 2, "fecha": "2025-03-01", "descripcion": "Fuera de rango", "partidas": [
			{"cuenta_id": 1, "debe": "5.00", "haber": "0.00"}
		]}
	]}}`))
	return mux
}

func TestReport_Remote(t *testing.T) {
	cfgPath := remoteBook(t, fakeBackend(t, "tok-remote"))

	out, stderr, err := runDealerbooks(t, "report", "--config", cfgPath, "--token", "tok-remote",
		"--from", "2025-01-01", "--to", "2025-01-31", "--format", "json")
	require.NoError(t, err, stderr)

	var doc struct {
		BalanceSheet struct {
			TotalAssets float64 `json:"total_assets"`
		} `json:"balance_sheet"`
		IncomeStatement struct {
			NetIncome float64 `json:"net_income"`
		} `json:"income_statement"`
		Diagnostics []map[string]any `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 10000.0, doc.BalanceSheet.TotalAssets)
	assert.Equal(t, 10000.0, doc.IncomeStatement.NetIncome)
	require.Len(t, doc.Diagnostics, 1)
	assert.Equal(t, "orden", doc.Diagnostics[0]["account_type"])
	assert.Contains(t, stderr, "skipping unclassifiable line item")
}

func TestReport_RemoteUnauthorized(t *testing.T) {
	cfgPath := remoteBook(t, fakeBackend(t, "tok-remote"))

	_, _, err := runDealerbooks(t, "report", "--config", cfgPath, "--token", "stale",
		"--from", "2025-01-01", "--to", "2025-01-31")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestReport_RemoteWithoutSession(t *testing.T) {
	cfgPath := remoteBook(t, fakeBackend(t, "tok-remote"))

	_, _, err := runDealerbooks(t, "report", "--config", cfgPath, "--from", "2025-01-01", "--to", "2025-01-31")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run login first")
}
