package commands_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dealerbooks/dealerbooks/internal/commands"
	"github.com/dealerbooks/dealerbooks/internal/config"
)

// runDealerbooks executes the CLI in-process and returns stdout and stderr.
func runDealerbooks(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvToken, "")
	t.Setenv(config.EnvBackendURL, "")

	cmd := commands.NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// newBook initializes a book in a temp dir and returns its config path.
func newBook(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, _, err := runDealerbooks(t, "init", dir, "--name", "Concesionaria Norte")
	require.NoError(t, err)
	return filepath.Join(dir, config.FileName)
}

// addEntry appends an entry and returns its ID.
func addEntry(t *testing.T, cfgPath string, args ...string) string {
	t.Helper()
	out, stderr, err := runDealerbooks(t, append([]string{"journal", "add", "--config", cfgPath}, args...)...)
	require.NoError(t, err, stderr)
	return out
}

// seedJanuary records a capital contribution, a sale and an expense.
func seedJanuary(t *testing.T, cfgPath string) {
	t.Helper()
	addEntry(t, cfgPath, "--date", "2025-01-02", "--description", "Aporte de capital",
		"--debit", "1010=50000", "--credit", "3010=50000")
	addEntry(t, cfgPath, "--date", "2025-01-15", "--description", "Venta Hilux",
		"--debit", "1010=10000", "--credit", "4010=10000")
	addEntry(t, cfgPath, "--date", "2025-01-20", "--description", "Pago de luz",
		"--debit", "5020=1200", "--credit", "1010=1200")
}
