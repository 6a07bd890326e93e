package accounts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dealerbooks/dealerbooks/internal/model"
)

// chartPath is the chart location relative to the book root.
const chartPath = "accounts/chart-of-accounts.csv"

// Chart provides in-memory lookup over the chart of accounts.
type Chart struct {
	accounts []model.Account
	byID     map[int]model.Account
}

// NewChart creates a Chart from a slice of accounts.
func NewChart(accounts []model.Account) *Chart {
	byID := make(map[int]model.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}
	return &Chart{accounts: accounts, byID: byID}
}

// Load reads accounts/chart-of-accounts.csv under root.
func Load(root string) (*Chart, error) {
	f, err := os.Open(filepath.Join(root, chartPath))
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewChart(accts), nil
}

// All returns all accounts in file order.
func (c *Chart) All() []model.Account {
	return c.accounts
}

// Get returns an account by ID.
func (c *Chart) Get(id int) (model.Account, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// Exists reports whether an account ID exists.
func (c *Chart) Exists(id int) bool {
	_, ok := c.byID[id]
	return ok
}

// Resolve returns the account for id. Unknown ids yield a placeholder with
// no type, which statements skip and report.
func (c *Chart) Resolve(id int) model.Account {
	if a, ok := c.byID[id]; ok {
		return a
	}
	return model.Account{ID: id, Name: fmt.Sprintf("unknown account %d", id)}
}

// ByType returns all accounts of the given type.
func (c *Chart) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range c.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}

// Save writes the chart to accounts/chart-of-accounts.csv under root.
func (c *Chart) Save(root string) error {
	path := filepath.Join(root, chartPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, c.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}
