package backend

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dealerbooks/dealerbooks/internal/model"
)

// Accounts fetches the chart of accounts.
func (c *Client) Accounts(ctx context.Context, s Session) ([]model.Account, error) {
	var dtos []accountDTO
	if err := c.get(ctx, &s, pathAccounts, &dtos); err != nil {
		return nil, fmt.Errorf("fetching accounts: %w", err)
	}

	accounts := make([]model.Account, 0, len(dtos))
	for i, d := range dtos {
		if err := c.validate.Struct(d); err != nil {
			return nil, fmt.Errorf("account %d: %w", i, err)
		}
		acct := d.toModel()
		if !acct.Type.Known() {
			c.logger.Warn("account has unrecognized type", zap.Int("id", acct.ID), zap.String("type", d.Tipo))
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// JournalEntries fetches every journal entry. Partidas without an embedded
// cuenta are resolved through accounts.
func (c *Client) JournalEntries(ctx context.Context, s Session, accounts []model.Account) ([]model.JournalEntry, error) {
	var dtos []entryDTO
	if err := c.get(ctx, &s, pathEntries, &dtos); err != nil {
		return nil, fmt.Errorf("fetching journal entries: %w", err)
	}

	return c.convertEntries(dtos, accounts)
}

func (c *Client) convertEntries(dtos []entryDTO, accounts []model.Account) ([]model.JournalEntry, error) {
	byID := make(map[int]model.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}

	entries := make([]model.JournalEntry, 0, len(dtos))
	for i, d := range dtos {
		if err := c.validate.Struct(d); err != nil {
			return nil, fmt.Errorf("journal entry %d: %w", i, err)
		}
		entry, err := d.toModel(byID)
		if err != nil {
			return nil, fmt.Errorf("journal entry %d: %w", i, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Ledger is the chart of accounts plus all journal entries.
type Ledger struct {
	Accounts []model.Account
	Entries  []model.JournalEntry
}

// FetchLedger loads accounts and entries concurrently and resolves the
// entries against the accounts.
func (c *Client) FetchLedger(ctx context.Context, s Session) (Ledger, error) {
	var (
		accounts []model.Account
		rawDTOs  []entryDTO
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accounts, err = c.Accounts(gctx, s)
		return err
	})
	g.Go(func() error {
		if err := c.get(gctx, &s, pathEntries, &rawDTOs); err != nil {
			return fmt.Errorf("fetching journal entries: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Ledger{}, err
	}

	entries, err := c.convertEntries(rawDTOs, accounts)
	if err != nil {
		return Ledger{}, err
	}

	c.logger.Info("fetched ledger", zap.Int("accounts", len(accounts)), zap.Int("entries", len(entries)))
	return Ledger{Accounts: accounts, Entries: entries}, nil
}

// Source adapts a Client and Session to a period-scoped entry source. The
// backend has no date filter, so every entry is returned.
type Source struct {
	Client  *Client
	Session Session
}

// Entries returns all journal entries known to the backend.
func (src Source) Entries(ctx context.Context, _ model.Period) ([]model.JournalEntry, error) {
	l, err := src.Client.FetchLedger(ctx, src.Session)
	if err != nil {
		return nil, err
	}
	return l.Entries, nil
}
