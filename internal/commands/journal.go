package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dealerbooks/dealerbooks/internal/accounts"
	"github.com/dealerbooks/dealerbooks/internal/gitops"
	"github.com/dealerbooks/dealerbooks/internal/journal"
	"github.com/dealerbooks/dealerbooks/internal/model"
)

func newJournalCommand(opts *globalOptions) *cobra.Command {
	journalCmd := &cobra.Command{
		Use:   "journal",
		Short: "Local journal book",
	}
	journalCmd.AddCommand(newJournalAddCommand(opts), newJournalCheckCommand(opts))
	return journalCmd
}

func newJournalAddCommand(opts *globalOptions) *cobra.Command {
	var date string
	var description string
	var debits []string
	var credits []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a journal entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			d := time.Now()
			if date != "" {
				d, err = time.Parse(model.DateFormat, date)
				if err != nil {
					return fmt.Errorf("parsing --date: %w", err)
				}
			}

			var lines []journal.LineParams
			for _, arg := range debits {
				id, amt, err := parseLineFlag(arg)
				if err != nil {
					return fmt.Errorf("--debit %s: %w", arg, err)
				}
				lines = append(lines, journal.LineParams{AccountID: id, Debit: amt})
			}
			for _, arg := range credits {
				id, amt, err := parseLineFlag(arg)
				if err != nil {
					return fmt.Errorf("--credit %s: %w", arg, err)
				}
				lines = append(lines, journal.LineParams{AccountID: id, Credit: amt})
			}

			chart, err := accounts.Load(cfg.Journal.Dir)
			if err != nil {
				return err
			}
			store := journal.NewStore(cfg.Journal.Dir, chart, logger)
			id, err := store.AddEntry(journal.AddEntryParams{
				Date:        d,
				Description: description,
				Lines:       lines,
			})
			if err != nil {
				return err
			}

			if cfg.Git.AutoCommit && gitops.IsRepo(cfg.Journal.Dir) {
				hash, err := gitops.Commit(cfg.Journal.Dir, "journal: add "+id, gitAuthor(cfg), journal.Dir)
				if err != nil {
					return fmt.Errorf("entry %s written but not committed: %w", id, err)
				}
				logger.Info("journal entry committed", zap.String("entry_id", id), zap.String("commit", hash))
			}

			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "entry date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&description, "description", "", "entry description (required)")
	_ = cmd.MarkFlagRequired("description")
	cmd.Flags().StringArrayVar(&debits, "debit", nil, "debit line ACCOUNT_ID=AMOUNT (repeatable)")
	cmd.Flags().StringArrayVar(&credits, "credit", nil, "credit line ACCOUNT_ID=AMOUNT (repeatable)")

	return cmd
}

// parseLineFlag parses "ACCOUNT_ID=AMOUNT".
func parseLineFlag(s string) (int, decimal.Decimal, error) {
	idStr, amtStr, ok := strings.Cut(s, "=")
	if !ok {
		return 0, decimal.Decimal{}, errors.New("want ACCOUNT_ID=AMOUNT")
	}
	id, err := strconv.Atoi(strings.TrimSpace(idStr))
	if err != nil {
		return 0, decimal.Decimal{}, fmt.Errorf("invalid account id %q", idStr)
	}
	amt, err := decimal.NewFromString(strings.TrimSpace(amtStr))
	if err != nil {
		return 0, decimal.Decimal{}, fmt.Errorf("invalid amount %q", amtStr)
	}
	if !amt.IsPositive() {
		return 0, decimal.Decimal{}, errors.New("amount must be positive")
	}
	return id, amt, nil
}

func newJournalCheckCommand(opts *globalOptions) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate journal files and report entry balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			chart, err := accounts.Load(cfg.Journal.Dir)
			if err != nil {
				return err
			}
			store := journal.NewStore(cfg.Journal.Dir, chart, logger)

			var months []journal.Month
			if month != "" {
				m, err := journal.ParseMonth(month)
				if err != nil {
					return err
				}
				months = []journal.Month{m}
			} else {
				months, err = store.Months()
				if err != nil {
					return err
				}
			}

			violations := 0
			for _, m := range months {
				n, err := checkMonth(cmd.OutOrStdout(), store, chart, m)
				if err != nil {
					return err
				}
				violations += n
			}

			if violations > 0 {
				return fmt.Errorf("%d violation(s) found", violations)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d month(s) checked, no violations\n", len(months))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "only check this month (YYYY-MM)")

	return cmd
}

func checkMonth(w io.Writer, store *journal.Store, chart *accounts.Chart, m journal.Month) (int, error) {
	rows, err := store.ReadMonth(m.Year, m.Month)
	if err != nil {
		return 0, err
	}

	fmt.Fprintf(w, "%s\n", m)
	for _, entry := range journal.GroupEntries(rows, chart) {
		fmt.Fprintf(w, "  %s  %s\n", entry.ID, journal.CheckBalance(entry))
	}

	verrs := journal.Validate(rows, chart, m.Year, m.Month)
	for _, ve := range verrs {
		fmt.Fprintf(w, "  error: %s\n", ve)
	}
	return len(verrs), nil
}
