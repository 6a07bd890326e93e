package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dealerbooks/dealerbooks/internal/accounts"
	"github.com/dealerbooks/dealerbooks/internal/backend"
	"github.com/dealerbooks/dealerbooks/internal/config"
	"github.com/dealerbooks/dealerbooks/internal/journal"
	"github.com/dealerbooks/dealerbooks/internal/ledger"
	"github.com/dealerbooks/dealerbooks/internal/model"
	"github.com/dealerbooks/dealerbooks/internal/render"
)

// entrySource yields the journal entries a report is built from. Sources may
// return entries outside the period; the aggregator filters by date.
type entrySource interface {
	Entries(ctx context.Context, p model.Period) ([]model.JournalEntry, error)
}

type reportOptions struct {
	from   string
	to     string
	source string
	format string
	token  string
}

// now is replaced in tests.
var now = time.Now

func newReportCommand(opts *globalOptions) *cobra.Command {
	ro := &reportOptions{}

	cmd := &cobra.Command{
		Use:       "report [balance|income|all]",
		Short:     "Print the balance sheet and income statement",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"balance", "income", "all"},
		RunE: func(cmd *cobra.Command, args []string) error {
			which := render.StatementAll
			if len(args) > 0 {
				var err error
				which, err = render.ParseStatement(args[0])
				if err != nil {
					return err
				}
			}

			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return runReport(cmd, cfg, logger, ro, which)
		},
	}

	cmd.Flags().StringVar(&ro.from, "from", "", "first day YYYY-MM-DD (default start of fiscal year)")
	cmd.Flags().StringVar(&ro.to, "to", "", "last day YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&ro.source, "source", "", "file or remote (default from config)")
	cmd.Flags().StringVar(&ro.format, "format", "text", "output format: text or json")
	cmd.Flags().StringVar(&ro.token, "token", "", "backend access token (overrides the saved session)")

	return cmd
}

func runReport(cmd *cobra.Command, cfg *config.Config, logger *zap.Logger, ro *reportOptions, which render.Statement) error {
	if ro.format != "text" && ro.format != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", ro.format)
	}

	period, err := reportPeriod(cfg.Fiscal.YearStart, ro.from, ro.to)
	if err != nil {
		return err
	}

	src, err := openSource(cfg, logger, ro)
	if err != nil {
		return err
	}

	entries, err := src.Entries(cmd.Context(), period)
	if err != nil {
		return fmt.Errorf("loading entries: %w", err)
	}

	res, err := ledger.NewAggregator(logger).Aggregate(entries, period.Start, period.End)
	if err != nil {
		return err
	}

	r := render.Report{
		Title:  cfg.Business.Name,
		Period: period.String(),
		Result: res,
	}
	if ro.format == "json" {
		return render.JSON(cmd.OutOrStdout(), r, which)
	}
	return render.Text(cmd.OutOrStdout(), r, which)
}

// reportPeriod defaults to the current fiscal year through today. Either end
// can be overridden on its own.
func reportPeriod(yearStart, from, to string) (model.Period, error) {
	p, err := model.FiscalYearToDate(yearStart, now())
	if err != nil {
		return model.Period{}, err
	}
	if from == "" {
		from = p.Start.Format(model.DateFormat)
	}
	if to == "" {
		to = p.End.Format(model.DateFormat)
	}
	return model.ParsePeriod(from, to)
}

func openSource(cfg *config.Config, logger *zap.Logger, ro *reportOptions) (entrySource, error) {
	source := ro.source
	if source == "" {
		source = cfg.Source
	}

	switch source {
	case config.SourceFile:
		chart, err := accounts.Load(cfg.Journal.Dir)
		if err != nil {
			return nil, err
		}
		return journal.NewStore(cfg.Journal.Dir, chart, logger), nil
	case config.SourceRemote:
		client, session, err := remoteClient(cfg, logger, ro.token)
		if err != nil {
			return nil, err
		}
		return backend.Source{Client: client, Session: session}, nil
	}
	return nil, fmt.Errorf("unknown source %q (want file or remote)", source)
}
