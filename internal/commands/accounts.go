package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dealerbooks/dealerbooks/internal/accounts"
	"github.com/dealerbooks/dealerbooks/internal/config"
	"github.com/dealerbooks/dealerbooks/internal/model"
)

func newAccountsCommand(opts *globalOptions) *cobra.Command {
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Chart of accounts",
	}
	accountsCmd.AddCommand(newAccountsListCommand(opts))
	return accountsCmd
}

func newAccountsListCommand(opts *globalOptions) *cobra.Command {
	var typeFilter string
	var source string
	var token string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			var want model.AccountType
			if typeFilter != "" {
				t, ok := model.ParseAccountType(typeFilter)
				if !ok {
					return fmt.Errorf("unknown account type %q", typeFilter)
				}
				want = t
			}

			if source == "" {
				source = cfg.Source
			}

			var accts []model.Account
			switch source {
			case config.SourceFile:
				chart, err := accounts.Load(cfg.Journal.Dir)
				if err != nil {
					return err
				}
				accts = chart.All()
			case config.SourceRemote:
				client, session, err := remoteClient(cfg, logger, token)
				if err != nil {
					return err
				}
				accts, err = client.Accounts(cmd.Context(), session)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown source %q", source)
			}

			if want != "" {
				accts = accounts.NewChart(accts).ByType(want)
			}
			return printAccounts(cmd.OutOrStdout(), accts)
		},
	}

	cmd.Flags().StringVar(&typeFilter, "type", "", "only list accounts of this type")
	cmd.Flags().StringVar(&source, "source", "", "file or remote (default from config)")
	cmd.Flags().StringVar(&token, "token", "", "backend access token (overrides the saved session)")

	return cmd
}

func printAccounts(w io.Writer, accts []model.Account) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCODE\tNAME\tTYPE")
	for _, a := range accts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", a.ID, a.Code, a.Name, a.Type)
	}
	return tw.Flush()
}
