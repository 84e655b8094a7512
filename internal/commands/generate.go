package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"AstroSentinel/internal/dashboard"
	"AstroSentinel/internal/seed"
)

func addSelectionFlags(cmd *cobra.Command, req *dashboard.Request) {
	cmd.Flags().StringVarP(&req.Symbol, "symbol", "s", "AAPL", "ticker symbol")
	cmd.Flags().StringVarP(&req.Date, "date", "d", "", "start date YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&req.Timeframe, "timeframe", "t", "intraday", "intraday, weekly or monthly")
}

func withToday(req dashboard.Request) dashboard.Request {
	if req.Date == "" {
		req.Date = today()
	}
	return req
}

func newSeedCmd(a *app) *cobra.Command {
	var req dashboard.Request
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Print the deterministic seed for a selection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, cleanup := a.buildService(cmd.Context())
			defer cleanup()
			in, sd, err := svc.Seed(withToday(req))
			if err != nil {
				return err
			}
			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), map[string]any{"canonical": seed.Canonical(in), "seed": sd})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", seed.Canonical(in), sd)
			return nil
		},
	}
	addSelectionFlags(cmd, &req)
	return cmd
}

func newSeriesCmd(a *app) *cobra.Command {
	var req dashboard.Request
	var tail int
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Generate the synthetic price series",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, cleanup := a.buildService(cmd.Context())
			defer cleanup()
			series, err := svc.Series(withToday(req))
			if err != nil {
				return err
			}
			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), series)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderSeries(series, tail))
			return nil
		},
	}
	addSelectionFlags(cmd, &req)
	cmd.Flags().IntVar(&tail, "tail", 0, "only print the last N points (0 = all)")
	return cmd
}

func newTransitsCmd(a *app) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "transits",
		Short: "Generate the transit table for a date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, cleanup := a.buildService(cmd.Context())
			defer cleanup()
			if date == "" {
				date = today()
			}
			table, err := svc.Transits(date)
			if err != nil {
				return err
			}
			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), table)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTransits(table))
			return nil
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "reference date YYYY-MM-DD (default today)")
	return cmd
}

func newReportCmd(a *app) *cobra.Command {
	var req dashboard.Request
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate the full dashboard report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, cleanup := a.buildService(cmd.Context())
			defer cleanup()
			rep, err := svc.Generate(cmd.Context(), withToday(req))
			if err != nil {
				return err
			}
			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), rep)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderReport(rep))
			return nil
		},
	}
	addSelectionFlags(cmd, &req)
	return cmd
}

func newHistoryCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently generated reports from the SQLite log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, cleanup := a.buildService(cmd.Context())
			defer cleanup()
			entries, err := svc.History(limit)
			if err != nil {
				return err
			}
			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), entries)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderHistory(entries))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of entries")
	return cmd
}
