package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/journal"
	"github.com/rustyeddy/tradelog/market"
	"github.com/rustyeddy/tradelog/pkg/id"
	"github.com/rustyeddy/tradelog/risk"
)

type filterFlags struct {
	symbol    string
	category  string
	direction string
	day       string
	limit     int
}

func (ff *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ff.symbol, "symbol", "", "only this instrument")
	cmd.Flags().StringVar(&ff.category, "category", "", "only this category")
	cmd.Flags().StringVar(&ff.direction, "direction", "", "only LONG or SHORT")
	cmd.Flags().StringVar(&ff.day, "day", "", "only trades created on YYYY-MM-DD (local time), or 'today'")
	cmd.Flags().IntVar(&ff.limit, "limit", 0, "maximum number of trades (0 = all)")
}

func (ff *filterFlags) filter() (journal.Filter, error) {
	f := journal.Filter{Symbol: ff.symbol, Limit: ff.limit}
	if ff.category != "" {
		c, ok := market.ParseCategory(ff.category)
		if !ok {
			return f, fmt.Errorf("unknown category %q", ff.category)
		}
		f.Category = c
	}
	if ff.direction != "" {
		d, err := risk.ParseDirection(ff.direction)
		if err != nil {
			return f, err
		}
		f.Direction = d
	}
	if ff.day != "" {
		day := ff.day
		if day == "today" {
			day = time.Now().Format("2006-01-02")
		}
		start, end, err := dayBounds(time.Local, day)
		if err != nil {
			return f, fmt.Errorf("date: %w", err)
		}
		f.From, f.To = start, end
	}
	return f, nil
}

func newJournalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Query the trade journal",
		Long: `Query and export trade records from the SQLite journal.

Subcommands:
  list     - List trades, newest first
  show     - Show a trade as an Org-mode block
  export   - Export trades as CSV
  summary  - Aggregate planned risk and reward
  delete   - Remove a trade

Examples:
  tradelog journal list --day today
  tradelog journal show <trade-id>
  tradelog journal export -o trades.csv --category forex`,
	}

	cmd.AddCommand(
		newJournalListCmd(a),
		newJournalShowCmd(a),
		newJournalExportCmd(a),
		newJournalSummaryCmd(a),
		newJournalDeleteCmd(a),
	)
	return cmd
}

func newJournalListCmd(a *app) *cobra.Command {
	ff := &filterFlags{}
	var org bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List trades",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ff.filter()
			if err != nil {
				return err
			}
			j, err := a.openJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			recs, err := j.ListTrades(cmd.Context(), f)
			if err != nil {
				return fmt.Errorf("query trades: %w", err)
			}

			w := cmd.OutOrStdout()
			if org {
				fmt.Fprintln(w, journal.FormatTradesOrg(recs))
				return nil
			}

			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCREATED\tINSTRUMENT\tDIR\tLOTS\tRISK\tRR")
			for _, r := range recs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.4f\t%.2f\t%.2f\n",
					r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Symbol, r.Direction,
					r.LotSize, r.RiskAmount, r.RiskRewardRatio)
			}
			return tw.Flush()
		},
	}

	ff.register(cmd)
	cmd.Flags().BoolVar(&org, "org", false, "print Org-mode blocks instead of a table")
	return cmd
}

func newJournalShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <trade-id>",
		Short: "Show a trade as an Org-mode block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkTradeID(args[0]); err != nil {
				return err
			}
			j, err := a.openJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			rec, err := j.GetTrade(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get trade: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), journal.FormatTradeOrg(rec))
			return nil
		},
	}
}

func newJournalExportCmd(a *app) *cobra.Command {
	ff := &filterFlags{}
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export trades as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ff.filter()
			if err != nil {
				return err
			}
			j, err := a.openJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			recs, err := j.ListTrades(cmd.Context(), f)
			if err != nil {
				return fmt.Errorf("query trades: %w", err)
			}

			if output == "-" {
				return journal.WriteCSV(cmd.Context(), cmd.OutOrStdout(), recs)
			}

			csvj, err := journal.NewCSV(output)
			if err != nil {
				return err
			}
			for _, r := range recs {
				if err := csvj.RecordTrade(cmd.Context(), r); err != nil {
					_ = csvj.Close()
					return fmt.Errorf("write csv: %w", err)
				}
			}
			if err := csvj.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %d trades to %s\n", len(recs), output)
			return nil
		},
	}

	ff.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "-", "CSV file to write, - for stdout")
	return cmd
}

func newJournalSummaryCmd(a *app) *cobra.Command {
	ff := &filterFlags{}
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize planned risk and reward",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ff.filter()
			if err != nil {
				return err
			}
			j, err := a.openJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			recs, err := j.ListTrades(cmd.Context(), f)
			if err != nil {
				return fmt.Errorf("query trades: %w", err)
			}
			s := journal.Summarize(recs)

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}
			fmt.Fprintf(w, "Trades:            %d (%d long, %d short)\n", s.Trades, s.Long, s.Short)
			for _, c := range market.Categories() {
				if n := s.ByCategory[c]; n > 0 {
					fmt.Fprintf(w, "  %-16s %d\n", c, n)
				}
			}
			fmt.Fprintf(w, "Total risk:        $%.2f\n", s.TotalRisk)
			fmt.Fprintf(w, "Potential profit:  $%.2f\n", s.TotalPotentialProfit)
			fmt.Fprintf(w, "Potential loss:    $%.2f\n", s.TotalPotentialLoss)
			fmt.Fprintf(w, "Average RR:        %.2f\n", s.AvgRiskReward)
			fmt.Fprintf(w, "Average risk:      %.2f%%\n", s.AvgRiskPercent)
			return nil
		},
	}

	ff.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newJournalDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <trade-id>",
		Short: "Delete a trade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkTradeID(args[0]); err != nil {
				return err
			}
			j, err := a.openJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			if err := j.DeleteTrade(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete trade: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted %s\n", args[0])
			return nil
		},
	}
}

// checkTradeID rejects arguments that are not trade IDs before the
// journal is opened.
func checkTradeID(s string) error {
	if _, err := id.Time(s); err != nil {
		return fmt.Errorf("invalid trade id %q: %w", s, err)
	}
	return nil
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)
	return start, end, nil
}
