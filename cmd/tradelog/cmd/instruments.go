package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/market"
)

func newInstrumentsCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "instruments",
		Short: "List the instrument catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := market.All()
			if category != "" {
				c, ok := market.ParseCategory(category)
				if !ok {
					return fmt.Errorf("unknown category %q", category)
				}
				list = market.ByCategory(c)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SYMBOL\tCATEGORY\tSIZING\tPIP SIZE\tPIP LOC\tPIP VALUE\tCONTRACT\tNAME")
			for _, inst := range list {
				loc := "-"
				if l, ok := inst.PipLocation(); ok {
					loc = strconv.Itoa(l)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%g\t%s\t%g\t%g\t%s\n",
					inst.Symbol, inst.Category, inst.Category.Family(), inst.PipSize, loc,
					inst.PipValue, inst.ContractSize, inst.Name)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only list one category (forex, commodities, stocks, indices, crypto)")
	return cmd
}
