package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/risk"
)

func newDirectionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "direction <entry> <exit> [stop]",
		Short: "Detect trade direction from target and stop placement",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := risk.ParseNumber(args[0])
			exit := risk.ParseNumber(args[1])
			var stop float64
			if len(args) == 3 {
				stop = risk.ParseNumber(args[2])
			}

			d := risk.Detect(entry, exit, stop)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Calculator direction: %s\n", risk.DirectionOf(entry, exit))
			if d.Direction != "" {
				fmt.Fprintf(w, "Detected:             %s\n", d.Direction)
			} else {
				fmt.Fprintf(w, "Detected:             none\n")
			}
			fmt.Fprintf(w, "Confidence:           %d%%\n", d.Confidence)
			fmt.Fprintf(w, "Auto-select:          %t\n", d.AutoSelect)
			fmt.Fprintf(w, "Reason:               %s\n", d.Reason)
			return nil
		},
	}
}
