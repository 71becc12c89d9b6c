package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/tradelog/journal"
	"github.com/rustyeddy/tradelog/market"
	"github.com/rustyeddy/tradelog/risk"
)

type calcOptions struct {
	raw        risk.RawInputs
	stopPips   float64
	targetPips float64
	side       string
	output     string
	save       bool
	notes      string
}

type calcOutput struct {
	Inputs    risk.Inputs    `json:"inputs" yaml:"inputs"`
	Result    risk.Result    `json:"result" yaml:"result"`
	Detection risk.Detection `json:"detection" yaml:"detection"`
	Decision  risk.Decision  `json:"decision" yaml:"decision"`
	TradeID   string         `json:"tradeId,omitempty" yaml:"trade_id,omitempty"`
}

func newCalcCmd(a *app) *cobra.Command {
	o := &calcOptions{}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Size a position from account risk",
		Long: `Calculate risk amount, position size, pip distances and the win/loss
outcome for a trade setup.

Prices may be given directly, or the stop and target may be placed a number
of pips from entry with --stop-pips/--target-pips and --side.

Examples:
  tradelog calc --symbol EUR/USD --account 10000 --risk 2 --entry 1.1 --exit 1.11 --stop 1.095
  tradelog calc --symbol AAPL --entry 150 --stop-pips 500 --target-pips 1000 --side long --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd, a, o)
		},
	}

	cmd.Flags().StringVarP(&o.raw.Symbol, "symbol", "s", "", "instrument symbol, e.g. EUR/USD (required)")
	cmd.Flags().StringVar(&o.raw.AccountSize, "account", "", "account size (default from config)")
	cmd.Flags().StringVar(&o.raw.RiskPercent, "risk", "", "risk percentage, 1 = 1% (default from config)")
	cmd.Flags().StringVar(&o.raw.EntryPrice, "entry", "", "entry price")
	cmd.Flags().StringVar(&o.raw.ExitPrice, "exit", "", "exit (take profit) price")
	cmd.Flags().StringVar(&o.raw.StopLoss, "stop", "", "stop loss price")
	cmd.Flags().Float64Var(&o.stopPips, "stop-pips", 0, "place the stop this many pips from entry")
	cmd.Flags().Float64Var(&o.targetPips, "target-pips", 0, "place the target this many pips from entry")
	cmd.Flags().StringVar(&o.side, "side", "long", "side used with --stop-pips/--target-pips: long|short")
	cmd.Flags().StringVarP(&o.output, "output", "o", "text", "output format: text|json|yaml")
	cmd.Flags().BoolVar(&o.save, "save", false, "record the setup in the journal")
	cmd.Flags().StringVar(&o.notes, "notes", "", "notes stored with --save")
	_ = cmd.MarkFlagRequired("symbol")

	return cmd
}

func runCalc(cmd *cobra.Command, a *app, o *calcOptions) error {
	in := risk.ParseInputs(o.raw)
	if o.raw.AccountSize == "" {
		in.AccountSize = a.cfg.Account.Size
	}
	if o.raw.RiskPercent == "" {
		in.RiskPercent = a.cfg.Account.RiskPercent
	}

	inst, found := market.Lookup(in.Symbol)
	if found && (o.stopPips > 0 || o.targetPips > 0) {
		dir, err := risk.ParseDirection(o.side)
		if err != nil {
			return err
		}
		stop, target := risk.Levels(inst, in.EntryPrice, o.stopPips, o.targetPips, dir)
		if o.stopPips > 0 {
			in.StopLoss = stop
		}
		if o.targetPips > 0 {
			in.ExitPrice = target
		}
	}

	res := risk.Calculate(in)
	out := calcOutput{
		Inputs:    in,
		Result:    res,
		Detection: risk.Detect(in.EntryPrice, in.ExitPrice, in.StopLoss),
		Decision:  risk.Check(a.cfg.Risk, in, res),
	}

	if o.save {
		if !found {
			return fmt.Errorf("unknown instrument: %s", in.Symbol)
		}
		if !risk.PricesValid(in.EntryPrice, in.ExitPrice, in.StopLoss) {
			return fmt.Errorf("entry, exit and stop must be positive to save")
		}
		if !res.Finite() {
			return fmt.Errorf("account settings overflow the calculation")
		}
		j, err := a.openJournal()
		if err != nil {
			return err
		}
		defer j.Close()

		rec := journal.NewTradeRecord(in, inst, res, o.notes)
		if err := j.RecordTrade(cmd.Context(), rec); err != nil {
			return fmt.Errorf("record trade: %w", err)
		}
		a.log.Info("trade recorded", zap.String("id", rec.ID), zap.String("instrument", rec.Symbol))
		out.TradeID = rec.ID
	}

	w := cmd.OutOrStdout()
	switch o.output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		return yaml.NewEncoder(w).Encode(out)
	case "text":
		printCalc(w, out, inst, found)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", o.output)
	}
}

func printCalc(w io.Writer, out calcOutput, inst market.Instrument, found bool) {
	in, res := out.Inputs, out.Result

	if found {
		fmt.Fprintf(w, "Instrument: %s (%s, pip %g, pip value $%g)\n", inst.Symbol, inst.Category, inst.PipSize, inst.PipValue)
	} else {
		fmt.Fprintf(w, "Instrument: %s (not in catalog)\n", in.Symbol)
	}
	fmt.Fprintf(w, "Account:    $%.2f at %.2f%% risk\n", in.AccountSize, in.RiskPercent)
	fmt.Fprintf(w, "Prices:     entry %g  exit %g  stop %g\n\n", in.EntryPrice, in.ExitPrice, in.StopLoss)

	fmt.Fprintf(w, "Direction:      %s\n", res.Direction)
	fmt.Fprintf(w, "Risk Amount:    $%.2f\n", res.RiskAmount)
	fmt.Fprintf(w, "Position Size:  %.4f\n", res.PositionSize)
	fmt.Fprintf(w, "Loss:           %.1f pips  $%.2f\n", res.LossPips, res.LossDollars)
	fmt.Fprintf(w, "Profit:         %.1f pips  $%.2f\n", res.ProfitPips, res.ProfitDollars)
	fmt.Fprintf(w, "Risk:Reward:    1:%.2f\n", res.RiskRewardRatio)

	if d := out.Detection; d.Direction != "" || d.Conflict {
		fmt.Fprintf(w, "\nDetected: %s (%d%% confidence, %s)\n", d.Direction, d.Confidence, d.Reason)
	}
	for _, v := range out.Decision.Violations {
		fmt.Fprintf(w, "! %s: %s\n", v.Code, v.Msg)
	}
	if out.TradeID != "" {
		fmt.Fprintf(w, "\nSaved trade %s\n", out.TradeID)
	}
}
