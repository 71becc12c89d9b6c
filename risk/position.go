package risk

import (
	"math"

	"github.com/rustyeddy/tradelog/market"
)

// Inputs is one position sizing request. RiskPercent is a percentage,
// 2 means 2% of AccountSize.
type Inputs struct {
	AccountSize float64 `json:"accountSize" yaml:"account_size"`
	RiskPercent float64 `json:"riskPercentage" yaml:"risk_percent"`
	Symbol      string  `json:"instrument" yaml:"instrument"`
	EntryPrice  float64 `json:"entryPrice" yaml:"entry_price"`
	ExitPrice   float64 `json:"exitPrice" yaml:"exit_price"`
	StopLoss    float64 `json:"stopLoss" yaml:"stop_loss"`
}

// Result holds everything derived from Inputs. A zero field means the
// inputs were incomplete for that field, not that an error occurred.
type Result struct {
	RiskAmount      float64   `json:"riskAmount" yaml:"risk_amount"`
	PositionSize    float64   `json:"positionSize" yaml:"position_size"`
	RiskRewardRatio float64   `json:"riskRewardRatio" yaml:"risk_reward_ratio"`
	ProfitPips      float64   `json:"profitPips" yaml:"profit_pips"`
	LossPips        float64   `json:"lossPips" yaml:"loss_pips"`
	ProfitDollars   float64   `json:"profitDollars" yaml:"profit_dollars"`
	LossDollars     float64   `json:"lossDollars" yaml:"loss_dollars"`
	Direction       Direction `json:"tradeDirection" yaml:"trade_direction"`
}

// Calculate resolves in.Symbol in the instrument catalog and sizes the
// position. An unknown symbol yields the same result as invalid prices.
func Calculate(in Inputs) Result {
	var inst *market.Instrument
	if found, ok := market.Lookup(in.Symbol); ok {
		inst = &found
	}
	return Compute(in.AccountSize, in.RiskPercent, inst, in.EntryPrice, in.ExitPrice, in.StopLoss)
}

// Compute derives risk, size and outcome figures for a trade setup.
//
// It never fails. Non-positive or non-finite inputs zero the fields that
// depend on them; RiskAmount depends only on the account settings and
// survives invalid prices or a nil instrument.
func Compute(accountSize, riskPercent float64, inst *market.Instrument, entry, exit, stop float64) Result {
	res := Result{
		RiskAmount: RiskAmount(accountSize, riskPercent),
		Direction:  DirectionOf(entry, exit),
	}

	if inst == nil || !positive(inst.PipSize) || !PricesValid(entry, exit, stop) {
		return res
	}

	res.LossPips = math.Abs(entry-stop) / inst.PipSize
	res.ProfitPips = math.Abs(exit-entry) / inst.PipSize

	if res.LossPips > 0 {
		res.RiskRewardRatio = res.ProfitPips / res.LossPips
	}

	switch inst.Category.Family() {
	case market.FamilyPipValue:
		if res.LossPips > 0 && res.RiskAmount > 0 {
			res.PositionSize = res.RiskAmount / (res.LossPips * inst.PipValue)
			res.ProfitDollars = res.ProfitPips * inst.PipValue * res.PositionSize
			res.LossDollars = res.LossPips * inst.PipValue * res.PositionSize
		}
	case market.FamilyPriceDistance:
		stopDistance := math.Abs(entry - stop)
		if stopDistance > 0 && res.RiskAmount > 0 {
			res.PositionSize = res.RiskAmount / stopDistance
			res.ProfitDollars = math.Abs(exit-entry) * res.PositionSize
			res.LossDollars = stopDistance * res.PositionSize
		}
	}

	return res
}

// Finite reports whether every figure in r is a finite number. Extreme
// account settings can overflow to Inf or NaN; such results cannot be
// encoded as JSON or stored in the journal.
func (r Result) Finite() bool {
	for _, x := range []float64{
		r.RiskAmount, r.PositionSize, r.RiskRewardRatio,
		r.ProfitPips, r.LossPips, r.ProfitDollars, r.LossDollars,
	} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
