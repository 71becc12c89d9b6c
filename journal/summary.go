package journal

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/tradelog/market"
	"github.com/rustyeddy/tradelog/risk"
)

// Summary aggregates planned figures across journal entries. Money totals
// are summed in decimal and rounded to cents. Non-finite figures count as 0.
type Summary struct {
	Trades     int                     `json:"trades"`
	Long       int                     `json:"long"`
	Short      int                     `json:"short"`
	ByCategory map[market.Category]int `json:"byCategory"`

	TotalRisk            float64 `json:"totalRisk"`
	TotalPotentialProfit float64 `json:"totalPotentialProfit"`
	TotalPotentialLoss   float64 `json:"totalPotentialLoss"`
	AvgRiskReward        float64 `json:"avgRiskReward"`
	AvgRiskPercent       float64 `json:"avgRiskPercent"`
}

func Summarize(trades []TradeRecord) Summary {
	s := Summary{ByCategory: map[market.Category]int{}}

	var risked, profit, loss, rr, pct decimal.Decimal
	for _, t := range trades {
		s.Trades++
		switch t.Direction {
		case risk.Long:
			s.Long++
		case risk.Short:
			s.Short++
		}
		s.ByCategory[t.Category]++

		risked = risked.Add(dec(t.RiskAmount))
		profit = profit.Add(dec(t.ProfitDollars))
		loss = loss.Add(dec(t.LossDollars))
		rr = rr.Add(dec(t.RiskRewardRatio))
		pct = pct.Add(dec(t.RiskPercent))
	}

	s.TotalRisk = risked.Round(2).InexactFloat64()
	s.TotalPotentialProfit = profit.Round(2).InexactFloat64()
	s.TotalPotentialLoss = loss.Round(2).InexactFloat64()
	if s.Trades > 0 {
		n := decimal.NewFromInt(int64(s.Trades))
		s.AvgRiskReward = rr.Div(n).Round(2).InexactFloat64()
		s.AvgRiskPercent = pct.Div(n).Round(2).InexactFloat64()
	}
	return s
}

func dec(x float64) decimal.Decimal {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(x)
}
