// journal/journal.go
package journal

import (
	"context"
	"errors"
	"time"

	"github.com/rustyeddy/tradelog/market"
	"github.com/rustyeddy/tradelog/pkg/id"
	"github.com/rustyeddy/tradelog/risk"
)

var ErrNotFound = errors.New("trade not found")

// TradeRecord is a saved calculator result together with the setup that
// produced it. LotSize is the calculator's position size.
type TradeRecord struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Symbol    string          `json:"instrument"`
	Category  market.Category `json:"category"`
	Direction risk.Direction  `json:"tradeDirection"`

	AccountSize float64 `json:"accountSize"`
	RiskPercent float64 `json:"riskPercentage"`
	EntryPrice  float64 `json:"entryPrice"`
	ExitPrice   float64 `json:"exitPrice"`
	StopLoss    float64 `json:"stopLoss"`

	RiskAmount      float64 `json:"riskAmount"`
	LotSize         float64 `json:"lotSize"`
	RiskRewardRatio float64 `json:"riskRewardRatio"`
	ProfitPips      float64 `json:"profitPips"`
	LossPips        float64 `json:"lossPips"`
	ProfitDollars   float64 `json:"profitDollars"`
	LossDollars     float64 `json:"lossDollars"`

	Notes string `json:"notes,omitempty"`
}

// NewTradeRecord copies a calculation into a new record. Nothing is
// recomputed.
func NewTradeRecord(in risk.Inputs, inst market.Instrument, res risk.Result, notes string) TradeRecord {
	now := time.Now().UTC()
	return TradeRecord{
		ID:              id.NewAt(now),
		CreatedAt:       now,
		Symbol:          inst.Symbol,
		Category:        inst.Category,
		Direction:       res.Direction,
		AccountSize:     in.AccountSize,
		RiskPercent:     in.RiskPercent,
		EntryPrice:      in.EntryPrice,
		ExitPrice:       in.ExitPrice,
		StopLoss:        in.StopLoss,
		RiskAmount:      res.RiskAmount,
		LotSize:         res.PositionSize,
		RiskRewardRatio: res.RiskRewardRatio,
		ProfitPips:      res.ProfitPips,
		LossPips:        res.LossPips,
		ProfitDollars:   res.ProfitDollars,
		LossDollars:     res.LossDollars,
		Notes:           notes,
	}
}

// Filter narrows ListTrades. Zero fields match everything.
type Filter struct {
	Symbol    string
	Category  market.Category
	Direction risk.Direction
	From      time.Time // inclusive
	To        time.Time // exclusive
	Limit     int
}

// Journal is a sink for trade records.
type Journal interface {
	RecordTrade(context.Context, TradeRecord) error
	Close() error
}

var (
	_ Journal = (*SQLite)(nil)
	_ Journal = (*CSVJournal)(nil)
)
