package journal

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"
)

var csvHeader = []string{
	"trade_id", "created_at", "instrument", "category", "direction",
	"account_size", "risk_percent", "entry_price", "exit_price", "stop_loss",
	"risk_amount", "lot_size", "risk_reward", "profit_pips", "loss_pips",
	"profit_dollars", "loss_dollars", "notes",
}

// CSVJournal appends trades to a CSV stream.
type CSVJournal struct {
	w *csv.Writer
	c io.Closer
}

// NewCSV creates (or truncates) path and writes the header row.
func NewCSV(path string) (*CSVJournal, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	j, err := NewCSVWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	j.c = f
	return j, nil
}

// NewCSVWriter writes the header row to w. Closing the journal flushes
// but does not close w.
func NewCSVWriter(w io.Writer) (*CSVJournal, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return nil, err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return &CSVJournal{w: cw}, nil
}

func (j *CSVJournal) RecordTrade(_ context.Context, t TradeRecord) error {
	err := j.w.Write([]string{
		t.ID,
		t.CreatedAt.UTC().Format(time.RFC3339),
		t.Symbol,
		string(t.Category),
		string(t.Direction),
		f(t.AccountSize),
		f(t.RiskPercent),
		f(t.EntryPrice),
		f(t.ExitPrice),
		f(t.StopLoss),
		f(t.RiskAmount),
		f(t.LotSize),
		f(t.RiskRewardRatio),
		f(t.ProfitPips),
		f(t.LossPips),
		f(t.ProfitDollars),
		f(t.LossDollars),
		t.Notes,
	})
	if err != nil {
		return err
	}
	j.w.Flush()
	return j.w.Error()
}

// WriteCSV exports trades to w with a header row.
func WriteCSV(ctx context.Context, w io.Writer, trades []TradeRecord) error {
	j, err := NewCSVWriter(w)
	if err != nil {
		return err
	}
	for _, t := range trades {
		if err := j.RecordTrade(ctx, t); err != nil {
			return err
		}
	}
	return j.Close()
}

func (j *CSVJournal) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		return err
	}
	if j.c != nil {
		return j.c.Close()
	}
	return nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
