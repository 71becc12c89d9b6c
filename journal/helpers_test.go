package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradelog/market"
	"github.com/rustyeddy/tradelog/risk"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	j, err := NewSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })

	return j, path
}

func sampleTrade(t *testing.T, symbol string, created time.Time) TradeRecord {
	t.Helper()

	inst, ok := market.Lookup(symbol)
	require.True(t, ok, symbol)

	in := risk.Inputs{AccountSize: 10000, RiskPercent: 1, Symbol: symbol}
	switch inst.Category.Family() {
	case market.FamilyPriceDistance:
		in.EntryPrice, in.ExitPrice, in.StopLoss = 150, 160, 145
	default:
		in.EntryPrice, in.ExitPrice, in.StopLoss = 1.1, 1.09, 1.105
	}

	rec := NewTradeRecord(in, inst, risk.Calculate(in), "sample "+symbol)
	rec.CreatedAt = created
	return rec
}
