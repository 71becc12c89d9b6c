package journal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTradeOrg(t *testing.T) {
	t.Parallel()

	rec := sampleTrade(t, "EUR/USD", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	out := FormatTradeOrg(rec)

	assert.True(t, strings.HasPrefix(out, "** Trade: EUR/USD SHORT ("+rec.ID[:8]+")\n"))
	assert.Contains(t, out, ":TRADE_ID: "+rec.ID+"\n")
	assert.Contains(t, out, ":CREATED: 2024-01-02T03:04:05Z\n")
	assert.Contains(t, out, ":CATEGORY: Forex\n")
	assert.Contains(t, out, ":RISK_AMOUNT: 100.00\n")
	assert.Contains(t, out, ":LOSS_USD: 100.00\n")
	assert.Contains(t, out, "*** Thesis\n- sample EUR/USD\n")
	assert.True(t, strings.HasSuffix(out, "*** Review\n- \n"))
}

func TestFormatTradesOrg(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	a := sampleTrade(t, "EUR/USD", now)
	b := sampleTrade(t, "AAPL", now)

	out := FormatTradesOrg([]TradeRecord{a, b})
	assert.Equal(t, 2, strings.Count(out, "** Trade: "))
	assert.Contains(t, out, "- \n\n\n** Trade: AAPL")
	assert.Empty(t, FormatTradesOrg(nil))
}

func TestShortID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", shortID("abc"))
	assert.Equal(t, "01HZX3AB", shortID("01HZX3ABCDEFG"))
}
