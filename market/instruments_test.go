package market

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogInvariants(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(All()))
	assert.Len(t, Symbols(), len(All()))

	for _, inst := range All() {
		assert.Greater(t, inst.PipSize, 0.0, inst.Symbol)
		assert.Greater(t, inst.PipValue, 0.0, inst.Symbol)
		assert.NotEqual(t, FamilyUnknown, inst.Category.Family(), inst.Symbol)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	eur, ok := Lookup("EUR/USD")
	require.True(t, ok)
	assert.Equal(t, Forex, eur.Category)
	assert.Equal(t, 0.0001, eur.PipSize)
	assert.Equal(t, 10.0, eur.PipValue)

	aapl, ok := Lookup("AAPL")
	require.True(t, ok)
	assert.Equal(t, Stocks, aapl.Category)

	_, ok = Lookup("NOPE/USD")
	assert.False(t, ok)

	_, ok = Lookup("eur/usd")
	assert.False(t, ok, "lookup is exact")
}

func TestForexPipSizes(t *testing.T) {
	t.Parallel()

	for _, inst := range ByCategory(Forex) {
		if strings.HasSuffix(inst.Symbol, "/JPY") {
			assert.Equal(t, 0.01, inst.PipSize, inst.Symbol)
		} else {
			assert.Equal(t, 0.0001, inst.PipSize, inst.Symbol)
		}
	}
}

func TestStockAndCommodityPipSizes(t *testing.T) {
	t.Parallel()

	for _, inst := range ByCategory(Stocks) {
		assert.Equal(t, 0.01, inst.PipSize, inst.Symbol)
	}
	for _, inst := range ByCategory(Commodities) {
		assert.LessOrEqual(t, inst.PipSize, 0.01, inst.Symbol)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	t.Parallel()

	list := All()
	list[0].PipSize = 42

	first, ok := Lookup(list[0].Symbol)
	require.True(t, ok)
	assert.NotEqual(t, 42.0, first.PipSize)
}

func TestValidateRejectsBadEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		list   []Instrument
		errMsg string
	}{
		{
			name:   "zero pip size",
			list:   []Instrument{{Symbol: "X", Category: Forex, PipValue: 1}},
			errMsg: "pip size must be positive",
		},
		{
			name:   "zero pip value",
			list:   []Instrument{{Symbol: "X", Category: Forex, PipSize: 1}},
			errMsg: "pip value must be positive",
		},
		{
			name: "duplicate",
			list: []Instrument{
				{Symbol: "X", Category: Forex, PipSize: 1, PipValue: 1},
				{Symbol: "X", Category: Stocks, PipSize: 1, PipValue: 1},
			},
			errMsg: "duplicate symbol X",
		},
		{
			name:   "unknown category",
			list:   []Instrument{{Symbol: "X", Category: "Bonds", PipSize: 1, PipValue: 1}},
			errMsg: "unknown category",
		},
		{
			name:   "empty symbol",
			list:   []Instrument{{Category: Forex, PipSize: 1, PipValue: 1}},
			errMsg: "empty symbol",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.list)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestCategoryFamily(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FamilyPipValue, Forex.Family())
	assert.Equal(t, FamilyPipValue, Indices.Family())
	assert.Equal(t, FamilyPipValue, Commodities.Family())
	assert.Equal(t, FamilyPriceDistance, Stocks.Family())
	assert.Equal(t, FamilyPriceDistance, Crypto.Family())
	assert.Equal(t, FamilyUnknown, Category("Bonds").Family())
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	c, ok := ParseCategory(" forex ")
	assert.True(t, ok)
	assert.Equal(t, Forex, c)

	_, ok = ParseCategory("bonds")
	assert.False(t, ok)
}

func TestPipLocation(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.0001, PipSize(-4), 1e-15)
	assert.InDelta(t, 0.01, PipSize(-2), 1e-15)
	assert.Equal(t, 1.0, PipSize(0))

	for symbol, want := range map[string]int{"EUR/USD": -4, "USD/JPY": -2, "US30": 0, "SHIB/USD": -8} {
		inst, ok := Lookup(symbol)
		require.True(t, ok, symbol)
		loc, ok := inst.PipLocation()
		require.True(t, ok, symbol)
		assert.Equal(t, want, loc, symbol)
		assert.InDelta(t, inst.PipSize, PipSize(loc), inst.PipSize*1e-9, symbol)
	}

	corn, ok := Lookup("CORN")
	require.True(t, ok)
	_, ok = corn.PipLocation()
	assert.False(t, ok)
}
