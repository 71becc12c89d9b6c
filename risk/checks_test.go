package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func codes(d Decision) []string {
	var out []string
	for _, v := range d.Violations {
		out = append(out, v.Code)
	}
	return out
}

func TestCheck(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	tests := []struct {
		name string
		in   Inputs
		want []string
	}{
		{
			name: "clean",
			in:   Inputs{AccountSize: 10000, RiskPercent: 1, Symbol: "EUR/USD", EntryPrice: 1.1, ExitPrice: 1.11, StopLoss: 1.095},
		},
		{
			name: "missing prices",
			in:   Inputs{AccountSize: 10000, RiskPercent: 1, Symbol: "EUR/USD", EntryPrice: 1.1},
			want: []string{"NO_PRICES"},
		},
		{
			name: "risk too high",
			in:   Inputs{AccountSize: 10000, RiskPercent: 5, Symbol: "EUR/USD", EntryPrice: 1.1, ExitPrice: 1.11, StopLoss: 1.095},
			want: []string{"RISK_TOO_HIGH"},
		},
		{
			name: "rr too low and stop wrong side",
			in:   Inputs{AccountSize: 10000, RiskPercent: 1, Symbol: "EUR/USD", EntryPrice: 1.1, ExitPrice: 1.101, StopLoss: 1.105},
			want: []string{"RR_TOO_LOW", "STOP_WRONG_SIDE"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := Check(p, tt.in, Calculate(tt.in))
			assert.Equal(t, tt.want, codes(d))
			assert.Equal(t, len(tt.want) == 0, d.Allowed)
		})
	}
}

func TestCheckZeroPolicyEnforcesNothing(t *testing.T) {
	t.Parallel()

	in := Inputs{AccountSize: 10000, RiskPercent: 50, Symbol: "AAPL", EntryPrice: 150, ExitPrice: 151, StopLoss: 140}
	d := Check(Policy{}, in, Calculate(in))
	assert.True(t, d.Allowed)
}
