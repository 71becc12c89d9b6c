package risk

import (
	"regexp"
	"strconv"
	"strings"
)

// RawInputs are the calculator fields as typed by a user.
type RawInputs struct {
	AccountSize string
	RiskPercent string
	Symbol      string
	EntryPrice  string
	ExitPrice   string
	StopLoss    string
}

var numberPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber reads the leading decimal number of s. Anything that does
// not start with a number yields 0, so half-typed values such as "1.2"
// or "1.2x" still parse while "" and "abc" degrade to zero.
func ParseNumber(s string) float64 {
	m := numberPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// out of range
		return 0
	}
	return v
}

// ParseInputs converts raw text fields into Inputs without failing.
func ParseInputs(raw RawInputs) Inputs {
	return Inputs{
		AccountSize: ParseNumber(raw.AccountSize),
		RiskPercent: ParseNumber(raw.RiskPercent),
		Symbol:      strings.TrimSpace(raw.Symbol),
		EntryPrice:  ParseNumber(raw.EntryPrice),
		ExitPrice:   ParseNumber(raw.ExitPrice),
		StopLoss:    ParseNumber(raw.StopLoss),
	}
}
