package server

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/tradelog/journal"
	"github.com/rustyeddy/tradelog/market"
	"github.com/rustyeddy/tradelog/risk"
)

// Field is a numeric form value sent as either a JSON string or a JSON
// number. It is parsed leniently, so "" and "1.2x" are accepted.
type Field string

func (f *Field) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = Field(s)
		return nil
	}
	*f = Field(b)
	return nil
}

type calcRequest struct {
	AccountSize    Field  `json:"accountSize"`
	RiskPercentage Field  `json:"riskPercentage"`
	Instrument     string `json:"instrument"`
	EntryPrice     Field  `json:"entryPrice"`
	ExitPrice      Field  `json:"exitPrice"`
	StopLoss       Field  `json:"stopLoss"`
	Notes          string `json:"notes"`
}

func (r calcRequest) inputs() risk.Inputs {
	return risk.ParseInputs(risk.RawInputs{
		AccountSize: string(r.AccountSize),
		RiskPercent: string(r.RiskPercentage),
		Symbol:      r.Instrument,
		EntryPrice:  string(r.EntryPrice),
		ExitPrice:   string(r.ExitPrice),
		StopLoss:    string(r.StopLoss),
	})
}

type calcResponse struct {
	Inputs     risk.Inputs        `json:"inputs"`
	Instrument *market.Instrument `json:"instrument,omitempty"`
	Result     risk.Result        `json:"result"`
	Detection  risk.Detection     `json:"detection"`
	Decision   risk.Decision      `json:"decision"`
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// filterFromQuery reads symbol, category, direction, from, to and limit.
func filterFromQuery(get func(string) string) (journal.Filter, error) {
	var f journal.Filter

	f.Symbol = strings.TrimSpace(get("symbol"))

	if s := get("category"); s != "" {
		c, ok := market.ParseCategory(s)
		if !ok {
			return f, fmt.Errorf("unknown category %q", s)
		}
		f.Category = c
	}
	if s := get("direction"); s != "" {
		d, err := risk.ParseDirection(s)
		if err != nil {
			return f, err
		}
		f.Direction = d
	}
	if s := get("from"); s != "" {
		t, err := parseTime(s)
		if err != nil {
			return f, fmt.Errorf("from: %w", err)
		}
		f.From = t
	}
	if s := get("to"); s != "" {
		t, err := parseTime(s)
		if err != nil {
			return f, fmt.Errorf("to: %w", err)
		}
		f.To = t
	}
	if s := get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return f, fmt.Errorf("limit must be a non-negative integer")
		}
		f.Limit = n
	}
	return f, nil
}
