// market/instruments.go
package market

import (
	"fmt"
	"math"
	"sort"
)

// Instrument carries the constants needed to turn a price difference into
// money.
type Instrument struct {
	Symbol   string   `json:"symbol" yaml:"symbol"`
	Name     string   `json:"name" yaml:"name"`
	Category Category `json:"category" yaml:"category"`

	// PipValue is the account-currency value of a one pip move for one
	// standard unit (lot, contract, share or coin).
	PipValue float64 `json:"pipValue" yaml:"pip_value"`

	// PipSize is the price increment that makes up one pip.
	PipSize float64 `json:"pipSize" yaml:"pip_size"`

	// ContractSize is informational; the sizing formulas do not use it.
	ContractSize float64 `json:"contractSize" yaml:"contract_size"`
}

// PipSize converts a broker pip location (-4 for EUR/USD, -2 for USD/JPY)
// into a price increment.
func PipSize(loc int) float64 {
	return math.Pow10(loc)
}

// PipLocation is the inverse of PipSize. ok is false when the pip size is
// not a power of ten, as with quarter-cent agricultural ticks.
func (i Instrument) PipLocation() (loc int, ok bool) {
	if i.PipSize <= 0 {
		return 0, false
	}
	loc = int(math.Round(math.Log10(i.PipSize)))
	if math.Abs(PipSize(loc)-i.PipSize) > i.PipSize*1e-9 {
		return 0, false
	}
	return loc, true
}

var (
	instruments []Instrument
	bySymbol    map[string]int
)

func init() {
	if err := Validate(catalog); err != nil {
		panic(fmt.Sprintf("market: bad instrument catalog: %v", err))
	}
	instruments = catalog
	bySymbol = make(map[string]int, len(catalog))
	for i, inst := range catalog {
		bySymbol[inst.Symbol] = i
	}
}

// Lookup returns the catalog entry for symbol.
func Lookup(symbol string) (Instrument, bool) {
	i, ok := bySymbol[symbol]
	if !ok {
		return Instrument{}, false
	}
	return instruments[i], true
}

// All returns a copy of the catalog in catalog order.
func All() []Instrument {
	out := make([]Instrument, len(instruments))
	copy(out, instruments)
	return out
}

// Symbols returns every symbol in the catalog, sorted.
func Symbols() []string {
	out := make([]string, 0, len(instruments))
	for _, inst := range instruments {
		out = append(out, inst.Symbol)
	}
	sort.Strings(out)
	return out
}

// ByCategory returns the instruments of category c in catalog order.
func ByCategory(c Category) []Instrument {
	var out []Instrument
	for _, inst := range instruments {
		if inst.Category == c {
			out = append(out, inst)
		}
	}
	return out
}

// Validate checks that every entry has a positive pip size and pip value,
// a known category and a unique symbol.
func Validate(list []Instrument) error {
	seen := make(map[string]struct{}, len(list))
	for _, inst := range list {
		if inst.Symbol == "" {
			return fmt.Errorf("instrument with empty symbol")
		}
		if _, dup := seen[inst.Symbol]; dup {
			return fmt.Errorf("duplicate symbol %s", inst.Symbol)
		}
		seen[inst.Symbol] = struct{}{}

		if inst.PipSize <= 0 {
			return fmt.Errorf("%s: pip size must be positive", inst.Symbol)
		}
		if inst.PipValue <= 0 {
			return fmt.Errorf("%s: pip value must be positive", inst.Symbol)
		}
		if inst.Category.Family() == FamilyUnknown {
			return fmt.Errorf("%s: unknown category %q", inst.Symbol, inst.Category)
		}
	}
	return nil
}
