package market

import "strings"

// Category groups instruments that share a position sizing formula.
type Category string

const (
	Forex       Category = "Forex"
	Commodities Category = "Commodities"
	Stocks      Category = "Stocks"
	Indices     Category = "Indices"
	Crypto      Category = "Crypto"
)

// Family is the formula family a category is sized with.
type Family int

const (
	FamilyUnknown Family = iota

	// FamilyPipValue sizes positions from the loss in pips times the pip value.
	FamilyPipValue

	// FamilyPriceDistance sizes positions from the raw price distance to the stop.
	FamilyPriceDistance
)

func (f Family) String() string {
	switch f {
	case FamilyPipValue:
		return "pip-value"
	case FamilyPriceDistance:
		return "price-distance"
	default:
		return "unknown"
	}
}

// Family returns the sizing formula family for c.
func (c Category) Family() Family {
	switch c {
	case Forex, Indices, Commodities:
		return FamilyPipValue
	case Stocks, Crypto:
		return FamilyPriceDistance
	default:
		return FamilyUnknown
	}
}

// Categories lists the known categories in display order.
func Categories() []Category {
	return []Category{Forex, Commodities, Stocks, Indices, Crypto}
}

// ParseCategory matches s against the known categories, ignoring case.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}
