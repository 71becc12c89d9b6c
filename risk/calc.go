package risk

import (
	"math"

	"github.com/rustyeddy/tradelog/market"
)

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// RiskAmount is the money at risk for the given account settings, or 0
// when either setting is missing. Non-finite settings count as missing.
func RiskAmount(accountSize, riskPercent float64) float64 {
	if !positive(accountSize) || !positive(riskPercent) {
		return 0
	}
	return accountSize * riskPercent / 100
}

// PricesValid reports whether entry, exit and stop are all usable.
func PricesValid(entry, exit, stop float64) bool {
	return positive(entry) && positive(exit) && positive(stop)
}

// Levels places the stop and target a number of pips away from entry on
// the side implied by dir.
func Levels(inst market.Instrument, entry, stopPips, targetPips float64, dir Direction) (stop, target float64) {
	stopDist := stopPips * inst.PipSize
	targetDist := targetPips * inst.PipSize
	if dir == Short {
		return entry + stopDist, entry - targetDist
	}
	return entry - stopDist, entry + targetDist
}
