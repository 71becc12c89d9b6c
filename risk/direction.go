package risk

import (
	"fmt"
	"strings"
)

// Direction is the side of a trade, LONG or SHORT.
type Direction string

const (
	Long  Direction = "LONG"
	Short Direction = "SHORT"
)

// ParseDirection accepts long/short and buy/sell in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LONG", "BUY":
		return Long, nil
	case "SHORT", "SELL":
		return Short, nil
	}
	return "", fmt.Errorf("unknown direction %q", s)
}

// DirectionOf is the calculator's direction rule: LONG when the target is
// strictly above entry, SHORT otherwise. Stop placement is not consulted.
func DirectionOf(entry, exit float64) Direction {
	if exit > entry {
		return Long
	}
	return Short
}

// AutoSelectConfidence is the minimum confidence at which a detected
// direction should be applied without asking.
const AutoSelectConfidence = 60

// Detection is the outcome of Detect.
type Detection struct {
	Direction  Direction `json:"direction,omitempty"`
	Confidence int       `json:"confidence"`
	AutoSelect bool      `json:"autoSelect"`
	StopValid  bool      `json:"stopValid"`
	Conflict   bool      `json:"conflict"`
	Reason     string    `json:"reason"`
}

// Detect infers a trade direction from the target and the stop placement
// together. Both agreeing gives full confidence. A target alone is a
// usable signal, a stop alone is weak, and a stop on the same side as
// the target is a conflict with no direction.
func Detect(entry, exit, stop float64) Detection {
	if !positive(entry) {
		return Detection{Reason: "entry price required"}
	}

	var fromTarget, fromStop Direction
	if positive(exit) && exit != entry {
		fromTarget = DirectionOf(entry, exit)
	}
	if positive(stop) && stop != entry {
		if stop < entry {
			fromStop = Long
		} else {
			fromStop = Short
		}
	}

	var d Detection
	switch {
	case fromTarget != "" && fromStop != "":
		if fromTarget != fromStop {
			d.Conflict = true
			d.Reason = "stop loss is on the same side of entry as the target"
			return d
		}
		d.Direction = fromTarget
		d.Confidence = 100
		d.StopValid = true
		d.Reason = "target and stop loss agree"
	case fromTarget != "":
		d.Direction = fromTarget
		d.Confidence = 60
		d.Reason = "inferred from target only"
	case fromStop != "":
		d.Direction = fromStop
		d.Confidence = 40
		d.StopValid = true
		d.Reason = "inferred from stop loss only"
	default:
		d.Reason = "target or stop loss required"
	}

	d.AutoSelect = d.Confidence >= AutoSelectConfidence
	return d
}
