package risk

import (
	"fmt"
)

// Violation is one failed policy rule.
type Violation struct {
	Code string `json:"code"`
	Msg  string `json:"message"`
}

// Decision is advisory. It never changes the Result it was built from.
type Decision struct {
	Allowed    bool        `json:"allowed"`
	Violations []Violation `json:"violations,omitempty"`
}

func (d *Decision) add(code, msg string) {
	d.Violations = append(d.Violations, Violation{Code: code, Msg: msg})
	d.Allowed = false
}

// Check evaluates a calculated trade setup against p. Zero limits in p
// are not enforced.
func Check(p Policy, in Inputs, res Result) Decision {
	d := Decision{Allowed: true}

	if !PricesValid(in.EntryPrice, in.ExitPrice, in.StopLoss) {
		d.add("NO_PRICES", "entry, target and stop loss must be set")
		return d
	}

	if p.MaxRiskPercent > 0 && in.RiskPercent > p.MaxRiskPercent {
		d.add("RISK_TOO_HIGH",
			fmt.Sprintf("risk %.2f%% exceeds max %.2f%%", in.RiskPercent, p.MaxRiskPercent))
	}

	if p.MinRR > 0 && res.RiskRewardRatio < p.MinRR {
		d.add("RR_TOO_LOW",
			fmt.Sprintf("RR %.2f below minimum %.2f", res.RiskRewardRatio, p.MinRR))
	}

	if det := Detect(in.EntryPrice, in.ExitPrice, in.StopLoss); det.Conflict {
		d.add("STOP_WRONG_SIDE", det.Reason)
	}

	return d
}
