package risk

// Policy holds the limits a trade setup is checked against.
type Policy struct {
	MaxRiskPercent float64 `json:"maxRiskPercent" yaml:"max_risk_percent" mapstructure:"max_risk_percent"` // 2
	MinRR          float64 `json:"minRR" yaml:"min_rr" mapstructure:"min_rr"`                             // 1.5
}

// DefaultPolicy is a conservative retail policy.
func DefaultPolicy() Policy {
	return Policy{
		MaxRiskPercent: 2,
		MinRR:          1.5,
	}
}
