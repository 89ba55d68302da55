package domain

// StrategyComparison is the result of running both strategies over the same
// debts and budget. Both full results are embedded so callers can render
// either schedule without a second pass.
type StrategyComparison struct {
	Snowball        *SimulationResult `json:"snowball"`
	Avalanche       *SimulationResult `json:"avalanche"`
	InterestSavings float64           `json:"interest_savings"`
	TimeSavings     int               `json:"time_savings"`
	Recommended     Strategy          `json:"recommended"`
	Reason          string            `json:"reason"`
}

// ExtraPaymentAnalysis reports what an additional monthly amount buys.
type ExtraPaymentAnalysis struct {
	Base            float64 `json:"base"`
	Extra           float64 `json:"extra"`
	InterestSavings float64 `json:"interest_savings"`
	TimeSavings     int     `json:"time_savings"`
	ROI             float64 `json:"roi"`
}
