package domain

// Debt is the caller-facing debt record. Type and DueDate are passthrough
// fields the arithmetic never touches.
type Debt struct {
	ID             string  `json:"id"`
	Name           string  `json:"name" validate:"required"`
	Balance        float64 `json:"balance" validate:"gt=0"`
	APR            float64 `json:"apr" validate:"gte=0"`
	MinimumPayment float64 `json:"minimum_payment" validate:"gt=0"`
	Type           string  `json:"type,omitempty"`
	DueDate        string  `json:"due_date,omitempty"`
}

// NormalizedDebt is the engine's internal form of a Debt: balance rounded to
// 2 decimal places, all numeric fields known finite, id always set.
type NormalizedDebt struct {
	ID             string
	Name           string
	Balance        float64
	APR            float64
	MinimumPayment float64
	Type           string
	DueDate        string
}

// MonthlyRate converts the debt's APR percent number into a monthly rate.
func (d NormalizedDebt) MonthlyRate() float64 {
	return (d.APR / 100) / 12
}
