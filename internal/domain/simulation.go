package domain

import "time"

// Strategy selects how extra payment is prioritized across debts.
type Strategy string

const (
	StrategySnowball  Strategy = "snowball"  // smallest balance first
	StrategyAvalanche Strategy = "avalanche" // highest APR first
)

// Valid reports whether the strategy is one of the supported values.
func (s Strategy) Valid() bool {
	return s == StrategySnowball || s == StrategyAvalanche
}

// DefaultMaxMonths bounds a simulation at 50 years.
const DefaultMaxMonths = 600

// SimulationOptions parameterize a single engine run.
type SimulationOptions struct {
	Strategy      Strategy  `json:"strategy"`
	MonthlyBudget float64   `json:"monthly_budget"`
	StartDate     time.Time `json:"start_date"`
	MaxMonths     int       `json:"max_months"`
}

// SchedulePayment is one debt's slice of a monthly schedule entry.
type SchedulePayment struct {
	DebtID           string  `json:"debt_id"`
	DebtName         string  `json:"debt_name"`
	Payment          float64 `json:"payment"`
	InterestAccrued  float64 `json:"interest_accrued"`
	BalanceRemaining float64 `json:"balance_remaining"`
}

// ScheduleEntry is one simulated month.
type ScheduleEntry struct {
	MonthIndex       int               `json:"month_index"`
	Date             string            `json:"date"`
	TotalInterest    float64           `json:"total_interest"`
	TotalPaid        float64           `json:"total_paid"`
	RemainingBalance float64           `json:"remaining_balance"`
	Payments         []SchedulePayment `json:"payments"`
}

// DebtSummary aggregates one debt over the whole run. MonthsToPayoff and
// PayoffDate stay nil until the debt's balance first reaches zero.
type DebtSummary struct {
	DebtID          string  `json:"debt_id"`
	DebtName        string  `json:"debt_name"`
	StartingBalance float64 `json:"starting_balance"`
	TotalInterest   float64 `json:"total_interest"`
	TotalPaid       float64 `json:"total_paid"`
	MonthsToPayoff  *int    `json:"months_to_payoff"`
	PayoffDate      *string `json:"payoff_date"`
}

// SimulationResult is the engine's full output record.
type SimulationResult struct {
	Strategy      Strategy        `json:"strategy"`
	Months        int             `json:"months"`
	TotalInterest float64         `json:"total_interest"`
	TotalPaid     float64         `json:"total_paid"`
	PayoffDate    string          `json:"payoff_date"`
	DebtSummaries []DebtSummary   `json:"debt_summaries"`
	Schedule      []ScheduleEntry `json:"schedule"`
}
