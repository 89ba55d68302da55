package service

import (
	"time"

	"github.com/radityo/payoff-engine/internal/domain"
	customError "github.com/radityo/payoff-engine/pkg/errors"
	"github.com/radityo/payoff-engine/pkg/money"
)

// ExtraPaymentService quantifies what raising the monthly budget buys.
type ExtraPaymentService struct {
	simulator *SimulationService
}

func NewExtraPaymentService(simulator *SimulationService) *ExtraPaymentService {
	return &ExtraPaymentService{simulator: simulator}
}

// Analyze simulates the same debts at the base budget and at base+extra and
// reports interest savings, time savings, and a simple ROI on the extra
// money committed.
func (s *ExtraPaymentService) Analyze(
	debts []domain.Debt,
	base, extra float64,
	strategy domain.Strategy,
	startDate time.Time,
) (*domain.ExtraPaymentAnalysis, error) {
	if extra <= 0 {
		return nil, customError.WrapInvalidBudget(extra)
	}

	baseResult, err := s.simulator.Simulate(debts, domain.SimulationOptions{
		Strategy:      strategy,
		MonthlyBudget: base,
		StartDate:     startDate,
	})
	if err != nil {
		return nil, err
	}

	extraResult, err := s.simulator.Simulate(debts, domain.SimulationOptions{
		Strategy:      strategy,
		MonthlyBudget: base + extra,
		StartDate:     startDate,
	})
	if err != nil {
		return nil, err
	}

	interestSavings := money.Round(baseResult.TotalInterest - extraResult.TotalInterest)
	timeSavings := baseResult.Months - extraResult.Months

	// ROI relates interest saved to the total extra money committed over
	// the faster scenario's lifetime.
	roi := 0.0
	if committed := extra * float64(extraResult.Months); committed > 0 {
		roi = money.Round(interestSavings / committed * 100)
	}

	return &domain.ExtraPaymentAnalysis{
		Base:            base,
		Extra:           extra,
		InterestSavings: interestSavings,
		TimeSavings:     timeSavings,
		ROI:             roi,
	}, nil
}
