package service

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/radityo/payoff-engine/internal/config"
	"github.com/radityo/payoff-engine/internal/domain"
	"github.com/radityo/payoff-engine/internal/repository"
	"github.com/radityo/payoff-engine/pkg/dates"
	"github.com/radityo/payoff-engine/pkg/money"
)

// DefaultRecommendThreshold is the interest saving above which avalanche is
// recommended over snowball.
const DefaultRecommendThreshold = 1000.0

// ComparisonService runs both strategies over the same inputs and diffs the
// outcomes.
type ComparisonService struct {
	simulator *SimulationService
	cache     repository.ResultCache
	cacheTTL  time.Duration
	threshold float64
}

// NewComparisonService creates a comparator. cache may be nil to disable
// result caching; cfg may be nil for built-in defaults.
func NewComparisonService(simulator *SimulationService, cfg *config.Config, cache repository.ResultCache) *ComparisonService {
	threshold := DefaultRecommendThreshold
	ttl := time.Duration(0)
	if cfg != nil {
		threshold = cfg.Simulation.RecommendInterestThreshold
		ttl = cfg.GetCacheTTL()
	}
	return &ComparisonService{
		simulator: simulator,
		cache:     cache,
		cacheTTL:  ttl,
		threshold: threshold,
	}
}

// Compare simulates snowball and avalanche at the same budget and reports
// the savings delta plus a recommendation. Errors from either run propagate
// verbatim; a comparison exists only when both runs succeed.
func (s *ComparisonService) Compare(debts []domain.Debt, monthlyBudget float64, startDate time.Time) (*domain.StrategyComparison, error) {
	key := comparisonCacheKey(debts, monthlyBudget, startDate)
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			var comparison domain.StrategyComparison
			if err := json.Unmarshal([]byte(cached), &comparison); err == nil {
				return &comparison, nil
			}
		}
	}

	snowball, err := s.simulator.Simulate(debts, domain.SimulationOptions{
		Strategy:      domain.StrategySnowball,
		MonthlyBudget: monthlyBudget,
		StartDate:     startDate,
	})
	if err != nil {
		return nil, err
	}

	avalanche, err := s.simulator.Simulate(debts, domain.SimulationOptions{
		Strategy:      domain.StrategyAvalanche,
		MonthlyBudget: monthlyBudget,
		StartDate:     startDate,
	})
	if err != nil {
		return nil, err
	}

	interestSavings := money.Round(snowball.TotalInterest - avalanche.TotalInterest)
	timeSavings := snowball.Months - avalanche.Months

	recommended := domain.StrategySnowball
	reason := "Snowball costs no extra interest here and its early payoffs keep motivation high"
	switch {
	case interestSavings > s.threshold:
		recommended = domain.StrategyAvalanche
		reason = fmt.Sprintf(
			"Paying highest-APR debts first saves a significant %.2f in interest", interestSavings)
	case interestSavings > 0:
		recommended = domain.StrategyAvalanche
		reason = fmt.Sprintf(
			"Paying highest-APR debts first saves %.2f in interest", interestSavings)
	}

	comparison := &domain.StrategyComparison{
		Snowball:        snowball,
		Avalanche:       avalanche,
		InterestSavings: interestSavings,
		TimeSavings:     timeSavings,
		Recommended:     recommended,
		Reason:          reason,
	}

	if s.cache != nil {
		if payload, err := json.Marshal(comparison); err == nil {
			if err := s.cache.Set(key, string(payload), s.cacheTTL); err != nil {
				log.Printf("comparison cache set failed: %v", err)
			}
		}
	}

	return comparison, nil
}

// comparisonCacheKey derives a deterministic key from the full input so
// identical requests hit the cache.
func comparisonCacheKey(debts []domain.Debt, monthlyBudget float64, startDate time.Time) string {
	var b strings.Builder
	b.WriteString("compare:")
	fmt.Fprintf(&b, "%.2f:%s", monthlyBudget, dates.FormatISO(startDate))
	// Name rides along because it is echoed into every summary and
	// schedule entry of the cached result.
	for _, d := range debts {
		fmt.Fprintf(&b, ":%s|%s|%.2f|%.4f|%.2f", d.ID, d.Name, d.Balance, d.APR, d.MinimumPayment)
	}
	return b.String()
}
