package service

import (
	"math"
	"time"

	"github.com/radityo/payoff-engine/internal/config"
	"github.com/radityo/payoff-engine/internal/domain"
	"github.com/radityo/payoff-engine/pkg/dates"
	customError "github.com/radityo/payoff-engine/pkg/errors"
	"github.com/radityo/payoff-engine/pkg/money"
)

// SimulationService runs deterministic month-stepping payoff simulations.
// A run owns its working state exclusively, so one service instance can be
// shared across goroutines.
type SimulationService struct {
	defaultMaxMonths int
	limits           debtLimits
}

// NewSimulationService creates the engine. cfg may be nil, in which case the
// built-in defaults apply.
func NewSimulationService(cfg *config.Config) *SimulationService {
	maxMonths := domain.DefaultMaxMonths
	limits := defaultDebtLimits()
	if cfg != nil {
		if cfg.Simulation.MaxMonths > 0 {
			maxMonths = cfg.Simulation.MaxMonths
		}
		if cfg.Simulation.MaxDebtsPerRequest > 0 {
			limits.maxDebts = cfg.Simulation.MaxDebtsPerRequest
		}
		if cfg.Simulation.MaxDebtBalance > 0 {
			limits.maxBalance = cfg.Simulation.MaxDebtBalance
		}
		if cfg.Simulation.MaxAPR > 0 {
			limits.maxAPR = cfg.Simulation.MaxAPR
		}
	}
	return &SimulationService{defaultMaxMonths: maxMonths, limits: limits}
}

// Simulate runs a full payoff simulation and returns the month-by-month
// result. It either returns a complete result or an error; nothing is
// recovered mid-run.
func (s *SimulationService) Simulate(debts []domain.Debt, opts domain.SimulationOptions) (*domain.SimulationResult, error) {
	if !opts.Strategy.Valid() {
		return nil, customError.WrapInvalidStrategy(string(opts.Strategy))
	}
	if opts.MonthlyBudget <= 0 {
		return nil, customError.WrapInvalidBudget(opts.MonthlyBudget)
	}

	normalized, err := normalizeDebts(debts, s.limits)
	if err != nil {
		return nil, err
	}

	maxMonths := opts.MaxMonths
	if maxMonths <= 0 {
		maxMonths = s.defaultMaxMonths
	}
	startDate := opts.StartDate
	if startDate.IsZero() {
		startDate = time.Now().Truncate(24 * time.Hour)
	}

	// Working state: mutable balances indexed by input position, with the
	// normalized input retained read-only for the summaries.
	work := make([]*workingDebt, len(normalized))
	summaries := make([]domain.DebtSummary, len(normalized))
	for i, d := range normalized {
		work[i] = &workingDebt{
			inputIndex:     i,
			id:             d.ID,
			name:           d.Name,
			apr:            d.APR,
			minimumPayment: d.MinimumPayment,
			balance:        d.Balance,
		}
		summaries[i] = domain.DebtSummary{
			DebtID:          d.ID,
			DebtName:        d.Name,
			StartingBalance: d.Balance,
		}
	}

	// Month-0 feasibility: the budget must cover every minimum payment
	// (capped by the balance it would retire).
	required := 0.0
	for _, d := range work {
		required += math.Min(d.minimumPayment, d.balance)
	}
	if opts.MonthlyBudget < required {
		return nil, customError.WrapBudgetTooLow(opts.MonthlyBudget, money.Round(required))
	}

	less := orderingFor(opts.Strategy)

	// Running sums stay in full float precision; rounding happens only when
	// values are emitted into result fields.
	totalInterest := 0.0
	totalPaid := 0.0
	sumInterest := make([]float64, len(work))
	sumPaid := make([]float64, len(work))
	schedule := make([]domain.ScheduleEntry, 0)

	months := 0
	for anyOutstanding(work) {
		if months >= maxMonths {
			return nil, customError.WrapSimulationDiverges(maxMonths)
		}
		months++
		m := months

		monthInterest := make([]float64, len(work))
		monthPaid := make([]float64, len(work))

		// 1. Accrue interest on positive balances.
		interestThisMonth := 0.0
		for _, d := range work {
			if d.balance <= 0 {
				continue
			}
			interest := d.balance * (d.apr / 100) / 12
			d.balance += interest
			monthInterest[d.inputIndex] = interest
			interestThisMonth += interest
		}

		// 2. Minimum payments in original input order.
		remaining := opts.MonthlyBudget
		for _, d := range work {
			if d.balance <= 0 {
				continue
			}
			pay := math.Min(d.minimumPayment, d.balance)
			pay = math.Min(pay, remaining)
			if pay <= 0 {
				continue
			}
			d.balance -= pay
			remaining -= pay
			monthPaid[d.inputIndex] += pay
		}

		// 3. Extra payment, cascading in strategy order as debts hit zero.
		for remaining > 0 {
			active := activeInOrder(work, less)
			if len(active) == 0 {
				break
			}
			target := active[0]
			extra := math.Min(target.balance, remaining)
			target.balance -= extra
			remaining -= extra
			monthPaid[target.inputIndex] += extra
		}

		// 4. Finalize lifecycle: a summary is never re-opened once its
		// payoff month is assigned.
		for _, d := range work {
			if money.IsPaidOff(d.balance) && summaries[d.inputIndex].MonthsToPayoff == nil {
				payoffMonth := m
				payoffDate := dates.FormatISO(dates.AddMonths(startDate, m-1))
				summaries[d.inputIndex].MonthsToPayoff = &payoffMonth
				summaries[d.inputIndex].PayoffDate = &payoffDate
				d.balance = 0
			}
		}

		// 5. Emit the schedule entry, clamping every money field.
		remainingTotal := 0.0
		payments := make([]domain.SchedulePayment, 0, len(work))
		for _, d := range work {
			remainingTotal += d.balance
			payments = append(payments, domain.SchedulePayment{
				DebtID:           d.id,
				DebtName:         d.name,
				Payment:          money.ClampToZero(monthPaid[d.inputIndex]),
				InterestAccrued:  money.ClampToZero(monthInterest[d.inputIndex]),
				BalanceRemaining: money.ClampToZero(d.balance),
			})
			sumInterest[d.inputIndex] += monthInterest[d.inputIndex]
			sumPaid[d.inputIndex] += monthPaid[d.inputIndex]
		}

		budgetSpent := opts.MonthlyBudget - remaining
		schedule = append(schedule, domain.ScheduleEntry{
			MonthIndex:       m,
			Date:             dates.FormatISO(dates.AddMonths(startDate, m-1)),
			TotalInterest:    money.ClampToZero(interestThisMonth),
			TotalPaid:        money.ClampToZero(budgetSpent),
			RemainingBalance: money.ClampToZero(remainingTotal),
			Payments:         payments,
		})
		totalInterest += interestThisMonth
		totalPaid += budgetSpent
	}

	// A debt whose normalized balance is already within the payoff
	// tolerance never enters the loop; it counts as paid at month zero.
	for _, d := range work {
		if summaries[d.inputIndex].MonthsToPayoff == nil {
			payoffMonth := 0
			payoffDate := dates.FormatISO(startDate)
			summaries[d.inputIndex].MonthsToPayoff = &payoffMonth
			summaries[d.inputIndex].PayoffDate = &payoffDate
		}
	}

	for i := range summaries {
		summaries[i].TotalInterest = money.ClampToZero(sumInterest[i])
		summaries[i].TotalPaid = money.ClampToZero(sumPaid[i])
	}

	payoffDate := dates.FormatISO(startDate)
	if len(schedule) > 0 {
		payoffDate = schedule[len(schedule)-1].Date
	}

	return &domain.SimulationResult{
		Strategy:      opts.Strategy,
		Months:        months,
		TotalInterest: money.ClampToZero(totalInterest),
		TotalPaid:     money.ClampToZero(totalPaid),
		PayoffDate:    payoffDate,
		DebtSummaries: summaries,
		Schedule:      schedule,
	}, nil
}

func anyOutstanding(debts []*workingDebt) bool {
	for _, d := range debts {
		if d.balance > money.PayoffTolerance {
			return true
		}
	}
	return false
}
