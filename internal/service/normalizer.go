package service

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/radityo/payoff-engine/internal/domain"
	customError "github.com/radityo/payoff-engine/pkg/errors"
	"github.com/radityo/payoff-engine/pkg/money"
)

// Guard rails on a single request, mirroring what production callers send.
const (
	MaxDebtsPerRequest = 50
	MaxDebtBalance     = 100_000_000.0
	MaxAPR             = 1000.0
)

// debtLimits are the request ceilings the normalizer enforces; deployments
// override them through configuration.
type debtLimits struct {
	maxDebts   int
	maxBalance float64
	maxAPR     float64
}

func defaultDebtLimits() debtLimits {
	return debtLimits{
		maxDebts:   MaxDebtsPerRequest,
		maxBalance: MaxDebtBalance,
		maxAPR:     MaxAPR,
	}
}

// NormalizeDebts validates the caller-facing debt records and produces the
// engine's working copy: balances rounded to 2 decimal places, ids always
// set, input order preserved. Debts are not deduplicated by id.
func NormalizeDebts(debts []domain.Debt) ([]domain.NormalizedDebt, error) {
	return normalizeDebts(debts, defaultDebtLimits())
}

func normalizeDebts(debts []domain.Debt, limits debtLimits) ([]domain.NormalizedDebt, error) {
	if len(debts) == 0 {
		return nil, customError.WrapInvalidInput("at least one debt is required")
	}
	if len(debts) > limits.maxDebts {
		return nil, customError.WrapInvalidInput(
			fmt.Sprintf("number of debts exceeds the maximum of %d", limits.maxDebts))
	}

	normalized := make([]domain.NormalizedDebt, 0, len(debts))
	for i, debt := range debts {
		if err := validateDebt(i, debt, limits); err != nil {
			return nil, err
		}

		// A sub-cent balance rounds to zero and would leave the engine
		// nothing to simulate, so it fails the positive-balance rule too.
		balance := money.Round(debt.Balance)
		if balance <= 0 {
			return nil, customError.WrapInvalidInput(
				fmt.Sprintf("debt %d (%s): balance must be greater than zero", i, debt.Name))
		}

		id := debt.ID
		if id == "" {
			id = uuid.NewString()
		}

		normalized = append(normalized, domain.NormalizedDebt{
			ID:             id,
			Name:           debt.Name,
			Balance:        balance,
			APR:            debt.APR,
			MinimumPayment: debt.MinimumPayment,
			Type:           debt.Type,
			DueDate:        debt.DueDate,
		})
	}

	return normalized, nil
}

var validate = validator.New()

func validateDebt(i int, debt domain.Debt, limits debtLimits) error {
	// validator's gt/gte tags reject NaN (every comparison with NaN is
	// false) but let +Inf through, so finiteness is checked explicitly.
	for _, v := range []float64{debt.Balance, debt.APR, debt.MinimumPayment} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return customError.WrapInvalidInput(
				fmt.Sprintf("debt %d (%s): numeric fields must be finite", i, debt.Name))
		}
	}

	if err := validate.Struct(debt); err != nil {
		return customError.WrapInvalidInput(describeValidationError(i, debt, err))
	}

	if debt.Balance > limits.maxBalance {
		return customError.WrapInvalidInput(
			fmt.Sprintf("debt %d (%s): balance exceeds the maximum of %.2f", i, debt.Name, limits.maxBalance))
	}
	if debt.APR > limits.maxAPR {
		return customError.WrapInvalidInput(
			fmt.Sprintf("debt %d (%s): apr exceeds the maximum of %.2f%%", i, debt.Name, limits.maxAPR))
	}

	return nil
}

func describeValidationError(i int, debt domain.Debt, err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return fmt.Sprintf("debt %d (%s): %v", i, debt.Name, err)
	}

	first := validationErrors[0]
	switch first.Field() {
	case "Name":
		return fmt.Sprintf("debt %d: name is required", i)
	case "Balance":
		return fmt.Sprintf("debt %d (%s): balance must be greater than zero", i, debt.Name)
	case "APR":
		return fmt.Sprintf("debt %d (%s): apr must not be negative", i, debt.Name)
	case "MinimumPayment":
		return fmt.Sprintf("debt %d (%s): minimum payment must be greater than zero", i, debt.Name)
	default:
		return fmt.Sprintf("debt %d (%s): field %s failed validation %q", i, debt.Name, first.Field(), first.Tag())
	}
}
