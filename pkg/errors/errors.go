package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrInvalidInput       = errors.New("invalid debt input")
	ErrInvalidStrategy    = errors.New("invalid strategy")
	ErrInvalidBudget      = errors.New("invalid monthly budget")
	ErrBudgetTooLow       = errors.New("monthly budget below required minimum")
	ErrSimulationDiverges = errors.New("simulation did not converge")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeInvalidInput       = "INVALID_INPUT"
	ErrCodeInvalidStrategy    = "INVALID_STRATEGY"
	ErrCodeInvalidBudget      = "INVALID_BUDGET"
	ErrCodeBudgetTooLow       = "BUDGET_TOO_LOW"
	ErrCodeSimulationDiverges = "SIMULATION_DIVERGES"
	ErrCodeCacheError         = "CACHE_ERROR"
)

// Wrap common errors with business context
func WrapInvalidInput(reason string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidInput,
		reason,
		ErrInvalidInput,
	)
}

func WrapInvalidStrategy(strategy string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidStrategy,
		fmt.Sprintf("Strategy %q is not supported, expected snowball or avalanche", strategy),
		ErrInvalidStrategy,
	)
}

func WrapInvalidBudget(budget float64) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidBudget,
		fmt.Sprintf("Monthly budget must be greater than zero, got %.2f", budget),
		ErrInvalidBudget,
	)
}

// WrapBudgetTooLow carries the minimum required budget so the caller can
// correct the request.
func WrapBudgetTooLow(budget, required float64) *BusinessError {
	return NewBusinessError(
		ErrCodeBudgetTooLow,
		fmt.Sprintf("Monthly budget %.2f does not cover the %.2f required for minimum payments", budget, required),
		ErrBudgetTooLow,
	)
}

func WrapSimulationDiverges(maxMonths int) *BusinessError {
	return NewBusinessError(
		ErrCodeSimulationDiverges,
		fmt.Sprintf("Balances still outstanding after %d simulated months", maxMonths),
		ErrSimulationDiverges,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"Cache operation failed",
		err,
	)
}
