package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrPlanNotFound           = errors.New("investment plan not found")
	ErrPlanInactive           = errors.New("investment plan is not active")
	ErrInvalidAmount          = errors.New("invalid investment amount")
	ErrAmountOutOfRange       = errors.New("amount outside plan range")
	ErrInsufficientBalance    = errors.New("insufficient available balance")
	ErrAccountNotApproved     = errors.New("account pending admin approval")
	ErrComputationUnavailable = errors.New("profit computation unavailable")
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
	ErrCodeUserNotFound           = "USER_NOT_FOUND"
	ErrCodePlanNotFound           = "PLAN_NOT_FOUND"
	ErrCodePlanInactive           = "PLAN_INACTIVE"
	ErrCodeInvalidAmount          = "INVALID_AMOUNT"
	ErrCodeAmountOutOfRange       = "AMOUNT_OUT_OF_RANGE"
	ErrCodeInsufficientBalance    = "INSUFFICIENT_BALANCE"
	ErrCodeAccountNotApproved     = "ACCOUNT_NOT_APPROVED"
	ErrCodeComputationUnavailable = "COMPUTATION_UNAVAILABLE"
	ErrCodeDatabaseError          = "DATABASE_ERROR"
	ErrCodeCacheError             = "CACHE_ERROR"
)

// CodeOf returns the business code carried by err, or "" when err is not a BusinessError.
func CodeOf(err error) string {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

func WrapUserNotFound(userID string) *BusinessError {
	return NewBusinessError(
		ErrCodeUserNotFound,
		fmt.Sprintf("User with ID %s not found", userID),
		ErrUserNotFound,
	)
}

func WrapPlanNotFound(plan string) *BusinessError {
	return NewBusinessError(
		ErrCodePlanNotFound,
		fmt.Sprintf("Investment plan %q not found", plan),
		ErrPlanNotFound,
	)
}

func WrapPlanInactive(plan string) *BusinessError {
	return NewBusinessError(
		ErrCodePlanInactive,
		fmt.Sprintf("Investment plan %q is not accepting new investments", plan),
		ErrPlanInactive,
	)
}

func WrapInvalidAmount(amount string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidAmount,
		fmt.Sprintf("Invalid amount: %s", amount),
		ErrInvalidAmount,
	)
}

// WrapAmountOutOfRange reports an amount outside [min, max]; an empty max means the plan has no upper bound.
func WrapAmountOutOfRange(plan, min, max string) *BusinessError {
	msg := fmt.Sprintf("Amount must be at least $%s for %s", min, plan)
	if max != "" {
		msg = fmt.Sprintf("Amount must be between $%s and $%s for %s", min, max, plan)
	}
	return NewBusinessError(ErrCodeAmountOutOfRange, msg, ErrAmountOutOfRange)
}

func WrapInsufficientBalance(available string) *BusinessError {
	return NewBusinessError(
		ErrCodeInsufficientBalance,
		fmt.Sprintf("Insufficient balance. Available: $%s", available),
		ErrInsufficientBalance,
	)
}

func WrapAccountNotApproved(userID string) *BusinessError {
	return NewBusinessError(
		ErrCodeAccountNotApproved,
		fmt.Sprintf("Account %s is pending admin approval", userID),
		ErrAccountNotApproved,
	)
}

func WrapComputationUnavailable(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeComputationUnavailable,
		"profit computation unavailable",
		errors.Join(ErrComputationUnavailable, err),
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"Cache operation failed",
		err,
	)
}
