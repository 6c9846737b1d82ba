package core

import "errors"

// Error classes surfaced by engine operations. Callers branch with
// errors.Is; every failure leaves the ledgers exactly as they were.
var (
	// ErrValidation: unsupported asset, rate off the grid, below minimum
	// mint, ranking bucket at capacity.
	ErrValidation = errors.New("validation failed")

	// ErrState: position not in the required status, or a tier/asset/
	// position record is missing.
	ErrState = errors.New("invalid state")

	// ErrInsufficientFunds: payment below the required debt or fee.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrSolvency: resulting collateral ratio below the required threshold.
	ErrSolvency = errors.New("collateral value too low")

	// ErrAuthorization: privileged-borrower link invalid or coupling limit
	// exceeded.
	ErrAuthorization = errors.New("not authorized")

	// ErrPaused: the operation category is globally disabled.
	ErrPaused = errors.New("operation paused")
)
