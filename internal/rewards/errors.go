package rewards

import (
	"errors"
)

var (
	// ErrAccountNotFound is returned when no account matches a credit
	// card number.
	ErrAccountNotFound = errors.New("no account is registered for this credit card")

	// ErrRestaurantNotFound is returned when no restaurant matches a
	// merchant number.
	ErrRestaurantNotFound = errors.New("no restaurant is registered for this merchant number")

	// ErrInvalidAmount is returned when a contribution amount is
	// negative.
	ErrInvalidAmount = errors.New("the contribution amount must not be negative")

	// ErrAllocationConfig is returned when the allocation percentages of
	// an account's beneficiaries do not sum to exactly 100%. The account
	// is left unchanged.
	ErrAllocationConfig = errors.New("the beneficiary allocations must sum to exactly 100%")

	// ErrPolicyUnknown is returned when a persisted availability policy
	// code cannot be mapped to a policy.
	ErrPolicyUnknown = errors.New("there is no benefit availability policy for this code")

	// ErrPersistence wraps storage failures during a reward attempt. The
	// whole attempt is rolled back.
	ErrPersistence = errors.New("the reward could not be persisted")
)
