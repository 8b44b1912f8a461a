package rewards

import (
	"fmt"
)

// BenefitAvailabilityPolicy decides whether a restaurant's benefit
// applies to a dining event by a given account. New policies, e.g.
// date or frequency based ones, implement this single method.
type BenefitAvailabilityPolicy interface {
	// BenefitAvailableFor reports whether the benefit applies.
	BenefitAvailableFor(account *Account, dining DiningEvent) bool

	// Code returns the single-letter code the policy is persisted as.
	Code() string
}

// Policy codes as stored in the restaurant table.
const (
	PolicyCodeAlways = "A"
	PolicyCodeNever  = "N"
)

var (
	// AlwaysAvailable grants the benefit unconditionally.
	AlwaysAvailable BenefitAvailabilityPolicy = alwaysAvailable{}

	// NeverAvailable withholds the benefit unconditionally.
	NeverAvailable BenefitAvailabilityPolicy = neverAvailable{}
)

// ParsePolicy maps a persisted policy code to its policy. Unknown codes
// fail with ErrPolicyUnknown.
func ParsePolicy(code string) (BenefitAvailabilityPolicy, error) {
	switch code {
	case PolicyCodeAlways:
		return AlwaysAvailable, nil
	case PolicyCodeNever:
		return NeverAvailable, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrPolicyUnknown, code)
	}
}

type alwaysAvailable struct{}

func (alwaysAvailable) BenefitAvailableFor(_ *Account, _ DiningEvent) bool { return true }
func (alwaysAvailable) Code() string                                       { return PolicyCodeAlways }
func (alwaysAvailable) String() string                                     { return "alwaysAvailable" }

type neverAvailable struct{}

func (neverAvailable) BenefitAvailableFor(_ *Account, _ DiningEvent) bool { return false }
func (neverAvailable) Code() string                                       { return PolicyCodeNever }
func (neverAvailable) String() string                                     { return "neverAvailable" }
