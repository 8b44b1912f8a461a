package rewards

import (
	"github.com/reward-network/backend/internal/money"
)

// Restaurant is a merchant participating in the reward network. It is
// immutable per lookup.
type Restaurant struct {
	MerchantNumber      string
	Name                string
	BenefitPercentage   money.Percentage
	BenefitAvailability BenefitAvailabilityPolicy
}

// CalculateBenefitFor computes the reward for a dining event at this
// restaurant: the benefit percentage of the dining amount, or zero when
// the availability policy withholds the benefit. It has no side
// effects.
func (r *Restaurant) CalculateBenefitFor(account *Account, dining DiningEvent) money.Money {
	if !r.BenefitAvailability.BenefitAvailableFor(account, dining) {
		return money.Zero()
	}

	return dining.Amount.Multiply(r.BenefitPercentage)
}
