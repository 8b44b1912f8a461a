package rewards

import (
	"github.com/reward-network/backend/internal/money"
	"github.com/shopspring/decimal"
)

// Share names a beneficiary and the percentage of a contribution that
// belongs to them.
type Share struct {
	Beneficiary string
	Allocation  money.Percentage
}

var one = decimal.NewFromInt(1)

// Allocate splits an amount across the given shares. Each distribution
// is the share's percentage of the total, rounded to the money scale;
// any rounding remainder, positive or negative, goes to the first share
// so that the distributions always sum to the total exactly.
//
// Weights that do not sum to 100% are normalized, so money is never
// created or lost even on misconfigured input. Whether such input is
// acceptable is the caller's decision; Account.MakeContribution rejects
// it. No shares yield an empty distribution list.
func Allocate(total money.Money, shares []Share) []Distribution {
	distributions := make([]Distribution, 0, len(shares))
	if len(shares) == 0 {
		return distributions
	}

	weightSum := decimal.Zero
	for _, share := range shares {
		weightSum = weightSum.Add(share.Allocation.Decimal())
	}

	allocated := money.Zero()
	for _, share := range shares {
		var amount money.Money
		switch {
		case weightSum.IsZero():
			amount = money.Zero()
		case weightSum.Equal(one):
			amount = total.Multiply(share.Allocation)
		default:
			amount = money.New(total.Decimal().Mul(share.Allocation.Decimal()).Div(weightSum))
		}

		distributions = append(distributions, Distribution{
			Beneficiary: share.Beneficiary,
			Amount:      amount,
		})
		allocated = allocated.Add(amount)
	}

	if remainder := total.Sub(allocated); !remainder.IsZero() {
		distributions[0].Amount = distributions[0].Amount.Add(remainder)
	}

	return distributions
}
