package rewards

import (
	"github.com/reward-network/backend/internal/money"
)

// Distribution is one beneficiary's share of a contribution.
type Distribution struct {
	Beneficiary string      `json:"beneficiary"`
	Amount      money.Money `json:"amount"`
}

// AccountContribution records the crediting of an amount across the
// beneficiaries of one account. The distribution amounts always sum to
// Amount exactly; for an account without beneficiaries the list is
// empty and the total stands on its own.
type AccountContribution struct {
	AccountNumber string         `json:"accountNumber"`
	Amount        money.Money    `json:"amount"`
	Distributions []Distribution `json:"distributions"`
}

// Distribution returns the share for the named beneficiary. The second
// return value reports whether one exists.
func (c AccountContribution) Distribution(beneficiary string) (Distribution, bool) {
	for _, d := range c.Distributions {
		if d.Beneficiary == beneficiary {
			return d, true
		}
	}

	return Distribution{}, false
}

// RewardConfirmation is the durable proof that a contribution has been
// made for a dining event. The confirmation number is opaque and unique
// across all rewards ever issued.
type RewardConfirmation struct {
	ConfirmationNumber  string              `json:"confirmationNumber"`
	AccountContribution AccountContribution `json:"accountContribution"`
}
