package rewards

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/reward-network/backend/internal/money"
	"github.com/shopspring/decimal"
)

// Beneficiary is a person named on an account who accumulates a share
// of every contribution. Savings is the running balance; it is only
// mutated through Account.MakeContribution.
type Beneficiary struct {
	Name       string
	Allocation money.Percentage
	Savings    money.Money
}

// Account is an aggregate of the beneficiaries it exclusively owns,
// keyed by unique name and kept in a stable order. It is reconstituted
// from persisted state for a single reward request, mutated in memory,
// and its beneficiary savings are then written back.
type Account struct {
	ID            uuid.UUID
	Number        string
	Name          string
	beneficiaries []*Beneficiary
}

// NewAccount creates an account without beneficiaries.
func NewAccount(number, name string) *Account {
	return &Account{Number: number, Name: name}
}

// AddBeneficiary adds a beneficiary with zero savings.
func (a *Account) AddBeneficiary(name string, allocation money.Percentage) {
	a.RestoreBeneficiary(&Beneficiary{Name: name, Allocation: allocation})
}

// RestoreBeneficiary attaches a beneficiary reconstituted from
// persistent storage, savings included.
func (a *Account) RestoreBeneficiary(beneficiary *Beneficiary) {
	a.beneficiaries = append(a.beneficiaries, beneficiary)
}

// Beneficiaries returns the account's beneficiaries in stable order.
func (a *Account) Beneficiaries() []*Beneficiary {
	return a.beneficiaries
}

// Beneficiary returns the named beneficiary, or nil if there is none.
func (a *Account) Beneficiary(name string) *Beneficiary {
	for _, b := range a.beneficiaries {
		if b.Name == name {
			return b
		}
	}

	return nil
}

// MakeContribution credits the amount across the account's
// beneficiaries according to their allocation percentages and returns a
// snapshot of the result. Each beneficiary's savings grows by their
// distribution; the distributions sum to the amount exactly.
//
// A negative amount fails with ErrInvalidAmount. Allocations that do
// not sum to exactly 100% fail with ErrAllocationConfig. Either the
// whole contribution happens or the account is left untouched.
func (a *Account) MakeContribution(amount money.Money) (AccountContribution, error) {
	if amount.IsNegative() {
		return AccountContribution{}, fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}

	if len(a.beneficiaries) > 0 {
		sum := decimal.Zero
		for _, b := range a.beneficiaries {
			sum = sum.Add(b.Allocation.Decimal())
		}

		if !sum.Equal(one) {
			return AccountContribution{}, fmt.Errorf("%w: account %s sums to %s", ErrAllocationConfig, a.Number, sum.Shift(2).String()+"%")
		}
	}

	shares := make([]Share, 0, len(a.beneficiaries))
	for _, b := range a.beneficiaries {
		shares = append(shares, Share{Beneficiary: b.Name, Allocation: b.Allocation})
	}

	distributions := Allocate(amount, shares)
	for _, d := range distributions {
		beneficiary := a.Beneficiary(d.Beneficiary)
		beneficiary.Savings = beneficiary.Savings.Add(d.Amount)
	}

	return AccountContribution{
		AccountNumber: a.Number,
		Amount:        amount,
		Distributions: distributions,
	}, nil
}
