package rewards

// AccountLookup loads the account registered for a credit card.
// Implementations return ErrAccountNotFound when there is none.
type AccountLookup interface {
	FindByCreditCard(creditCardNumber string) (*Account, error)
}

// BeneficiaryPersister writes the current savings of every beneficiary
// of an account back to storage.
type BeneficiaryPersister interface {
	UpdateBeneficiaries(account *Account) error
}

// AccountRepository combines account lookup and beneficiary
// persistence.
type AccountRepository interface {
	AccountLookup
	BeneficiaryPersister
}

// RestaurantLookup loads the restaurant registered for a merchant
// number. Implementations return ErrRestaurantNotFound when there is
// none.
type RestaurantLookup interface {
	FindByMerchantNumber(merchantNumber string) (*Restaurant, error)
}

// RewardRecorder durably records a confirmation for a contribution and
// the dining event that triggered it, and returns the stored
// confirmation.
type RewardRecorder interface {
	ConfirmReward(contribution AccountContribution, dining DiningEvent) (RewardConfirmation, error)
}

// Repositories bundles the collaborators of one unit of work. All of
// them operate on the same transaction.
type Repositories struct {
	Accounts    AccountRepository
	Restaurants RestaurantLookup
	Rewards     RewardRecorder
}

// TransactionManager executes a function as one atomic unit of work
// against storage: either everything the function persisted commits
// together, or the returned error causes a full rollback.
type TransactionManager interface {
	Do(fn func(Repositories) error) error
}

// RewardNetwork rewards an account for dining at a restaurant. This is
// the sole public entry point of the engine.
type RewardNetwork interface {
	RewardAccountFor(dining DiningEvent) (RewardConfirmation, error)
}

type rewardNetwork struct {
	transactions TransactionManager
}

// NewRewardNetwork creates the reward network on top of a transaction
// manager supplying the storage collaborators.
func NewRewardNetwork(transactions TransactionManager) RewardNetwork {
	return &rewardNetwork{transactions: transactions}
}

// RewardAccountFor performs exactly one reward attempt: it resolves the
// account and the restaurant, computes the benefit, applies the
// contribution to the account, persists the updated beneficiary
// savings and records a confirmation. All steps run in one transaction;
// on any failure the attempt rolls back completely and the typed error
// is returned. The method never retries.
func (n *rewardNetwork) RewardAccountFor(dining DiningEvent) (RewardConfirmation, error) {
	var confirmation RewardConfirmation

	err := n.transactions.Do(func(r Repositories) error {
		account, err := r.Accounts.FindByCreditCard(dining.CreditCardNumber)
		if err != nil {
			return err
		}

		restaurant, err := r.Restaurants.FindByMerchantNumber(dining.MerchantNumber)
		if err != nil {
			return err
		}

		benefit := restaurant.CalculateBenefitFor(account, dining)

		contribution, err := account.MakeContribution(benefit)
		if err != nil {
			return err
		}

		err = r.Accounts.UpdateBeneficiaries(account)
		if err != nil {
			return err
		}

		confirmation, err = r.Rewards.ConfirmReward(contribution, dining)
		return err
	})
	if err != nil {
		return RewardConfirmation{}, err
	}

	return confirmation, nil
}
