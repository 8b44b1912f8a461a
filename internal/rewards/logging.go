package rewards

import (
	"time"

	"github.com/rs/zerolog"
)

// Logging decorators for the storage collaborators. They log around the
// wrapped call and pass results and errors through unchanged, so they
// never alter control flow. Compose them where the Repositories bundle
// is built.

// LogAccountRepository wraps an account repository with lookup logging
// and update timing.
func LogAccountRepository(next AccountRepository, log zerolog.Logger) AccountRepository {
	return loggedAccountRepository{next: next, log: log}
}

// LogRestaurantLookup wraps a restaurant lookup with logging.
func LogRestaurantLookup(next RestaurantLookup, log zerolog.Logger) RestaurantLookup {
	return loggedRestaurantLookup{next: next, log: log}
}

// LogRewardRecorder wraps a reward recorder with timing.
func LogRewardRecorder(next RewardRecorder, log zerolog.Logger) RewardRecorder {
	return loggedRewardRecorder{next: next, log: log}
}

type loggedAccountRepository struct {
	next AccountRepository
	log  zerolog.Logger
}

func (r loggedAccountRepository) FindByCreditCard(creditCardNumber string) (*Account, error) {
	r.log.Debug().Str("creditCard", lastFour(creditCardNumber)).Msg("finding account")

	account, err := r.next.FindByCreditCard(creditCardNumber)
	if err != nil {
		return nil, err
	}

	r.log.Debug().Str("account", account.Number).Msg("found account")
	return account, nil
}

func (r loggedAccountRepository) UpdateBeneficiaries(account *Account) error {
	start := time.Now()
	err := r.next.UpdateBeneficiaries(account)

	r.log.Debug().
		Str("account", account.Number).
		Int("beneficiaries", len(account.Beneficiaries())).
		Dur("duration", time.Since(start)).
		Msg("updated beneficiaries")

	return err
}

type loggedRestaurantLookup struct {
	next RestaurantLookup
	log  zerolog.Logger
}

func (l loggedRestaurantLookup) FindByMerchantNumber(merchantNumber string) (*Restaurant, error) {
	l.log.Debug().Str("merchant", merchantNumber).Msg("finding restaurant")
	return l.next.FindByMerchantNumber(merchantNumber)
}

type loggedRewardRecorder struct {
	next RewardRecorder
	log  zerolog.Logger
}

func (r loggedRewardRecorder) ConfirmReward(contribution AccountContribution, dining DiningEvent) (RewardConfirmation, error) {
	start := time.Now()

	confirmation, err := r.next.ConfirmReward(contribution, dining)
	if err != nil {
		return RewardConfirmation{}, err
	}

	r.log.Info().
		Str("confirmation", confirmation.ConfirmationNumber).
		Str("account", contribution.AccountNumber).
		Str("amount", contribution.Amount.String()).
		Dur("duration", time.Since(start)).
		Msg("confirmed reward")

	return confirmation, nil
}

// lastFour masks a card number down to its last four digits for
// logging.
func lastFour(number string) string {
	if len(number) <= 4 {
		return number
	}

	return "…" + number[len(number)-4:]
}
