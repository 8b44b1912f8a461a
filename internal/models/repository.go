package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/reward-network/backend/internal/money"
	"github.com/reward-network/backend/internal/rewards"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TransactionManager runs reward units of work inside a database
// transaction. All repositories handed to the unit of work operate on
// the same transaction handle, so either every write commits together
// or the whole attempt rolls back.
type TransactionManager struct {
	db          *gorm.DB
	restaurants *RestaurantCache
	log         zerolog.Logger
}

// NewTransactionManager creates a transaction manager on the given
// database, sharing the restaurant cache across transactions.
func NewTransactionManager(db *gorm.DB, restaurants *RestaurantCache) *TransactionManager {
	return &TransactionManager{
		db:          db,
		restaurants: restaurants,
		log:         log.Logger,
	}
}

// Do executes the unit of work in one transaction. A non-nil error
// causes a full rollback and is returned unchanged.
func (m *TransactionManager) Do(fn func(rewards.Repositories) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(rewards.Repositories{
			Accounts:    rewards.LogAccountRepository(accountRepository{db: tx}, m.log),
			Restaurants: rewards.LogRestaurantLookup(m.restaurants.Lookup(restaurantRepository{db: tx}), m.log),
			Rewards:     rewards.LogRewardRecorder(rewardRepository{db: tx}, m.log),
		})
	})
}

type accountRepository struct {
	db *gorm.DB
}

// FindByCreditCard reconstitutes the account charged by a credit card,
// beneficiaries included, in their creation order.
func (r accountRepository) FindByCreditCard(creditCardNumber string) (*rewards.Account, error) {
	var card CreditCard
	err := r.db.Where(&CreditCard{Number: creditCardNumber}).First(&card).Error
	if errors.Is(err, ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: card %s", rewards.ErrAccountNotFound, creditCardNumber)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", rewards.ErrPersistence, err)
	}

	var account Account
	err = r.db.First(&account, "id = ?", card.AccountID).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", rewards.ErrPersistence, err)
	}

	var beneficiaries []Beneficiary
	err = r.db.
		Where(&Beneficiary{AccountID: account.ID}).
		Order("created_at ASC").
		Find(&beneficiaries).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", rewards.ErrPersistence, err)
	}

	reconstituted := rewards.NewAccount(account.Number, account.Name)
	reconstituted.ID = account.ID
	for _, b := range beneficiaries {
		allocation, err := money.NewPercentageFromDecimal(b.AllocationPercentage)
		if err != nil {
			return nil, err
		}

		reconstituted.RestoreBeneficiary(&rewards.Beneficiary{
			Name:       b.Name,
			Allocation: allocation,
			Savings:    money.New(b.Savings),
		})
	}

	return reconstituted, nil
}

// UpdateBeneficiaries writes the current savings of every beneficiary
// back to its row. A row that vanished mid-transaction fails the whole
// attempt.
func (r accountRepository) UpdateBeneficiaries(account *rewards.Account) error {
	for _, b := range account.Beneficiaries() {
		result := r.db.
			Model(&Beneficiary{}).
			Where("account_id = ? AND name = ?", account.ID, b.Name).
			Update("savings", b.Savings.Decimal())
		if result.Error != nil {
			return fmt.Errorf("%w: %v", rewards.ErrPersistence, result.Error)
		}

		if result.RowsAffected != 1 {
			return fmt.Errorf("%w: beneficiary %q of account %s was modified concurrently", rewards.ErrPersistence, b.Name, account.Number)
		}
	}

	return nil
}

type restaurantRepository struct {
	db *gorm.DB
}

func (r restaurantRepository) FindByMerchantNumber(merchantNumber string) (*rewards.Restaurant, error) {
	var restaurant Restaurant
	err := r.db.Where(&Restaurant{MerchantNumber: merchantNumber}).First(&restaurant).Error
	if errors.Is(err, ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: merchant %s", rewards.ErrRestaurantNotFound, merchantNumber)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", rewards.ErrPersistence, err)
	}

	return restaurant.Domain()
}

type rewardRepository struct {
	db *gorm.DB
}

// ConfirmReward inserts the reward record with a fresh confirmation
// number and the contribution's distributions.
func (r rewardRepository) ConfirmReward(contribution rewards.AccountContribution, dining rewards.DiningEvent) (rewards.RewardConfirmation, error) {
	// UUIDv7 confirmation numbers are time-ordered and unique across
	// all rewards ever issued.
	confirmationNumber, err := uuid.NewV7()
	if err != nil {
		return rewards.RewardConfirmation{}, fmt.Errorf("%w: %v", rewards.ErrPersistence, err)
	}

	reward := Reward{
		ConfirmationNumber:   confirmationNumber.String(),
		RewardAmount:         contribution.Amount.Decimal(),
		RewardDate:           time.Now().In(time.UTC),
		AccountNumber:        contribution.AccountNumber,
		DiningAmount:         dining.Amount.Decimal(),
		DiningMerchantNumber: dining.MerchantNumber,
		DiningDate:           dining.Date,
	}

	err = r.db.Create(&reward).Error
	if err != nil {
		return rewards.RewardConfirmation{}, fmt.Errorf("%w: %v", rewards.ErrPersistence, err)
	}

	for _, d := range contribution.Distributions {
		distribution := RewardDistribution{
			RewardID:    reward.ID,
			Beneficiary: d.Beneficiary,
			Amount:      d.Amount.Decimal(),
		}

		err = r.db.Create(&distribution).Error
		if err != nil {
			return rewards.RewardConfirmation{}, fmt.Errorf("%w: %v", rewards.ErrPersistence, err)
		}
	}

	return rewards.RewardConfirmation{
		ConfirmationNumber:  reward.ConfirmationNumber,
		AccountContribution: contribution,
	}, nil
}
