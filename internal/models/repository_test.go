package models_test

import (
	"errors"

	"github.com/reward-network/backend/internal/models"
	"github.com/reward-network/backend/internal/money"
	"github.com/reward-network/backend/internal/rewards"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) transactionManager() *models.TransactionManager {
	return models.NewTransactionManager(models.DB, models.NewRestaurantCache())
}

func (suite *TestSuiteStandard) TestFindByCreditCard() {
	_ = suite.createTestRewardsAccount("1234123412341234")

	err := suite.transactionManager().Do(func(r rewards.Repositories) error {
		account, err := r.Accounts.FindByCreditCard("1234123412341234")
		require.NoError(suite.T(), err)

		assert.Equal(suite.T(), "123456789", account.Number)
		assert.Equal(suite.T(), "Keith and Keri Donald", account.Name)

		beneficiaries := account.Beneficiaries()
		require.Len(suite.T(), beneficiaries, 2)
		assert.Equal(suite.T(), "Annabelle", beneficiaries[0].Name)
		assert.Equal(suite.T(), "Corgan", beneficiaries[1].Name)
		assert.Equal(suite.T(), "50%", beneficiaries[0].Allocation.String())
		assert.True(suite.T(), beneficiaries[0].Savings.IsZero())

		return nil
	})
	require.NoError(suite.T(), err)
}

func (suite *TestSuiteStandard) TestFindByCreditCardNotFound() {
	err := suite.transactionManager().Do(func(r rewards.Repositories) error {
		_, err := r.Accounts.FindByCreditCard("0000000000000000")
		return err
	})
	assert.ErrorIs(suite.T(), err, rewards.ErrAccountNotFound)
}

func (suite *TestSuiteStandard) TestFindByMerchantNumberNotFound() {
	err := suite.transactionManager().Do(func(r rewards.Repositories) error {
		_, err := r.Restaurants.FindByMerchantNumber("0000000000")
		return err
	})
	assert.ErrorIs(suite.T(), err, rewards.ErrRestaurantNotFound)
}

func (suite *TestSuiteStandard) TestUpdateBeneficiariesPersists() {
	_ = suite.createTestRewardsAccount("1234123412341234")
	tm := suite.transactionManager()

	err := tm.Do(func(r rewards.Repositories) error {
		account, err := r.Accounts.FindByCreditCard("1234123412341234")
		require.NoError(suite.T(), err)

		_, err = account.MakeContribution(money.MustParse("8.00"))
		require.NoError(suite.T(), err)

		return r.Accounts.UpdateBeneficiaries(account)
	})
	require.NoError(suite.T(), err)

	var beneficiaries []models.Beneficiary
	require.NoError(suite.T(), models.DB.Order("created_at ASC").Find(&beneficiaries).Error)
	require.Len(suite.T(), beneficiaries, 2)
	for _, b := range beneficiaries {
		assert.True(suite.T(), b.Savings.Equal(decimal.NewFromFloat(4)), "savings of %s are %s", b.Name, b.Savings)
	}
}

// A failing unit of work must leave persisted beneficiary balances
// untouched, even when savings were already written inside the
// transaction.
func (suite *TestSuiteStandard) TestTransactionRollsBack() {
	_ = suite.createTestRewardsAccount("1234123412341234")
	tm := suite.transactionManager()

	boom := errors.New("recording failed")
	err := tm.Do(func(r rewards.Repositories) error {
		account, err := r.Accounts.FindByCreditCard("1234123412341234")
		require.NoError(suite.T(), err)

		_, err = account.MakeContribution(money.MustParse("8.00"))
		require.NoError(suite.T(), err)

		require.NoError(suite.T(), r.Accounts.UpdateBeneficiaries(account))
		return boom
	})
	assert.ErrorIs(suite.T(), err, boom)

	var beneficiaries []models.Beneficiary
	require.NoError(suite.T(), models.DB.Find(&beneficiaries).Error)
	for _, b := range beneficiaries {
		assert.True(suite.T(), b.Savings.IsZero(), "savings of %s must be rolled back, got %s", b.Name, b.Savings)
	}
}

func (suite *TestSuiteStandard) TestConfirmReward() {
	_ = suite.createTestRewardsAccount("1234123412341234")
	_ = suite.createTestRestaurant(models.Restaurant{
		MerchantNumber:     "1234567890",
		Name:               "AppleBees",
		BenefitPercentage:  decimal.NewFromFloat(0.08),
		AvailabilityPolicy: "A",
	})

	network := rewards.NewRewardNetwork(suite.transactionManager())

	dining, err := rewards.NewDiningEvent("100.00", "1234123412341234", "1234567890")
	require.NoError(suite.T(), err)

	confirmation, err := network.RewardAccountFor(dining)
	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), confirmation.ConfirmationNumber)
	assert.Equal(suite.T(), "8.00", confirmation.AccountContribution.Amount.String())

	var reward models.Reward
	require.NoError(suite.T(), models.DB.Where(&models.Reward{ConfirmationNumber: confirmation.ConfirmationNumber}).First(&reward).Error)
	assert.True(suite.T(), reward.RewardAmount.Equal(decimal.NewFromFloat(8)))
	assert.True(suite.T(), reward.DiningAmount.Equal(decimal.NewFromFloat(100)))
	assert.Equal(suite.T(), "123456789", reward.AccountNumber)
	assert.Equal(suite.T(), "1234567890", reward.DiningMerchantNumber)

	var distributions []models.RewardDistribution
	require.NoError(suite.T(), models.DB.Where(&models.RewardDistribution{RewardID: reward.ID}).Find(&distributions).Error)
	require.Len(suite.T(), distributions, 2)
	for _, d := range distributions {
		assert.True(suite.T(), d.Amount.Equal(decimal.NewFromFloat(4)))
	}

	var beneficiaries []models.Beneficiary
	require.NoError(suite.T(), models.DB.Find(&beneficiaries).Error)
	for _, b := range beneficiaries {
		assert.True(suite.T(), b.Savings.Equal(decimal.NewFromFloat(4)))
	}
}

func (suite *TestSuiteStandard) TestConfirmRewardNeverAvailable() {
	_ = suite.createTestRewardsAccount("1234123412341234")
	_ = suite.createTestRestaurant(models.Restaurant{
		MerchantNumber:     "1234567890",
		BenefitPercentage:  decimal.NewFromFloat(0.08),
		AvailabilityPolicy: "N",
	})

	network := rewards.NewRewardNetwork(suite.transactionManager())

	dining, err := rewards.NewDiningEvent("100.00", "1234123412341234", "1234567890")
	require.NoError(suite.T(), err)

	confirmation, err := network.RewardAccountFor(dining)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), confirmation.AccountContribution.Amount.IsZero())

	var beneficiaries []models.Beneficiary
	require.NoError(suite.T(), models.DB.Find(&beneficiaries).Error)
	for _, b := range beneficiaries {
		assert.True(suite.T(), b.Savings.IsZero())
	}
}

// Confirmation numbers are unique across rewards.
func (suite *TestSuiteStandard) TestConfirmationNumbersUnique() {
	_ = suite.createTestRewardsAccount("1234123412341234")
	_ = suite.createTestRestaurant(models.Restaurant{
		MerchantNumber:     "1234567890",
		BenefitPercentage:  decimal.NewFromFloat(0.08),
		AvailabilityPolicy: "A",
	})

	network := rewards.NewRewardNetwork(suite.transactionManager())

	seen := make(map[string]bool)
	for range 5 {
		dining, err := rewards.NewDiningEvent("10.00", "1234123412341234", "1234567890")
		require.NoError(suite.T(), err)

		confirmation, err := network.RewardAccountFor(dining)
		require.NoError(suite.T(), err)

		assert.False(suite.T(), seen[confirmation.ConfirmationNumber], "confirmation number reused")
		seen[confirmation.ConfirmationNumber] = true
	}
}
