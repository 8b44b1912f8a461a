package models_test

import (
	"github.com/reward-network/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccountTrimWhitespace() {
	account := suite.createTestAccount(models.Account{
		Number: " 123456789 ",
		Name:   "  Keith and Keri Donald \t",
	})

	assert.Equal(suite.T(), "123456789", account.Number)
	assert.Equal(suite.T(), "Keith and Keri Donald", account.Name)
}

func (suite *TestSuiteStandard) TestAccountNumberUnique() {
	_ = suite.createTestAccount(models.Account{Number: "123456789"})

	err := models.DB.Create(&models.Account{Number: "123456789"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrAccountNumberNotUnique)
}

func (suite *TestSuiteStandard) TestCreditCardNumberUnique() {
	account := suite.createTestAccount(models.Account{})
	_ = suite.createTestCreditCard(models.CreditCard{AccountID: account.ID, Number: "1234123412341234"})

	err := models.DB.Create(&models.CreditCard{AccountID: account.ID, Number: "1234123412341234"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCreditCardNumberNotUnique)
}

func (suite *TestSuiteStandard) TestBeneficiaryNameUniquePerAccount() {
	account := suite.createTestAccount(models.Account{})
	_ = suite.createTestBeneficiary(models.Beneficiary{
		AccountID:            account.ID,
		Name:                 "Annabelle",
		AllocationPercentage: decimal.NewFromFloat(0.5),
	})

	err := models.DB.Create(&models.Beneficiary{
		AccountID:            account.ID,
		Name:                 "Annabelle",
		AllocationPercentage: decimal.NewFromFloat(0.5),
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrBeneficiaryNameNotUnique)

	// The same name on another account is fine
	other := suite.createTestAccount(models.Account{})
	_ = suite.createTestBeneficiary(models.Beneficiary{
		AccountID:            other.ID,
		Name:                 "Annabelle",
		AllocationPercentage: decimal.NewFromFloat(1),
	})
}

func (suite *TestSuiteStandard) TestBeneficiaryAllocationRange() {
	account := suite.createTestAccount(models.Account{})

	tests := []struct {
		allocation float64
		err        error
	}{
		{0, nil},
		{0.5, nil},
		{1, nil},
		{-0.1, models.ErrAllocationOutOfRange},
		{1.1, models.ErrAllocationOutOfRange},
	}

	for _, tt := range tests {
		beneficiary := models.Beneficiary{
			AccountID:            account.ID,
			Name:                 suite.T().Name() + decimal.NewFromFloat(tt.allocation).String(),
			AllocationPercentage: decimal.NewFromFloat(tt.allocation),
		}

		err := models.DB.Create(&beneficiary).Error
		if tt.err == nil {
			assert.NoError(suite.T(), err, "allocation %v", tt.allocation)
		} else {
			assert.ErrorIs(suite.T(), err, tt.err, "allocation %v", tt.allocation)
		}
	}
}
