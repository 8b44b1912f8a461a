package models_test

import (
	"github.com/reward-network/backend/internal/models"
	"github.com/reward-network/backend/internal/rewards"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRestaurantCache() {
	restaurant := suite.createTestRestaurant(models.Restaurant{
		MerchantNumber:     "1234567890",
		Name:               "AppleBees",
		BenefitPercentage:  decimal.NewFromFloat(0.08),
		AvailabilityPolicy: "A",
	})

	cache := models.NewRestaurantCache()
	tm := models.NewTransactionManager(models.DB, cache)

	lookup := func() (*rewards.Restaurant, error) {
		var found *rewards.Restaurant
		err := tm.Do(func(r rewards.Repositories) error {
			var err error
			found, err = r.Restaurants.FindByMerchantNumber("1234567890")
			return err
		})
		return found, err
	}

	first, err := lookup()
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "AppleBees", first.Name)

	// Remove the row; the cached entry keeps serving lookups
	require.NoError(suite.T(), models.DB.Unscoped().Delete(&restaurant).Error)

	second, err := lookup()
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "AppleBees", second.Name)

	// After shutdown the lookup falls through and misses
	cache.Shutdown()

	_, err = lookup()
	assert.ErrorIs(suite.T(), err, rewards.ErrRestaurantNotFound)
}
