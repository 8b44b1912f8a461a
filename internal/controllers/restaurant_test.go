package controllers_test

import (
	"net/http"

	"github.com/reward-network/backend/internal/controllers"
	"github.com/reward-network/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRestaurantCreate() {
	restaurant := suite.createTestRestaurant(controllers.RestaurantCreate{
		MerchantNumber:    "1234567890",
		Name:              "AppleBees",
		BenefitPercentage: "8%",
	})

	assert.Equal(suite.T(), "1234567890", restaurant.MerchantNumber)
	assert.Equal(suite.T(), "AppleBees", restaurant.Name)
	assert.Equal(suite.T(), "8%", restaurant.BenefitPercentage.String())

	// The policy defaults to always available
	assert.Equal(suite.T(), "A", restaurant.AvailabilityPolicy)
}

func (suite *TestSuiteStandard) TestRestaurantCreateFractionForm() {
	restaurant := suite.createTestRestaurant(controllers.RestaurantCreate{
		MerchantNumber:    "1234567890",
		BenefitPercentage: "0.08",
	})

	assert.Equal(suite.T(), "8%", restaurant.BenefitPercentage.String())
}

func (suite *TestSuiteStandard) TestRestaurantCreateUnknownPolicy() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/restaurants", controllers.RestaurantCreate{
		MerchantNumber:     "1234567890",
		BenefitPercentage:  "8%",
		AvailabilityPolicy: "X",
	})

	assertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRestaurantCreateInvalidPercentage() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/restaurants", controllers.RestaurantCreate{
		MerchantNumber:    "1234567890",
		BenefitPercentage: "108%",
	})

	assertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRestaurantCreateDuplicateMerchantNumber() {
	_ = suite.createTestRestaurant(controllers.RestaurantCreate{
		MerchantNumber:    "1234567890",
		BenefitPercentage: "8%",
	})

	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/restaurants", controllers.RestaurantCreate{
		MerchantNumber:    "1234567890",
		BenefitPercentage: "5%",
	})

	assertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Contains(suite.T(), test.DecodeError(suite.T(), recorder.Body.Bytes()), "already in use")
}

func (suite *TestSuiteStandard) TestRestaurantsGet() {
	_ = suite.createTestRestaurant(controllers.RestaurantCreate{MerchantNumber: "2222222222", BenefitPercentage: "5%"})
	_ = suite.createTestRestaurant(controllers.RestaurantCreate{MerchantNumber: "1111111111", BenefitPercentage: "8%", AvailabilityPolicy: "N"})

	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/restaurants", "")
	assertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.RestaurantListResponse
	decodeResponse(suite.T(), &recorder, &response)

	// Sorted by merchant number
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "1111111111", response.Data[0].MerchantNumber)
	assert.Equal(suite.T(), "2222222222", response.Data[1].MerchantNumber)
}

func (suite *TestSuiteStandard) TestRestaurantsGetFilterPolicy() {
	_ = suite.createTestRestaurant(controllers.RestaurantCreate{MerchantNumber: "2222222222", BenefitPercentage: "5%"})
	_ = suite.createTestRestaurant(controllers.RestaurantCreate{MerchantNumber: "1111111111", BenefitPercentage: "8%", AvailabilityPolicy: "N"})

	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/restaurants?availabilityPolicy=N", "")
	assertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.RestaurantListResponse
	decodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "1111111111", response.Data[0].MerchantNumber)
}

func (suite *TestSuiteStandard) TestRestaurantsGetFilterUnknownPolicy() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/restaurants?availabilityPolicy=X", "")
	assertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRestaurantGet() {
	_ = suite.createTestRestaurant(controllers.RestaurantCreate{
		MerchantNumber:    "1234567890",
		Name:              "AppleBees",
		BenefitPercentage: "8%",
	})

	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/restaurants/1234567890", "")
	assertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.RestaurantResponse
	decodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "AppleBees", response.Data.Name)
}

func (suite *TestSuiteStandard) TestRestaurantGetNotFound() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/restaurants/0000000000", "")
	assertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestRestaurantOptions() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodOptions, "/v1/restaurants", "")
	assertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", recorder.Header().Get("allow"))
}
