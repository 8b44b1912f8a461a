package controllers_test

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/reward-network/backend/internal/controllers"
	"github.com/reward-network/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAccountCreate() {
	account := suite.createTestRewardsAccount("1234123412341234")

	assert.Equal(suite.T(), "123456789", account.Number)
	assert.Equal(suite.T(), "Keith and Keri Donald", account.Name)
	assert.Equal(suite.T(), []string{"1234123412341234"}, account.CreditCards)

	require.Len(suite.T(), account.Beneficiaries, 2)
	assert.Equal(suite.T(), "Annabelle", account.Beneficiaries[0].Name)
	assert.Equal(suite.T(), "50%", account.Beneficiaries[0].Allocation.String())
	assert.Equal(suite.T(), "0.00", account.Beneficiaries[0].Savings.String())
}

func (suite *TestSuiteStandard) TestAccountCreateAllocationsMustSumToOne() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/accounts", controllers.AccountCreate{
		Number: "123456789",
		Beneficiaries: []controllers.BeneficiaryCreate{
			{Name: "Annabelle", Allocation: "50%"},
			{Name: "Corgan", Allocation: "40%"},
		},
	})

	assertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAccountCreateInvalidAllocation() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/accounts", controllers.AccountCreate{
		Number: "123456789",
		Beneficiaries: []controllers.BeneficiaryCreate{
			{Name: "Annabelle", Allocation: "150%"},
		},
	})

	assertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAccountCreateDuplicateNumber() {
	_ = suite.createTestAccount(controllers.AccountCreate{Number: "123456789"})

	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/accounts", controllers.AccountCreate{
		Number: "123456789",
	})

	assertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Contains(suite.T(), test.DecodeError(suite.T(), recorder.Body.Bytes()), "already in use")
}

func (suite *TestSuiteStandard) TestAccountCreateEmptyBody() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/accounts", "")
	assertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAccountsGet() {
	_ = suite.createTestAccount(controllers.AccountCreate{Number: "222222222"})
	_ = suite.createTestAccount(controllers.AccountCreate{Number: "111111111"})

	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/accounts", "")
	assertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.AccountListResponse
	decodeResponse(suite.T(), &recorder, &response)

	// Sorted by account number
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "111111111", response.Data[0].Number)
	assert.Equal(suite.T(), "222222222", response.Data[1].Number)
}

func (suite *TestSuiteStandard) TestAccountsGetFilterNumber() {
	_ = suite.createTestAccount(controllers.AccountCreate{Number: "222222222"})
	_ = suite.createTestAccount(controllers.AccountCreate{Number: "111111111"})

	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/accounts?number=222222222", "")
	assertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.AccountListResponse
	decodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "222222222", response.Data[0].Number)
}

func (suite *TestSuiteStandard) TestAccountGet() {
	account := suite.createTestRewardsAccount("1234123412341234")

	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/accounts/"+account.ID.String(), "")
	assertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.AccountResponse
	decodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), account.ID, response.Data.ID)
	assert.Len(suite.T(), response.Data.Beneficiaries, 2)
}

func (suite *TestSuiteStandard) TestAccountGetInvalidID() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/accounts/not-a-uuid", "")
	assertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAccountGetNotFound() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/accounts/"+uuid.New().String(), "")
	assertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAccountOptions() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodOptions, "/v1/accounts", "")
	assertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", recorder.Header().Get("allow"))
}
