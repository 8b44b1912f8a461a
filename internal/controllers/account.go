package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/reward-network/backend/internal/httperrors"
	"github.com/reward-network/backend/internal/httputil"
	"github.com/reward-network/backend/internal/models"
	"github.com/reward-network/backend/internal/money"
	"github.com/reward-network/backend/internal/rewards"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountCreate represents all user configurable parameters of an
// account.
type AccountCreate struct {
	Number            string              `json:"number" example:"123456789"`             // Business identifier of the account
	Name              string              `json:"name" example:"Keith and Keri Donald"`   // Name of the account holder
	CreditCardNumbers []string            `json:"creditCardNumbers" example:"1234123412341234"` // Credit cards charging this account
	Beneficiaries     []BeneficiaryCreate `json:"beneficiaries"`                          // Beneficiaries of the account
}

// BeneficiaryCreate represents one beneficiary of an account to create.
type BeneficiaryCreate struct {
	Name       string `json:"name" example:"Annabelle"`     // Name of the beneficiary
	Allocation string `json:"allocation" example:"50%"` // Fraction of every contribution, "50%" and "0.5" are equivalent
}

// AccountObject is the API representation of an account.
type AccountObject struct {
	ID            uuid.UUID           `json:"id" example:"9e280f25-46fc-4eff-94c4-8015c5siae9c"`
	Number        string              `json:"number" example:"123456789"`
	Name          string              `json:"name" example:"Keith and Keri Donald"`
	CreditCards   []string            `json:"creditCards" example:"1234123412341234"`
	Beneficiaries []BeneficiaryObject `json:"beneficiaries"`
}

// BeneficiaryObject is the API representation of a beneficiary.
type BeneficiaryObject struct {
	Name       string           `json:"name" example:"Annabelle"`
	Allocation money.Percentage `json:"allocation" example:"50%"`
	Savings    money.Money      `json:"savings" example:"4.00"`
}

type AccountResponse struct {
	Data  *AccountObject `json:"data"`                                                    // The account
	Error *string        `json:"error" example:"the account number is already in use"` // The error, if any occurred
}

type AccountListResponse struct {
	Data  []AccountObject `json:"data"`                                                    // List of accounts
	Error *string         `json:"error" example:"the account number is already in use"` // The error, if any occurred
}

// AccountQueryFilter narrows down account listings.
type AccountQueryFilter struct {
	Number string `form:"number"` // By account number
	Offset uint   `form:"offset"` // The offset of the first Account returned. Defaults to 0.
	Limit  int    `form:"limit"`  // Maximum number of Accounts to return. Defaults to 50.
}

// RegisterAccountRoutes registers the routes for accounts with the
// RouterGroup that is passed.
func (co Controller) RegisterAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsAccountList)
		r.GET("", co.GetAccounts)
		r.POST("", co.CreateAccount)
	}

	// Account with ID
	{
		r.OPTIONS("/:id", co.OptionsAccountDetail)
		r.GET("/:id", co.GetAccount)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts [options]
func (co Controller) OptionsAccountList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts/{id} [options]
func (co Controller) OptionsAccountDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Create account
// @Description	Creates a new account with its beneficiaries and credit cards
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		201		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		500		{object}	AccountResponse
// @Param			account	body		AccountCreate	true	"Account"
// @Router			/v1/accounts [post]
func (co Controller) CreateAccount(c *gin.Context) {
	var create AccountCreate

	err := httputil.BindData(c, &create)
	if err != nil {
		s := err.Error()
		c.JSON(httperrors.Status(err), AccountResponse{Error: &s})
		return
	}

	allocations := make([]money.Percentage, 0, len(create.Beneficiaries))
	sum := decimal.Zero
	for _, beneficiary := range create.Beneficiaries {
		allocation, err := money.ParsePercentage(beneficiary.Allocation)
		if err != nil {
			s := err.Error()
			c.JSON(httperrors.Status(err), AccountResponse{Error: &s})
			return
		}

		allocations = append(allocations, allocation)
		sum = sum.Add(allocation.Decimal())
	}

	// Reject allocations that could never support a contribution
	if len(create.Beneficiaries) > 0 && !sum.Equal(decimal.NewFromInt(1)) {
		s := rewards.ErrAllocationConfig.Error()
		c.JSON(http.StatusBadRequest, AccountResponse{Error: &s})
		return
	}

	account := models.Account{
		Number: create.Number,
		Name:   create.Name,
	}

	err = co.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Create(&account).Error
		if err != nil {
			return err
		}

		for _, number := range create.CreditCardNumbers {
			err = tx.Create(&models.CreditCard{
				AccountID: account.ID,
				Number:    number,
			}).Error
			if err != nil {
				return err
			}
		}

		for i, beneficiary := range create.Beneficiaries {
			err = tx.Create(&models.Beneficiary{
				AccountID:            account.ID,
				Name:                 beneficiary.Name,
				AllocationPercentage: allocations[i].Decimal(),
			}).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		s := err.Error()
		c.JSON(httperrors.Status(err), AccountResponse{Error: &s})
		return
	}

	o, err := co.newAccountObject(account)
	if err != nil {
		s := err.Error()
		c.JSON(httperrors.Status(err), AccountResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, AccountResponse{Data: &o})
}

// @Summary		Get accounts
// @Description	Returns a list of accounts
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountListResponse
// @Failure		500	{object}	AccountListResponse
// @Router			/v1/accounts [get]
// @Param			number	query	string	false	"Filter by account number"
// @Param			offset	query	uint	false	"The offset of the first Account returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Accounts to return. Defaults to 50."
func (co Controller) GetAccounts(c *gin.Context) {
	var filter AccountQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	q := co.DB.
		Order("number ASC").
		Where(&models.Account{Number: filter.Number})

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Accounts and set the limit
	limit := 50
	if filter.Limit > 0 {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var accounts []models.Account
	err := q.Find(&accounts).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperrors.Status(err), AccountListResponse{Error: &s})
		return
	}

	r := make([]AccountObject, 0)
	for _, account := range accounts {
		o, err := co.newAccountObject(account)
		if err != nil {
			s := err.Error()
			c.JSON(httperrors.Status(err), AccountListResponse{Error: &s})
			return
		}
		r = append(r, o)
	}

	c.JSON(http.StatusOK, AccountListResponse{Data: r})
}

// @Summary		Get account
// @Description	Returns a specific account with its beneficiaries and credit cards
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountResponse
// @Failure		400	{object}	AccountResponse
// @Failure		404	{object}	AccountResponse
// @Failure		500	{object}	AccountResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/accounts/{id} [get]
func (co Controller) GetAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		s := "The specified resource ID is not a valid UUID"
		c.JSON(http.StatusBadRequest, AccountResponse{Error: &s})
		return
	}

	var account models.Account
	err = co.DB.First(&account, "id = ?", id).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperrors.Status(err), AccountResponse{Error: &s})
		return
	}

	o, err := co.newAccountObject(account)
	if err != nil {
		s := err.Error()
		c.JSON(httperrors.Status(err), AccountResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, AccountResponse{Data: &o})
}

// newAccountObject builds the API representation of an account,
// including its beneficiaries and credit cards.
func (co Controller) newAccountObject(account models.Account) (AccountObject, error) {
	var beneficiaries []models.Beneficiary
	err := co.DB.
		Where(&models.Beneficiary{AccountID: account.ID}).
		Order("created_at ASC").
		Find(&beneficiaries).Error
	if err != nil {
		return AccountObject{}, err
	}

	var cards []models.CreditCard
	err = co.DB.
		Where(&models.CreditCard{AccountID: account.ID}).
		Order("created_at ASC").
		Find(&cards).Error
	if err != nil {
		return AccountObject{}, err
	}

	b := make([]BeneficiaryObject, 0, len(beneficiaries))
	for _, beneficiary := range beneficiaries {
		allocation, err := money.NewPercentageFromDecimal(beneficiary.AllocationPercentage)
		if err != nil {
			return AccountObject{}, err
		}

		b = append(b, BeneficiaryObject{
			Name:       beneficiary.Name,
			Allocation: allocation,
			Savings:    money.New(beneficiary.Savings),
		})
	}

	numbers := make([]string, 0, len(cards))
	for _, card := range cards {
		numbers = append(numbers, card.Number)
	}

	return AccountObject{
		ID:            account.ID,
		Number:        account.Number,
		Name:          account.Name,
		CreditCards:   numbers,
		Beneficiaries: b,
	}, nil
}
