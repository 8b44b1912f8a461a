package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/reward-network/backend/internal/httperrors"
	"github.com/reward-network/backend/internal/httputil"
	"github.com/reward-network/backend/internal/models"
	"github.com/reward-network/backend/internal/money"
	"github.com/reward-network/backend/internal/rewards"
)

// rewardsConfirmed counts confirmed rewards over the lifetime of the
// process.
var rewardsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "rewards_confirmed_total",
	Help: "How many rewards have been confirmed.",
})

// RewardCreate represents a dining event to reward.
type RewardCreate struct {
	Amount           string     `json:"amount" example:"100.00"`                      // Amount of the dining purchase
	CreditCardNumber string     `json:"creditCardNumber" example:"1234123412341234"`  // Credit card the purchase was paid with
	MerchantNumber   string     `json:"merchantNumber" example:"1234567890"`          // Merchant number of the restaurant
	Date             *time.Time `json:"date" example:"2024-07-01T18:43:00Z"`          // Date of the purchase. Defaults to now.
}

// RewardObject is the API representation of a confirmed reward.
type RewardObject struct {
	ID                   uuid.UUID            `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	ConfirmationNumber   string               `json:"confirmationNumber" example:"0190b682-a5b8-7d7e-b6a1-2b5f4e3c1a9d"`
	RewardAmount         money.Money          `json:"rewardAmount" example:"8.00"`
	RewardDate           time.Time            `json:"rewardDate" example:"2024-07-01T18:43:00Z"`
	AccountNumber        string               `json:"accountNumber" example:"123456789"`
	DiningAmount         money.Money          `json:"diningAmount" example:"100.00"`
	DiningMerchantNumber string               `json:"diningMerchantNumber" example:"1234567890"`
	DiningDate           time.Time            `json:"diningDate" example:"2024-07-01T18:43:00Z"`
	Distributions        []DistributionObject `json:"distributions"`
}

// DistributionObject is one beneficiary's share of a reward.
type DistributionObject struct {
	Beneficiary string      `json:"beneficiary" example:"Annabelle"`
	Amount      money.Money `json:"amount" example:"4.00"`
}

type RewardResponse struct {
	Data  *RewardObject `json:"data"`                                                               // The reward
	Error *string       `json:"error" example:"no account is registered for this credit card"` // The error, if any occurred
}

type RewardListResponse struct {
	Data  []RewardObject `json:"data"`                                                               // List of rewards
	Error *string        `json:"error" example:"no account is registered for this credit card"` // The error, if any occurred
}

// RewardConfirmationResponse is returned when a reward has been
// confirmed. It carries the contribution as the engine computed it.
type RewardConfirmationResponse struct {
	Data  *rewards.RewardConfirmation `json:"data"`                                                               // The confirmation
	Error *string                     `json:"error" example:"no account is registered for this credit card"` // The error, if any occurred
}

// RewardQueryFilter narrows down reward listings.
type RewardQueryFilter struct {
	AccountNumber  string `form:"accountNumber"`  // By account number
	MerchantNumber string `form:"merchantNumber"` // By merchant number of the restaurant
	Offset         uint   `form:"offset"`         // The offset of the first Reward returned. Defaults to 0.
	Limit          int    `form:"limit"`          // Maximum number of Rewards to return. Defaults to 50.
}

// RegisterRewardRoutes registers the routes for rewards with the
// RouterGroup that is passed.
func (co Controller) RegisterRewardRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsRewardList)
		r.GET("", co.GetRewards)
		r.POST("", co.CreateReward)
	}

	// Reward by confirmation number
	{
		r.OPTIONS("/:confirmationNumber", co.OptionsRewardDetail)
		r.GET("/:confirmationNumber", co.GetReward)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Rewards
// @Success		204
// @Router			/v1/rewards [options]
func (co Controller) OptionsRewardList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Rewards
// @Success		204
// @Router			/v1/rewards/{confirmationNumber} [options]
func (co Controller) OptionsRewardDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Reward an account for dining
// @Description	Rewards the account linked to the credit card for dining at the restaurant. The benefit is calculated, distributed to the account's beneficiaries and confirmed, all atomically.
// @Tags			Rewards
// @Accept			json
// @Produce		json
// @Success		201		{object}	RewardConfirmationResponse
// @Failure		400		{object}	RewardConfirmationResponse
// @Failure		404		{object}	RewardConfirmationResponse
// @Failure		500		{object}	RewardConfirmationResponse
// @Param			reward	body		RewardCreate	true	"Dining event"
// @Router			/v1/rewards [post]
func (co Controller) CreateReward(c *gin.Context) {
	var create RewardCreate

	err := httputil.BindData(c, &create)
	if err != nil {
		s := err.Error()
		c.JSON(httperrors.Status(err), RewardConfirmationResponse{Error: &s})
		return
	}

	dining, err := rewards.NewDiningEvent(create.Amount, create.CreditCardNumber, create.MerchantNumber)
	if err != nil {
		s := err.Error()
		c.JSON(httperrors.Status(err), RewardConfirmationResponse{Error: &s})
		return
	}

	if create.Date != nil {
		dining.Date = create.Date.In(time.UTC)
	}

	confirmation, err := co.Network.RewardAccountFor(dining)
	if err != nil {
		s := err.Error()
		c.JSON(httperrors.Status(err), RewardConfirmationResponse{Error: &s})
		return
	}

	rewardsConfirmed.Inc()
	c.JSON(http.StatusCreated, RewardConfirmationResponse{Data: &confirmation})
}

// @Summary		Get rewards
// @Description	Returns a list of confirmed rewards
// @Tags			Rewards
// @Produce		json
// @Success		200	{object}	RewardListResponse
// @Failure		500	{object}	RewardListResponse
// @Router			/v1/rewards [get]
// @Param			accountNumber	query	string	false	"Filter by account number"
// @Param			merchantNumber	query	string	false	"Filter by merchant number"
// @Param			offset			query	uint	false	"The offset of the first Reward returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of Rewards to return. Defaults to 50."
func (co Controller) GetRewards(c *gin.Context) {
	var filter RewardQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	q := co.DB.
		Order("reward_date DESC, confirmation_number ASC").
		Where(&models.Reward{
			AccountNumber:        filter.AccountNumber,
			DiningMerchantNumber: filter.MerchantNumber,
		})

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Rewards and set the limit
	limit := 50
	if filter.Limit > 0 {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var list []models.Reward
	err := q.Find(&list).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperrors.Status(err), RewardListResponse{Error: &s})
		return
	}

	r := make([]RewardObject, 0)
	for _, reward := range list {
		o, err := co.newRewardObject(reward)
		if err != nil {
			s := err.Error()
			c.JSON(httperrors.Status(err), RewardListResponse{Error: &s})
			return
		}
		r = append(r, o)
	}

	c.JSON(http.StatusOK, RewardListResponse{Data: r})
}

// @Summary		Get reward
// @Description	Returns the reward for a confirmation number
// @Tags			Rewards
// @Produce		json
// @Success		200					{object}	RewardResponse
// @Failure		404					{object}	RewardResponse
// @Failure		500					{object}	RewardResponse
// @Param			confirmationNumber	path		string	true	"Confirmation number of the reward"
// @Router			/v1/rewards/{confirmationNumber} [get]
func (co Controller) GetReward(c *gin.Context) {
	var reward models.Reward
	err := co.DB.Where(&models.Reward{
		ConfirmationNumber: c.Param("confirmationNumber"),
	}).First(&reward).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperrors.Status(err), RewardResponse{Error: &s})
		return
	}

	o, err := co.newRewardObject(reward)
	if err != nil {
		s := err.Error()
		c.JSON(httperrors.Status(err), RewardResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, RewardResponse{Data: &o})
}

// newRewardObject builds the API representation of a reward, including
// its distributions.
func (co Controller) newRewardObject(reward models.Reward) (RewardObject, error) {
	var distributions []models.RewardDistribution
	err := co.DB.
		Where(&models.RewardDistribution{RewardID: reward.ID}).
		Order("created_at ASC").
		Find(&distributions).Error
	if err != nil {
		return RewardObject{}, err
	}

	d := make([]DistributionObject, 0, len(distributions))
	for _, distribution := range distributions {
		d = append(d, DistributionObject{
			Beneficiary: distribution.Beneficiary,
			Amount:      money.New(distribution.Amount),
		})
	}

	return RewardObject{
		ID:                   reward.ID,
		ConfirmationNumber:   reward.ConfirmationNumber,
		RewardAmount:         money.New(reward.RewardAmount),
		RewardDate:           reward.RewardDate,
		AccountNumber:        reward.AccountNumber,
		DiningAmount:         money.New(reward.DiningAmount),
		DiningMerchantNumber: reward.DiningMerchantNumber,
		DiningDate:           reward.DiningDate,
		Distributions:        d,
	}, nil
}
