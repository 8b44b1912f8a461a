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
	"golang.org/x/exp/slices"
)

// RestaurantCreate represents all user configurable parameters of a
// restaurant.
type RestaurantCreate struct {
	MerchantNumber     string `json:"merchantNumber" example:"1234567890"`     // Merchant number of the restaurant
	Name               string `json:"name" example:"AppleBees"`                // Name of the restaurant
	BenefitPercentage  string `json:"benefitPercentage" example:"8%"`          // Fraction of the dining amount contributed, "8%" and "0.08" are equivalent
	AvailabilityPolicy string `json:"availabilityPolicy" example:"A" default:"A"` // Policy code, "A" for always available, "N" for never available
}

// RestaurantObject is the API representation of a restaurant.
type RestaurantObject struct {
	ID                 uuid.UUID        `json:"id" example:"4b5f3c2e-95ab-4a68-9308-b1ed8ca4b4bc"`
	MerchantNumber     string           `json:"merchantNumber" example:"1234567890"`
	Name               string           `json:"name" example:"AppleBees"`
	BenefitPercentage  money.Percentage `json:"benefitPercentage" example:"8%"`
	AvailabilityPolicy string           `json:"availabilityPolicy" example:"A"`
}

type RestaurantResponse struct {
	Data  *RestaurantObject `json:"data"`                                                   // The restaurant
	Error *string           `json:"error" example:"the merchant number is already in use"` // The error, if any occurred
}

type RestaurantListResponse struct {
	Data  []RestaurantObject `json:"data"`                                                   // List of restaurants
	Error *string            `json:"error" example:"the merchant number is already in use"` // The error, if any occurred
}

// RestaurantQueryFilter narrows down restaurant listings.
type RestaurantQueryFilter struct {
	AvailabilityPolicy string `form:"availabilityPolicy"` // By policy code
	Offset             uint   `form:"offset"`             // The offset of the first Restaurant returned. Defaults to 0.
	Limit              int    `form:"limit"`              // Maximum number of Restaurants to return. Defaults to 50.
}

// RegisterRestaurantRoutes registers the routes for restaurants with
// the RouterGroup that is passed.
func (co Controller) RegisterRestaurantRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsRestaurantList)
		r.GET("", co.GetRestaurants)
		r.POST("", co.CreateRestaurant)
	}

	// Restaurant by merchant number
	{
		r.OPTIONS("/:merchantNumber", co.OptionsRestaurantDetail)
		r.GET("/:merchantNumber", co.GetRestaurant)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Restaurants
// @Success		204
// @Router			/v1/restaurants [options]
func (co Controller) OptionsRestaurantList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Restaurants
// @Success		204
// @Router			/v1/restaurants/{merchantNumber} [options]
func (co Controller) OptionsRestaurantDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Create restaurant
// @Description	Registers a new restaurant with the network
// @Tags			Restaurants
// @Accept			json
// @Produce		json
// @Success		201			{object}	RestaurantResponse
// @Failure		400			{object}	RestaurantResponse
// @Failure		500			{object}	RestaurantResponse
// @Param			restaurant	body		RestaurantCreate	true	"Restaurant"
// @Router			/v1/restaurants [post]
func (co Controller) CreateRestaurant(c *gin.Context) {
	var create RestaurantCreate

	err := httputil.BindData(c, &create)
	if err != nil {
		s := err.Error()
		c.JSON(httperrors.Status(err), RestaurantResponse{Error: &s})
		return
	}

	percentage, err := money.ParsePercentage(create.BenefitPercentage)
	if err != nil {
		s := err.Error()
		c.JSON(httperrors.Status(err), RestaurantResponse{Error: &s})
		return
	}

	if create.AvailabilityPolicy == "" {
		create.AvailabilityPolicy = rewards.PolicyCodeAlways
	}

	restaurant := models.Restaurant{
		MerchantNumber:     create.MerchantNumber,
		Name:               create.Name,
		BenefitPercentage:  percentage.Decimal(),
		AvailabilityPolicy: create.AvailabilityPolicy,
	}

	err = co.DB.Create(&restaurant).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperrors.Status(err), RestaurantResponse{Error: &s})
		return
	}

	o := newRestaurantObject(restaurant)
	c.JSON(http.StatusCreated, RestaurantResponse{Data: &o})
}

// @Summary		Get restaurants
// @Description	Returns a list of restaurants
// @Tags			Restaurants
// @Produce		json
// @Success		200	{object}	RestaurantListResponse
// @Failure		400	{object}	RestaurantListResponse
// @Failure		500	{object}	RestaurantListResponse
// @Router			/v1/restaurants [get]
// @Param			availabilityPolicy	query	string	false	"Filter by policy code"
// @Param			offset				query	uint	false	"The offset of the first Restaurant returned. Defaults to 0."
// @Param			limit				query	int		false	"Maximum number of Restaurants to return. Defaults to 50."
func (co Controller) GetRestaurants(c *gin.Context) {
	var filter RestaurantQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	policies := []string{rewards.PolicyCodeAlways, rewards.PolicyCodeNever}
	if filter.AvailabilityPolicy != "" && !slices.Contains(policies, filter.AvailabilityPolicy) {
		s := rewards.ErrPolicyUnknown.Error()
		c.JSON(http.StatusBadRequest, RestaurantListResponse{Error: &s})
		return
	}

	q := co.DB.
		Order("merchant_number ASC").
		Where(&models.Restaurant{AvailabilityPolicy: filter.AvailabilityPolicy})

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Restaurants and set the limit
	limit := 50
	if filter.Limit > 0 {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var restaurants []models.Restaurant
	err := q.Find(&restaurants).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperrors.Status(err), RestaurantListResponse{Error: &s})
		return
	}

	r := make([]RestaurantObject, 0)
	for _, restaurant := range restaurants {
		r = append(r, newRestaurantObject(restaurant))
	}

	c.JSON(http.StatusOK, RestaurantListResponse{Data: r})
}

// @Summary		Get restaurant
// @Description	Returns the restaurant for a merchant number
// @Tags			Restaurants
// @Produce		json
// @Success		200				{object}	RestaurantResponse
// @Failure		404				{object}	RestaurantResponse
// @Failure		500				{object}	RestaurantResponse
// @Param			merchantNumber	path		string	true	"Merchant number of the restaurant"
// @Router			/v1/restaurants/{merchantNumber} [get]
func (co Controller) GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	err := co.DB.Where(&models.Restaurant{
		MerchantNumber: c.Param("merchantNumber"),
	}).First(&restaurant).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperrors.Status(err), RestaurantResponse{Error: &s})
		return
	}

	o := newRestaurantObject(restaurant)
	c.JSON(http.StatusOK, RestaurantResponse{Data: &o})
}

func newRestaurantObject(restaurant models.Restaurant) RestaurantObject {
	// The percentage was validated when the restaurant was saved
	percentage, _ := money.NewPercentageFromDecimal(restaurant.BenefitPercentage)

	return RestaurantObject{
		ID:                 restaurant.ID,
		MerchantNumber:     restaurant.MerchantNumber,
		Name:               restaurant.Name,
		BenefitPercentage:  percentage,
		AvailabilityPolicy: restaurant.AvailabilityPolicy,
	}
}
