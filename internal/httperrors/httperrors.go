package httperrors

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/go-sqlite"
	"github.com/reward-network/backend/internal/httputil"
	"github.com/reward-network/backend/internal/models"
	"github.com/reward-network/backend/internal/money"
	"github.com/reward-network/backend/internal/rewards"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type HTTPError struct {
	Error string `json:"error" example:"no account is registered for this credit card"`
}

// Generate a struct containing the HTTP error on the fly.
func New(c *gin.Context, status int, msgAndArgs ...any) {
	// Format msgAndArgs in a final string.
	// This is taken almost exactly from https://github.com/stretchr/testify/blob/181cea6eab8b2de7071383eca4be32a424db38dd/assert/assertions.go#L181
	msg := ""
	if len(msgAndArgs) == 1 {
		if msgAsStr, ok := msgAndArgs[0].(string); ok {
			msg = msgAsStr
		}
		msg = fmt.Sprintf("%+v", msg)
	}

	if len(msgAndArgs) > 1 {
		msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	}

	c.JSON(status, HTTPError{
		Error: msg,
	})
}

// Status returns the HTTP status code appropriate to the error that has
// occurred.
func Status(err error) int {
	switch {
	case errors.Is(err, rewards.ErrAccountNotFound),
		errors.Is(err, rewards.ErrRestaurantNotFound),
		errors.Is(err, models.ErrResourceNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound

	case errors.Is(err, money.ErrFormat),
		errors.Is(err, rewards.ErrInvalidAmount),
		errors.Is(err, rewards.ErrAllocationConfig),
		errors.Is(err, rewards.ErrPolicyUnknown),
		errors.Is(err, models.ErrAccountNumberNotUnique),
		errors.Is(err, models.ErrCreditCardNumberNotUnique),
		errors.Is(err, models.ErrBeneficiaryNameNotUnique),
		errors.Is(err, models.ErrMerchantNumberNotUnique),
		errors.Is(err, models.ErrAllocationOutOfRange),
		errors.Is(err, models.ErrBenefitPercentageOutOfRange),
		errors.Is(err, httputil.ErrRequestBodyEmpty),
		errors.Is(err, httputil.ErrInvalidBody),
		errors.Is(err, io.EOF):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// Handler writes the error response for an error returned by the reward
// engine or the database.
func Handler(c *gin.Context, err error) {
	status := Status(err)
	if status != http.StatusInternalServerError {
		New(c, status, err.Error())
		return
	}

	// A database error we do not know more about
	if reflect.TypeOf(err) == reflect.TypeOf(&sqlite.Error{}) {
		log.Error().Msgf("%T: %v", err, err.Error())
		New(c, http.StatusInternalServerError, "A database error occurred during your request")
		return
	}

	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	New(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred on the server during your request, please contact your server administrator. The request id is '%v', send this to your server administrator to help them finding the problem", requestid.Get(c)))
}
