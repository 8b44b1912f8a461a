package rewards

import (
	"time"

	"github.com/reward-network/backend/internal/money"
)

// DiningEvent describes a single dining purchase that may trigger a
// reward: who paid (by credit card), where (by merchant number), how
// much and when. It is immutable and constructed once per reward
// request.
type DiningEvent struct {
	Amount           money.Money
	CreditCardNumber string
	MerchantNumber   string
	Date             time.Time
}

// NewDiningEvent creates a dining event from the amount literal and the
// card and merchant numbers, dated now. The amount must be a
// non-negative decimal.
func NewDiningEvent(amount, creditCardNumber, merchantNumber string) (DiningEvent, error) {
	parsed, err := money.Parse(amount)
	if err != nil {
		return DiningEvent{}, err
	}

	return DiningEvent{
		Amount:           parsed,
		CreditCardNumber: creditCardNumber,
		MerchantNumber:   merchantNumber,
		Date:             time.Now().In(time.UTC),
	}, nil
}
