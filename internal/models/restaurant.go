package models

import (
	"strings"

	"github.com/reward-network/backend/internal/money"
	"github.com/reward-network/backend/internal/rewards"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Restaurant represents a merchant participating in the network. The
// availability policy is persisted as its single-letter code.
type Restaurant struct {
	DefaultModel
	MerchantNumber     string `gorm:"uniqueIndex"`
	Name               string
	BenefitPercentage  decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Fraction of the dining amount, e.g. 0.08 for 8%
	AvailabilityPolicy string          // "A" for always available, "N" for never available
}

// BeforeSave verifies that the benefit percentage is a valid fraction
// and that the policy code is known.
func (r *Restaurant) BeforeSave(_ *gorm.DB) error {
	r.MerchantNumber = strings.TrimSpace(r.MerchantNumber)
	r.Name = strings.TrimSpace(r.Name)

	if r.BenefitPercentage.IsNegative() || r.BenefitPercentage.GreaterThan(one) {
		return ErrBenefitPercentageOutOfRange
	}

	_, err := rewards.ParsePolicy(r.AvailabilityPolicy)
	if err != nil {
		return err
	}

	return nil
}

// Domain reconstitutes the restaurant for the reward engine.
func (r Restaurant) Domain() (*rewards.Restaurant, error) {
	percentage, err := money.NewPercentageFromDecimal(r.BenefitPercentage)
	if err != nil {
		return nil, err
	}

	policy, err := rewards.ParsePolicy(r.AvailabilityPolicy)
	if err != nil {
		return nil, err
	}

	return &rewards.Restaurant{
		MerchantNumber:      r.MerchantNumber,
		Name:                r.Name,
		BenefitPercentage:   percentage,
		BenefitAvailability: policy,
	}, nil
}
