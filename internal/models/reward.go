package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reward is the durable record of a confirmed reward: the contribution
// summary plus the dining event that triggered it.
type Reward struct {
	DefaultModel
	ConfirmationNumber   string          `gorm:"uniqueIndex"`
	RewardAmount         decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	RewardDate           time.Time
	AccountNumber        string
	DiningAmount         decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DiningMerchantNumber string
	DiningDate           time.Time
}

// RewardDistribution is one beneficiary's share of a confirmed reward.
type RewardDistribution struct {
	DefaultModel
	Reward      Reward          `json:"-"`
	RewardID    uuid.UUID       `json:"rewardId" gorm:"uniqueIndex:reward_distribution_beneficiary"`
	Beneficiary string          `gorm:"uniqueIndex:reward_distribution_beneficiary"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}
