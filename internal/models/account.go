package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account represents a rewards account. Its number is the business
// identifier shown on confirmations; beneficiaries and credit cards
// reference the account by its ID.
type Account struct {
	DefaultModel
	Number string `gorm:"uniqueIndex"`
	Name   string
}

// BeforeSave trims whitespace from all strings.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Number = strings.TrimSpace(a.Number)
	a.Name = strings.TrimSpace(a.Name)

	return nil
}

// CreditCard links a card number to the account it charges. One account
// can carry several cards.
type CreditCard struct {
	DefaultModel
	Account   Account   `json:"-"`
	AccountID uuid.UUID `json:"accountId"`
	Number    string    `gorm:"uniqueIndex"`
}

func (c *CreditCard) BeforeSave(_ *gorm.DB) error {
	c.Number = strings.TrimSpace(c.Number)
	return nil
}

// Beneficiary is one row of an account's beneficiary set. Savings is
// the accumulated balance, written back after every contribution.
type Beneficiary struct {
	DefaultModel
	Account              Account         `json:"-"`
	AccountID            uuid.UUID       `json:"accountId" gorm:"uniqueIndex:beneficiary_account_name"`
	Name                 string          `gorm:"uniqueIndex:beneficiary_account_name"`
	AllocationPercentage decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Fraction of every contribution, e.g. 0.5 for 50%
	Savings              decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

var one = decimal.NewFromInt(1)

// BeforeSave verifies that the allocation percentage is a valid
// fraction. Whether all allocations of an account sum to 100% is not a
// row-level property; it is enforced when a contribution is made.
func (b *Beneficiary) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)

	if b.AllocationPercentage.IsNegative() || b.AllocationPercentage.GreaterThan(one) {
		return ErrAllocationOutOfRange
	}

	return nil
}
