package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAccountNumberNotUnique      = errors.New("the account number is already in use")
	ErrCreditCardNumberNotUnique   = errors.New("the credit card number is already registered")
	ErrBeneficiaryNameNotUnique    = errors.New("the beneficiary name must be unique for the account")
	ErrMerchantNumberNotUnique     = errors.New("the merchant number is already in use")
	ErrAllocationOutOfRange        = errors.New("the allocation percentage must be between 0% and 100%")
	ErrBenefitPercentageOutOfRange = errors.New("the benefit percentage must be between 0% and 100%")
)
