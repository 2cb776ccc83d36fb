package domain

import "errors"

var (
	ErrUnknownKind      = errors.New("invalid account type")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidCampus    = errors.New("invalid campus code")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidCommand   = errors.New("invalid command")
	ErrMissingData      = errors.New("missing data")
	ErrInvalidProfile   = errors.New("invalid profile")
	ErrAccountNotFound  = errors.New("account not found")
	ErrDuplicateAccount = errors.New("account already exists")
	ErrInsufficientFund = errors.New("insufficient fund")
)
