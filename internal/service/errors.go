package service

import "errors"

var (
	ErrInvalidFood      = errors.New("invalid food data provided")
	ErrInvalidBarcode   = errors.New("invalid barcode")
	ErrFoodNotFound     = errors.New("food not found")
	ErrForbidden        = errors.New("food cannot be modified by this user")
	ErrDuplicateBarcode = errors.New("food with this barcode already exists")
	ErrStorage          = errors.New("food storage failure")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
)
