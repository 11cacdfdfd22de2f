package service

import "errors"

var (
	ErrValidation         = errors.New("validation")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrPasswordReuse      = errors.New("password reuse")
)
