package service

import "errors"

var (
	ErrUserFieldsIncorrect = errors.New("user has incorrect or empty fields")
	ErrPasswordIncorrect   = errors.New("incorrect password")

	ErrProductFieldsIncorrect = errors.New("product has incorrect or empty fields")

	ErrOrderFieldsIncorrect         = errors.New("order has incorrect or empty fields")
	ErrCompleteOrderFieldsIncorrect = errors.New("complete order has incorrect or empty fields")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
