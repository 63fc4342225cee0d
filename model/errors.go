package model

import "errors"

var (
	ErrUnknownItemType   = errors.New("unknown item type")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrCartEmpty         = errors.New("cart is empty")
	ErrAmbiguousCartItem = errors.New("cart item must reference exactly one of product or package")
	ErrNegativePrice     = errors.New("price must not be negative")
)
