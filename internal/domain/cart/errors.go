package cart

import "errors"

var (
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 10")
	ErrItemNotFound    = errors.New("cart item not found")
	ErrInvalidPromo    = errors.New("invalid promo code")
)
