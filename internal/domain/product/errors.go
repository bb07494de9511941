package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrSKUExists       = errors.New("product sku already exists")
	ErrSlugExists      = errors.New("product slug already exists")
	ErrOutOfStock      = errors.New("product out of stock")
)
