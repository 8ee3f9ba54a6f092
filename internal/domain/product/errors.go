package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("product out of stock")
	ErrInvalidStatus   = errors.New("invalid product status")
	ErrSKUExists       = errors.New("sku already exists")
)
