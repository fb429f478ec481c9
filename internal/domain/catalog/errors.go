package catalog

import "errors"

var (
	ErrProductNotFound   = errors.New("catalog: product not found")
	ErrFarmerNotFound    = errors.New("catalog: farmer not found")
	ErrFarmerExists      = errors.New("catalog: farmer already registered")
	ErrInsufficientStock = errors.New("catalog: insufficient stock")
)
