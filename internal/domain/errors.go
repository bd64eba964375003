package domain

import "errors"

var (
	// ErrQuantityNotPositive is returned when an order is submitted with quantity <= 0.
	ErrQuantityNotPositive = errors.New("quantity must be positive")

	// ErrNegativePrice is returned when an order carries a negative limit price.
	ErrNegativePrice = errors.New("price must not be negative")

	// ErrInvalidSide is returned when an order's side is neither Buy nor Sell.
	ErrInvalidSide = errors.New("invalid side")
)

// InvalidOrderError reports why an order was rejected. Rejection is atomic:
// the book is left untouched and no trades are produced.
type InvalidOrderError struct {
	Field string // offending field: "side", "quantity" or "price"
	Err   error
}

func (e *InvalidOrderError) Error() string {
	return "invalid order [" + e.Field + "]: " + e.Err.Error()
}

func (e *InvalidOrderError) Unwrap() error {
	return e.Err
}

// IsInvalidOrder reports whether err stems from order validation.
func IsInvalidOrder(err error) bool {
	var ie *InvalidOrderError
	return errors.As(err, &ie)
}
