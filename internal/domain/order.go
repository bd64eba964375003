package domain

// Order is a standing or incoming instruction to trade a quantity at a limit
// price. All monetary values are strictly int64: Price in ticks, Quantity in
// whole units.
type Order struct {
	ID       uint64
	Side     Side
	Price    int64  // limit price in ticks; a buy pays at most this, a sell accepts at least this
	Quantity int64  // remaining quantity; > 0 while the order lives in a book
	Sequence uint64 // arrival index assigned by the book; breaks price ties
}

// Validate checks that the order may enter a book. It returns an
// *InvalidOrderError describing the first offending field, or nil.
func (o Order) Validate() error {
	if !o.Side.Valid() {
		return &InvalidOrderError{Field: "side", Err: ErrInvalidSide}
	}
	if o.Quantity <= 0 {
		return &InvalidOrderError{Field: "quantity", Err: ErrQuantityNotPositive}
	}
	if o.Price < 0 {
		return &InvalidOrderError{Field: "price", Err: ErrNegativePrice}
	}
	return nil
}

// Reduce takes qty from the order's remaining quantity. Quantity is the only
// mutable field of an order; it never goes below zero.
func (o *Order) Reduce(qty int64) {
	if qty < 0 || qty > o.Quantity {
		panic("domain: reduce quantity out of range")
	}
	o.Quantity -= qty
}
