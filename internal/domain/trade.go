package domain

// Trade is one execution event produced by crossing two orders. The price is
// always the resting (passive) order's limit price: the party already in the
// book sets the execution price. Trades are immutable values; the book keeps
// no reference to them after returning them.
type Trade struct {
	ActiveOrderID  uint64
	PassiveOrderID uint64
	Price          int64
	Quantity       int64
}
