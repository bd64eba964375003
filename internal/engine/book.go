package engine

import (
	"container/heap"
	"sort"
	"sync"

	"matchbook/internal/domain"
)

// OrderBook keeps the resting orders of a single instrument and matches
// every incoming order against them under price-time priority: best price
// first, earliest arrival first within a price.
//
// A single mutex guards each call. Matching is order-dependent (the outcome
// of trade N depends on the state left by trade N-1), so there is no
// finer-grained concurrency to extract.
type OrderBook struct {
	mu sync.Mutex

	// Occupied price levels per side, best price on top (O(1) peek).
	bidPrices *maxPriceHeap
	askPrices *minPriceHeap

	// FIFO queue per price level. Arrival order within a level is the time
	// priority, so the queue head is always the best-priority order there.
	bids map[int64][]*domain.Order
	asks map[int64][]*domain.Order

	nextSeq   uint64
	lastPrice int64
}

// New creates an empty order book.
func New() *OrderBook {
	bidPrices := &maxPriceHeap{}
	askPrices := &minPriceHeap{}
	heap.Init(bidPrices)
	heap.Init(askPrices)

	return &OrderBook{
		bidPrices: bidPrices,
		askPrices: askPrices,
		bids:      make(map[int64][]*domain.Order),
		asks:      make(map[int64][]*domain.Order),
	}
}

// Submit matches order against the opposite side and rests any unfilled
// remainder. It returns the trades in the order they executed, earliest
// passive priority first; the slice is empty when nothing crossed.
//
// Validation failures reject the order atomically: the book is left
// untouched, no sequence is consumed and no trades are produced.
func (b *OrderBook) Submit(order domain.Order) ([]domain.Trade, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextSeq++
	order.Sequence = b.nextSeq

	trades := b.match(&order)
	if order.Quantity > 0 {
		b.rest(&order)
	}
	return trades, nil
}

// match greedily crosses o against the best-priority opposite orders. It
// always takes as much as possible from the current best before moving on,
// and never revisits a fully filled order.
func (b *OrderBook) match(o *domain.Order) []domain.Trade {
	var trades []domain.Trade

	if o.Side == domain.Buy {
		for o.Quantity > 0 {
			best, ok := b.askPrices.peek()
			if !ok || best > o.Price {
				break
			}
			trades = append(trades, b.takeFromLevel(o, best, b.asks, b.askPrices))
		}
	} else {
		for o.Quantity > 0 {
			best, ok := b.bidPrices.peek()
			if !ok || best < o.Price {
				break
			}
			trades = append(trades, b.takeFromLevel(o, best, b.bids, b.bidPrices))
		}
	}
	return trades
}

// takeFromLevel executes one crossing step against the head of the price
// level, removing the passive order when fully filled. price is always the
// best price of its side, so an emptied level is the heap top.
func (b *OrderBook) takeFromLevel(o *domain.Order, price int64, levels map[int64][]*domain.Order, prices heap.Interface) domain.Trade {
	queue := levels[price]
	passive := queue[0]

	take := min(o.Quantity, passive.Quantity)
	o.Reduce(take)
	passive.Reduce(take)
	b.lastPrice = price

	if passive.Quantity == 0 {
		queue = queue[1:]
		levels[price] = queue
		if len(queue) == 0 {
			delete(levels, price)
			heap.Pop(prices)
		}
	}

	return domain.Trade{
		ActiveOrderID:  o.ID,
		PassiveOrderID: passive.ID,
		Price:          price,
		Quantity:       take,
	}
}

// rest places the remainder of o into the book. The stored copy is owned
// exclusively by the book from here on.
func (b *OrderBook) rest(o *domain.Order) {
	cp := *o
	if cp.Side == domain.Buy {
		if len(b.bids[cp.Price]) == 0 {
			heap.Push(b.bidPrices, cp.Price)
		}
		b.bids[cp.Price] = append(b.bids[cp.Price], &cp)
	} else {
		if len(b.asks[cp.Price]) == 0 {
			heap.Push(b.askPrices, cp.Price)
		}
		b.asks[cp.Price] = append(b.asks[cp.Price], &cp)
	}
}

// OrdersForSide returns a snapshot of all resting orders on side in strict
// priority order: price preference for that side first (highest bid /
// lowest ask), then arrival sequence. Mutating the result does not affect
// the book.
func (b *OrderBook) OrdersForSide(side domain.Side) []domain.Order {
	if !side.Valid() {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	levels := b.bids
	if side == domain.Sell {
		levels = b.asks
	}

	prices := make([]int64, 0, len(levels))
	for p := range levels {
		prices = append(prices, p)
	}
	if side == domain.Buy {
		sort.Slice(prices, func(i, j int) bool { return prices[i] > prices[j] })
	} else {
		sort.Slice(prices, func(i, j int) bool { return prices[i] < prices[j] })
	}

	out := make([]domain.Order, 0, len(prices))
	for _, p := range prices {
		for _, o := range levels[p] {
			out = append(out, *o)
		}
	}
	return out
}

// BestBid returns the highest resting bid price, if any.
func (b *OrderBook) BestBid() (int64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bidPrices.peek()
}

// BestAsk returns the lowest resting ask price, if any.
func (b *OrderBook) BestAsk() (int64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.askPrices.peek()
}

// LastPrice returns the price of the most recent execution, 0 before any
// trade has occurred.
func (b *OrderBook) LastPrice() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastPrice
}

// Depth returns the number of resting orders on side.
func (b *OrderBook) Depth(side domain.Side) int {
	if !side.Valid() {
		return 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	levels := b.bids
	if side == domain.Sell {
		levels = b.asks
	}
	n := 0
	for _, queue := range levels {
		n += len(queue)
	}
	return n
}
