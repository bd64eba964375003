package infra

import (
	"sync/atomic"
	"time"
)

// Metrics provides lightweight observability without external dependencies.
// Uses atomic operations for thread-safety.
type Metrics struct {
	// Counters
	ordersAccepted atomic.Uint64
	ordersRejected atomic.Uint64
	ordersRested   atomic.Uint64
	tradesExecuted atomic.Uint64
	quantityTraded atomic.Int64

	// Latency tracking for Submit calls
	latencySumNs atomic.Int64
	latencyCount atomic.Uint64
}

// RecordSubmit records one accepted submission: the trades it produced, the
// quantity exchanged, whether a remainder rested, and the call latency.
func (m *Metrics) RecordSubmit(trades int, qty int64, rested bool, latency time.Duration) {
	m.ordersAccepted.Add(1)
	m.tradesExecuted.Add(uint64(trades))
	m.quantityTraded.Add(qty)
	if rested {
		m.ordersRested.Add(1)
	}
	m.latencySumNs.Add(latency.Nanoseconds())
	m.latencyCount.Add(1)
}

// RecordRejected records an order that failed validation.
func (m *Metrics) RecordRejected() {
	m.ordersRejected.Add(1)
}

// MetricsSnapshot is a point-in-time view of all metrics.
type MetricsSnapshot struct {
	OrdersAccepted uint64
	OrdersRejected uint64
	OrdersRested   uint64
	TradesExecuted uint64
	QuantityTraded int64
	AvgLatencyNs   int64
	Timestamp      time.Time
}

// Snapshot returns current metrics as a snapshot.
func (m *Metrics) Snapshot() MetricsSnapshot {
	var avgLatency int64
	count := m.latencyCount.Load()
	if count > 0 {
		avgLatency = m.latencySumNs.Load() / int64(count)
	}

	return MetricsSnapshot{
		OrdersAccepted: m.ordersAccepted.Load(),
		OrdersRejected: m.ordersRejected.Load(),
		OrdersRested:   m.ordersRested.Load(),
		TradesExecuted: m.tradesExecuted.Load(),
		QuantityTraded: m.quantityTraded.Load(),
		AvgLatencyNs:   avgLatency,
		Timestamp:      time.Now(),
	}
}

// Reset clears all metrics (for testing).
func (m *Metrics) Reset() {
	m.ordersAccepted.Store(0)
	m.ordersRejected.Store(0)
	m.ordersRested.Store(0)
	m.tradesExecuted.Store(0)
	m.quantityTraded.Store(0)
	m.latencySumNs.Store(0)
	m.latencyCount.Store(0)
}
