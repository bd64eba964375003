package infra

import (
	"testing"
	"time"
)

func TestMetrics_RecordSubmit(t *testing.T) {
	m := &Metrics{}

	m.RecordSubmit(0, 0, true, 1000*time.Nanosecond)
	m.RecordSubmit(1, 4, false, 2000*time.Nanosecond)
	m.RecordSubmit(2, 10, true, 3000*time.Nanosecond)

	snap := m.Snapshot()

	if snap.OrdersAccepted != 3 {
		t.Errorf("Expected 3 accepted, got %d", snap.OrdersAccepted)
	}
	if snap.OrdersRested != 2 {
		t.Errorf("Expected 2 rested, got %d", snap.OrdersRested)
	}
	if snap.TradesExecuted != 3 {
		t.Errorf("Expected 3 trades, got %d", snap.TradesExecuted)
	}
	if snap.QuantityTraded != 14 {
		t.Errorf("Expected quantity 14, got %d", snap.QuantityTraded)
	}

	// Average latency: (1000 + 2000 + 3000) / 3 = 2000
	if snap.AvgLatencyNs != 2000 {
		t.Errorf("Expected avg latency 2000, got %d", snap.AvgLatencyNs)
	}
}

func TestMetrics_RecordRejected(t *testing.T) {
	m := &Metrics{}

	m.RecordRejected()
	m.RecordRejected()

	snap := m.Snapshot()
	if snap.OrdersRejected != 2 {
		t.Errorf("Expected 2 rejected, got %d", snap.OrdersRejected)
	}
	if snap.OrdersAccepted != 0 {
		t.Errorf("Expected 0 accepted, got %d", snap.OrdersAccepted)
	}
}

func TestMetrics_EmptySnapshot(t *testing.T) {
	m := &Metrics{}

	snap := m.Snapshot()
	if snap.AvgLatencyNs != 0 {
		t.Errorf("Expected avg latency 0 with no samples, got %d", snap.AvgLatencyNs)
	}
	if snap.Timestamp.IsZero() {
		t.Error("Expected snapshot timestamp to be set")
	}
}

func TestMetrics_Reset(t *testing.T) {
	m := &Metrics{}

	m.RecordSubmit(1, 4, true, time.Microsecond)
	m.RecordRejected()

	m.Reset()
	snap := m.Snapshot()

	if snap.OrdersAccepted != 0 {
		t.Error("Expected 0 accepted after reset")
	}
	if snap.OrdersRejected != 0 {
		t.Error("Expected 0 rejected after reset")
	}
	if snap.TradesExecuted != 0 || snap.QuantityTraded != 0 {
		t.Error("Expected trade counters cleared after reset")
	}
	if snap.AvgLatencyNs != 0 {
		t.Error("Expected latency cleared after reset")
	}
}
