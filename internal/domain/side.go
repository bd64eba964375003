package domain

import (
	"fmt"
	"strings"
)

// Side is the direction of an order.
type Side uint8

const (
	// SideUnspecified is the zero value; every order must carry Buy or Sell.
	SideUnspecified Side = iota
	Buy
	Sell
)

// Opposite maps Buy to Sell and Sell to Buy.
func (s Side) Opposite() Side {
	switch s {
	case Buy:
		return Sell
	case Sell:
		return Buy
	default:
		return SideUnspecified
	}
}

// Valid reports whether s is Buy or Sell.
func (s Side) Valid() bool {
	return s == Buy || s == Sell
}

func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// ParseSide converts a command token into a Side. Matching is case-insensitive.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return SideUnspecified, fmt.Errorf("%w: %q", ErrInvalidSide, s)
	}
}
