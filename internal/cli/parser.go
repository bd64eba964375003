package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"matchbook/internal/domain"
)

// ErrUnknownCommand is returned for input that matches no known command.
var ErrUnknownCommand = errors.New("unknown command")

// defaultTradesLimit is how many journaled trades "trades" shows when no
// count is given.
const defaultTradesLimit = 10

// CommandKind enumerates the session commands.
type CommandKind int

const (
	CmdOrder CommandKind = iota
	CmdList
	CmdTrades
	CmdStats
	CmdHelp
	CmdQuit
)

// OrderRequest is a parsed buy/sell command before an id is assigned.
type OrderRequest struct {
	Side     domain.Side
	Quantity int64
	Price    int64 // in ticks
	ID       uint64
	HasID    bool
}

// Command is one parsed input line.
type Command struct {
	Kind  CommandKind
	Order OrderRequest // set when Kind == CmdOrder
	Limit int          // set when Kind == CmdTrades
}

// Parser turns input lines into commands. Prices are parsed as decimal
// strings and converted exactly into int64 ticks at the configured scale.
type Parser struct {
	scale int32
}

// NewParser creates a parser for the given price scale (decimal places per
// tick).
func NewParser(priceScale int) *Parser {
	return &Parser{scale: int32(priceScale)}
}

// Parse interprets one input line. Grammar:
//
//	buy|sell <quantity>@<price> [#<id>]
//	list | trades [n] | stats | help | quit
func (p *Parser) Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}

	switch strings.ToLower(fields[0]) {
	case "buy", "sell":
		return p.parseOrder(fields)
	case "list":
		return Command{Kind: CmdList}, nil
	case "trades":
		limit := defaultTradesLimit
		if len(fields) > 1 {
			n, err := strconv.Atoi(fields[1])
			if err != nil || n <= 0 {
				return Command{}, fmt.Errorf("bad trade count %q", fields[1])
			}
			limit = n
		}
		return Command{Kind: CmdTrades, Limit: limit}, nil
	case "stats":
		return Command{Kind: CmdStats}, nil
	case "help":
		return Command{Kind: CmdHelp}, nil
	case "quit":
		return Command{Kind: CmdQuit}, nil
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
}

func (p *Parser) parseOrder(fields []string) (Command, error) {
	if len(fields) < 2 || len(fields) > 3 {
		return Command{}, fmt.Errorf("expected %s <quantity>@<price> [#<id>]", fields[0])
	}

	// The side token is already known to be "buy" or "sell" here.
	side, err := domain.ParseSide(fields[0])
	if err != nil {
		return Command{}, err
	}

	qtyStr, priceStr, ok := strings.Cut(fields[1], "@")
	if !ok {
		return Command{}, fmt.Errorf("expected <quantity>@<price>, got %q", fields[1])
	}

	qty, err := strconv.ParseInt(qtyStr, 10, 64)
	if err != nil {
		return Command{}, fmt.Errorf("bad quantity %q", qtyStr)
	}

	price, err := p.parsePrice(priceStr)
	if err != nil {
		return Command{}, err
	}

	req := OrderRequest{Side: side, Quantity: qty, Price: price}
	if len(fields) == 3 {
		idStr, found := strings.CutPrefix(fields[2], "#")
		if !found {
			return Command{}, fmt.Errorf("expected #<id>, got %q", fields[2])
		}
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			return Command{}, fmt.Errorf("bad order id %q", idStr)
		}
		req.ID = id
		req.HasID = true
	}

	return Command{Kind: CmdOrder, Order: req}, nil
}

// parsePrice converts a decimal price string into ticks. The price must be
// exactly representable at the configured scale; quantization is the
// caller's decision, never the parser's.
func (p *Parser) parsePrice(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("bad price %q", s)
	}

	ticks := d.Shift(p.scale)
	if !ticks.IsInteger() {
		return 0, fmt.Errorf("price %s has more than %d decimal places", s, p.scale)
	}
	if !ticks.BigInt().IsInt64() {
		return 0, fmt.Errorf("price %s out of range", s)
	}
	return ticks.IntPart(), nil
}
