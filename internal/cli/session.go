package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"matchbook/internal/domain"
	"matchbook/internal/service"
)

const helpText = `Available commands:
  buy|sell <quantity>@<price> [#<id>]  - Enter an order.
  list                                 - List all resting orders.
  trades [n]                           - Show the n most recent trades.
  stats                                - Show engine counters.
  help                                 - Show help (this message).
  quit                                 - Quit.`

// Session drives the matching service from a line-oriented reader. It owns
// nothing but presentation: parsing, formatting and id assignment for orders
// submitted without one.
type Session struct {
	svc      *service.MatchingService
	parser   *Parser
	renderer *Renderer
	in       io.Reader
	out      io.Writer

	nextID uint64
}

// NewSession creates a session reading commands from in and writing results
// to out.
func NewSession(svc *service.MatchingService, priceScale int, in io.Reader, out io.Writer) *Session {
	return &Session{
		svc:      svc,
		parser:   NewParser(priceScale),
		renderer: NewRenderer(priceScale),
		in:       in,
		out:      out,
	}
}

// Run reads commands until quit, EOF or context cancellation. Bad input is
// reported and the loop continues; only I/O errors terminate it.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Welcome to matchbook. Type 'help' for a list of commands.")

	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, err := s.parser.Parse(line)
		if err != nil {
			fmt.Fprintf(s.out, "Bad input: %v\n", err)
			continue
		}
		if cmd.Kind == CmdQuit {
			break
		}

		s.execute(ctx, cmd)
	}

	fmt.Fprintln(s.out, "Good bye!")
	return scanner.Err()
}

func (s *Session) execute(ctx context.Context, cmd Command) {
	switch cmd.Kind {
	case CmdOrder:
		s.submit(ctx, cmd.Order)

	case CmdList:
		fmt.Fprintln(s.out, "BUY:")
		for _, o := range s.svc.Orders(domain.Buy) {
			fmt.Fprintln(s.out, s.renderer.FormatOrder(o))
		}
		fmt.Fprintln(s.out, "SELL:")
		for _, o := range s.svc.Orders(domain.Sell) {
			fmt.Fprintln(s.out, s.renderer.FormatOrder(o))
		}

	case CmdTrades:
		if !s.svc.JournalEnabled() {
			fmt.Fprintln(s.out, "Trade journal is disabled.")
			return
		}
		records, err := s.svc.RecentTrades(ctx, cmd.Limit)
		if err != nil {
			fmt.Fprintf(s.out, "Cannot read trades: %v\n", err)
			return
		}
		if len(records) == 0 {
			fmt.Fprintln(s.out, "No trades yet.")
			return
		}
		for _, rec := range records {
			fmt.Fprintln(s.out, s.renderer.FormatTradeRecord(rec))
		}

	case CmdStats:
		snap := s.svc.Stats()
		fmt.Fprintf(s.out, "orders: accepted=%d rejected=%d rested=%d\n",
			snap.OrdersAccepted, snap.OrdersRejected, snap.OrdersRested)
		fmt.Fprintf(s.out, "trades: executed=%d quantity=%d\n",
			snap.TradesExecuted, snap.QuantityTraded)
		fmt.Fprintf(s.out, "avg submit latency: %s\n", time.Duration(snap.AvgLatencyNs))

	case CmdHelp:
		fmt.Fprintln(s.out, helpText)
	}
}

func (s *Session) submit(ctx context.Context, req OrderRequest) {
	id := req.ID
	if !req.HasID {
		s.nextID++
		id = s.nextID
	}

	trades, err := s.svc.Submit(ctx, domain.Order{
		ID:       id,
		Side:     req.Side,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		fmt.Fprintf(s.out, "Bad input: %v\n", err)
		return
	}

	for _, t := range trades {
		fmt.Fprintln(s.out, s.renderer.FormatTrade(t))
	}
}
