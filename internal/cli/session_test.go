package cli

import (
	"context"
	"strings"
	"testing"

	"matchbook/internal/engine"
	"matchbook/internal/service"
)

func newTestSession(input string) (*Session, *strings.Builder) {
	svc := service.NewMatchingService(engine.New(), nil, nil)
	var out strings.Builder
	return NewSession(svc, 0, strings.NewReader(input), &out), &out
}

func runSession(t *testing.T, input string) string {
	t.Helper()
	s, out := newTestSession(input)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return out.String()
}

func TestSessionTranscript(t *testing.T) {
	input := strings.Join([]string{
		"buy 10@100 #1",
		"sell 4@100 #2",
		"list",
		"sell 10@99 #3",
		"list",
		"quit",
	}, "\n")

	want := strings.Join([]string{
		"Welcome to matchbook. Type 'help' for a list of commands.",
		"TRADE 4@100 (#2 -> #1)",
		"BUY:",
		"BUY 6@100 #1",
		"SELL:",
		"TRADE 6@100 (#3 -> #1)",
		"BUY:",
		"SELL:",
		"SELL 4@99 #3",
		"Good bye!",
		"",
	}, "\n")

	if got := runSession(t, input); got != want {
		t.Errorf("transcript mismatch:\n--- got ---\n%s--- want ---\n%s", got, want)
	}
}

func TestSessionAssignsIDs(t *testing.T) {
	got := runSession(t, "buy 1@5\nbuy 1@5\nlist\nquit")

	if !strings.Contains(got, "BUY 1@5 #1") || !strings.Contains(got, "BUY 1@5 #2") {
		t.Errorf("expected auto-assigned ids 1 and 2, got:\n%s", got)
	}
}

func TestSessionBadInputContinues(t *testing.T) {
	got := runSession(t, "frobnicate\nbuy 1@5 #7\nlist\nquit")

	if !strings.Contains(got, "Bad input:") {
		t.Errorf("expected a bad input report, got:\n%s", got)
	}
	if !strings.Contains(got, "BUY 1@5 #7") {
		t.Errorf("session must keep running after bad input, got:\n%s", got)
	}
}

func TestSessionRejectedOrderReported(t *testing.T) {
	got := runSession(t, "buy 0@5\nquit")

	if !strings.Contains(got, "Bad input: invalid order [quantity]") {
		t.Errorf("expected a rejection message, got:\n%s", got)
	}
}

func TestSessionBlankLinesSkipped(t *testing.T) {
	got := runSession(t, "\n   \nquit")

	want := "Welcome to matchbook. Type 'help' for a list of commands.\nGood bye!\n"
	if got != want {
		t.Errorf("blank lines must produce no output, got:\n%s", got)
	}
}

func TestSessionEOFEndsCleanly(t *testing.T) {
	// No quit command; the input simply ends.
	got := runSession(t, "buy 1@5")

	if !strings.HasSuffix(got, "Good bye!\n") {
		t.Errorf("expected farewell on EOF, got:\n%s", got)
	}
}

func TestSessionTradesWithJournalDisabled(t *testing.T) {
	got := runSession(t, "trades\nquit")

	if !strings.Contains(got, "Trade journal is disabled.") {
		t.Errorf("expected journal-disabled notice, got:\n%s", got)
	}
}

func TestSessionHelp(t *testing.T) {
	got := runSession(t, "help\nquit")

	if !strings.Contains(got, "buy|sell <quantity>@<price> [#<id>]") {
		t.Errorf("expected help text, got:\n%s", got)
	}
}

func TestSessionStats(t *testing.T) {
	got := runSession(t, "buy 10@100 #1\nsell 4@100 #2\nbuy 0@1\nstats\nquit")

	if !strings.Contains(got, "orders: accepted=2 rejected=1 rested=1") {
		t.Errorf("expected order counters, got:\n%s", got)
	}
	if !strings.Contains(got, "trades: executed=1 quantity=4") {
		t.Errorf("expected trade counters, got:\n%s", got)
	}
}

func TestSessionContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, _ := newTestSession("buy 1@5\nquit")
	if err := s.Run(ctx); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
