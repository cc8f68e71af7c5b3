package tui

import (
	"testing"

	"github.com/tallydev/tally/internal/ledger"
	"github.com/tallydev/tally/internal/tui/components"
)

func TestTabAtXHitboxes(t *testing.T) {
	a := App{activeTab: 0}

	// Leading space is not a tab.
	if got := a.tabAtX(0); got != -1 {
		t.Fatalf("tabAtX(0) = %d, want -1", got)
	}

	// Walk the same layout the renderer uses and probe the first and
	// last column of every tab.
	pos := 1
	for i, tab := range components.Tabs {
		w := components.TabVisualWidth(tab, i == a.activeTab)
		if got := a.tabAtX(pos); got != i {
			t.Fatalf("tabAtX(%d) = %d, want %d", pos, got, i)
		}
		if got := a.tabAtX(pos + w - 1); got != i {
			t.Fatalf("tabAtX(%d) = %d, want %d", pos+w-1, got, i)
		}
		pos += w + 2
	}

	// Past the last tab there is nothing to hit.
	if got := a.tabAtX(pos + 10); got != -1 {
		t.Fatalf("tabAtX beyond bar = %d, want -1", got)
	}
}

func TestValidationStatusMessages(t *testing.T) {
	// Every validation sentinel maps to a human message, not the raw
	// error string.
	msgs := map[string]bool{}
	for _, s := range []string{
		validationStatus(ledger.ErrInvalidName),
		validationStatus(ledger.ErrDuplicateName),
		validationStatus(ledger.ErrLimitExceeded),
		validationStatus(ledger.ErrUnknownActivity),
	} {
		if s == "" {
			t.Fatal("empty status message")
		}
		msgs[s] = true
	}
	if len(msgs) != 4 {
		t.Fatalf("expected 4 distinct messages, got %d", len(msgs))
	}
}

func TestPrevNextMonth(t *testing.T) {
	y, m := prevMonth(2024, 1)
	if y != 2023 || m != 12 {
		t.Fatalf("prevMonth(2024, Jan) = %d-%d, want 2023-12", y, m)
	}
	y, m = nextMonth(2023, 12)
	if y != 2024 || m != 1 {
		t.Fatalf("nextMonth(2023, Dec) = %d-%d, want 2024-1", y, m)
	}
}
