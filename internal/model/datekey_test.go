package model

import (
	"testing"
	"time"
)

func TestDateKeyValid(t *testing.T) {
	valid := []DateKey{"2024-01-01", "1999-12-31", "2024-02-29"}
	for _, d := range valid {
		if !d.Valid() {
			t.Fatalf("%q reported invalid", d)
		}
	}

	invalid := []DateKey{"", "2024-1-1", "2024-13-01", "2024-02-30", "01-01-2024", "yesterday"}
	for _, d := range invalid {
		if d.Valid() {
			t.Fatalf("%q reported valid", d)
		}
	}
}

func TestDateKeyAddDaysCrossesMonths(t *testing.T) {
	d := DateKey("2024-01-31")
	if got := d.AddDays(1); got != "2024-02-01" {
		t.Fatalf("AddDays(1) = %q, want 2024-02-01", got)
	}
	if got := d.AddDays(-31); got != "2023-12-31" {
		t.Fatalf("AddDays(-31) = %q, want 2023-12-31", got)
	}
}

func TestDateKeyNextDayOf(t *testing.T) {
	if !DateKey("2024-03-01").NextDayOf("2024-02-29") {
		t.Fatal("2024-03-01 should follow 2024-02-29")
	}
	if DateKey("2024-03-02").NextDayOf("2024-02-29") {
		t.Fatal("2024-03-02 should not follow 2024-02-29")
	}
}

func TestDateKeyOfUsesLocalCalendarDay(t *testing.T) {
	ts := time.Date(2024, 6, 15, 23, 59, 0, 0, time.Local)
	if got := DateKeyOf(ts); got != "2024-06-15" {
		t.Fatalf("DateKeyOf = %q, want 2024-06-15", got)
	}
}
