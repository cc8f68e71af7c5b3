package model

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParseRejectsGarbage(t *testing.T) {
	cases := [][]byte{
		[]byte("not json"),
		[]byte(`"just a string"`),
		[]byte(`{"activities": "not-a-list"}`),
		[]byte(`[1, 2, 3]`),
	}
	for _, data := range cases {
		if _, err := Parse(data); !errors.Is(err, ErrMalformed) {
			t.Fatalf("Parse(%q) err = %v, want ErrMalformed", data, err)
		}
	}
}

func TestParseRejectsBadShape(t *testing.T) {
	cases := []struct {
		name string
		blob string
	}{
		{"empty activity name", `{"activities": [""]}`},
		{"duplicate activity", `{"activities": ["Read", "Read"]}`},
		{"negative streak", `{"current_streak": -1}`},
		{"bad record date", `{"daily_records": {"not-a-date": {"Read": true}}}`},
		{"bad app-open date", `{"app_opens": {"2024-1-1": true}}`},
		{"bad reset date", `{"last_reset_date": "garbage"}`},
	}
	for _, tc := range cases {
		if _, err := Parse([]byte(tc.blob)); !errors.Is(err, ErrMalformed) {
			t.Fatalf("%s: err = %v, want ErrMalformed", tc.name, err)
		}
	}
}

func TestParseRejectsOversizedActivityList(t *testing.T) {
	names := make([]string, MaxActivities+1)
	for i := range names {
		names[i] = fmt.Sprintf("%q", fmt.Sprintf("habit-%d", i))
	}
	blob := fmt.Sprintf(`{"activities": [%s]}`, strings.Join(names, ","))

	if _, err := Parse([]byte(blob)); !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}

func TestParseNormalizesSparseBlob(t *testing.T) {
	l, err := Parse([]byte(`{"theme": "solarized"}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if l.Activities == nil || l.DailyRecords == nil || l.AppOpens == nil {
		t.Fatal("nil collections survived normalization")
	}
	if l.Theme != ThemeLight {
		t.Fatalf("unknown theme normalized to %q, want light", l.Theme)
	}
}

func TestParseMarshalRoundTrip(t *testing.T) {
	l := New("2024-06-15")
	l.Activities = []string{"Read", "Run"}
	l.DailyRecords["2024-06-15"] = DailyRecord{"Read": true, "Run": false}
	l.CurrentStreak = 3
	l.BestStreak = 5
	l.Theme = ThemeDark

	data, err := Marshal(l)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got.CurrentStreak != 3 || got.BestStreak != 5 {
		t.Fatalf("streaks = %d/%d, want 3/5", got.CurrentStreak, got.BestStreak)
	}
	if !got.Record("2024-06-15")["Read"] || got.Record("2024-06-15")["Run"] {
		t.Fatal("daily record did not survive round trip")
	}
	if got.Theme != ThemeDark {
		t.Fatalf("theme = %q, want dark", got.Theme)
	}
}

func TestLedgerHelpers(t *testing.T) {
	l := New("2024-06-15")
	l.Activities = []string{"Read"}

	if !l.HasActivity("Read") {
		t.Fatal("HasActivity(Read) = false")
	}
	if l.HasActivity("read") {
		t.Fatal("activity match is case-insensitive, want case-sensitive")
	}

	if rec := l.Record("1999-01-01"); len(rec) != 0 {
		t.Fatalf("untouched date record = %v, want empty", rec)
	}

	l.AppOpens["2024-06-13"] = true
	l.AppOpens["2024-06-14"] = true
	dates := l.OpenDates()
	if len(dates) != 3 || dates[0] != "2024-06-13" || dates[2] != "2024-06-15" {
		t.Fatalf("OpenDates = %v, want ascending 13..15", dates)
	}
}
