package services

import (
	"errors"
	"testing"
	"time"
)

func TestStoredDayRangeUsesLocalCalendarDateAtUTCMidnight(t *testing.T) {
	t.Parallel()

	location := time.FixedZone("UTC+3", 3*60*60)
	raw := time.Date(2026, 2, 1, 22, 35, 10, 0, time.UTC)
	start, end := StoredDayRange(raw, location)

	if !start.Equal(time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)) || start.Location() != time.UTC {
		t.Fatalf("expected 2026-02-02 at midnight UTC, got %s", start.Format(time.RFC3339))
	}
	if !end.Equal(start.AddDate(0, 0, 1)) {
		t.Fatalf("expected next day end, got %s", end.Format(time.RFC3339))
	}
}

func TestFormatStoredDayIgnoresConfiguredZone(t *testing.T) {
	t.Parallel()

	newYork := time.FixedZone("UTC-4", -4*60*60)

	// Date columns read back as midnight UTC; a western zone must not shift them to the day before.
	stored := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	if got := FormatStoredDay(stored); got != "2026-10-17" {
		t.Fatalf("expected 2026-10-17, got %s", got)
	}
	if got := FormatStoredDay(stored.In(newYork)); got != "2026-10-17" {
		t.Fatalf("expected the same date whatever the value's zone, got %s", got)
	}

	evening := time.Date(2026, 10, 17, 22, 0, 0, 0, newYork)
	if got := FormatStoredDay(StoredDay(evening, newYork)); got != "2026-10-17" {
		t.Fatalf("expected the local calendar day to survive storage, got %s", got)
	}
}

func TestParseDay(t *testing.T) {
	t.Parallel()

	location := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC)

	today, err := ParseDay("  ", now, location)
	if err != nil {
		t.Fatalf("ParseDay blank: %v", err)
	}
	if FormatDay(today) != "2026-03-09" {
		t.Fatalf("expected today in location to be 2026-03-09, got %s", FormatDay(today))
	}

	parsed, err := ParseDay("2026-01-31", now, location)
	if err != nil {
		t.Fatalf("ParseDay: %v", err)
	}
	if !parsed.Equal(time.Date(2026, 1, 31, 0, 0, 0, 0, location)) {
		t.Fatalf("unexpected parsed day %s", parsed.Format(time.RFC3339))
	}

	for _, raw := range []string{"31/01/2026", "2026-02-30", "yesterday"} {
		if _, err := ParseDay(raw, now, location); !errors.Is(err, ErrDayInvalid) {
			t.Fatalf("ParseDay(%q) expected ErrDayInvalid, got %v", raw, err)
		}
	}
}
