package services

import (
	"errors"
	"strings"
	"time"
)

// DayLayout is the wire format of plate dates.
const DayLayout = "2006-01-02"

var ErrDayInvalid = errors.New("invalid date")

// DateAtLocation truncates value to midnight of its calendar day in location.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// StoredDay maps value's calendar day in location to midnight UTC of that same date.
// Plate rows keep dates in this zone-free form so every driver reads them back unchanged.
func StoredDay(value time.Time, location *time.Location) time.Time {
	local := DateAtLocation(value, location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// StoredDayRange is the half-open [start, end) interval of stored dates covering value's day in location.
func StoredDayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := StoredDay(value, location)
	return start, start.AddDate(0, 0, 1)
}

// FormatStoredDay renders a date read back from a plate row.
func FormatStoredDay(value time.Time) string {
	return value.UTC().Format(DayLayout)
}

func FormatDay(value time.Time) string {
	return value.Format(DayLayout)
}

// ParseDay reads a YYYY-MM-DD value in location. A blank value resolves to today's date.
func ParseDay(raw string, now time.Time, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return DateAtLocation(now, location), nil
	}
	parsed, err := time.ParseInLocation(DayLayout, trimmed, location)
	if err != nil {
		return time.Time{}, ErrDayInvalid
	}
	return parsed, nil
}
