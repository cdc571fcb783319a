package calendar

import (
	"fmt"
	"sync"
	"time"
)

// All stored and transmitted timestamps use a single fixed timezone to avoid
// ambiguity between the booking page, the database and the calendar provider.
const (
	TimeZone = "Asia/Kolkata"

	// Layout is the wall-clock format stored on bookings and token expiry.
	Layout = "2006-01-02T15:04:05"

	// slotLayout matches the booking page's "June 02 2006 15:04" strings.
	slotLayout = "January 02 2006 15:04"
)

var (
	locOnce sync.Once
	loc     *time.Location
)

func Location() *time.Location {
	locOnce.Do(func() {
		var err error
		loc, err = time.LoadLocation(TimeZone)
		if err != nil {
			loc = time.FixedZone("IST", 5*3600+30*60)
		}
	})

	return loc
}

// ParseSlot parses a booking page date ("June 01") and time ("10:00") pair.
// The year is not part of the wire format; the current year is assumed.
func ParseSlot(date, clock string, now time.Time) (time.Time, error) {
	full := fmt.Sprintf("%s %d %s", date, now.Year(), clock)

	t, err := time.ParseInLocation(slotLayout, full, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse slot time %q: %w", full, err)
	}

	return t, nil
}

// FormatLocal renders t as a wall-clock string in the fixed timezone.
func FormatLocal(t time.Time) string {
	return t.In(Location()).Format(Layout)
}

// ParseLocal is the inverse of FormatLocal.
func ParseLocal(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse local time %q: %w", s, err)
	}

	return t, nil
}
