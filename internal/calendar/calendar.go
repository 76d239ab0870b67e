// Package calendar maps trading dates to the canonical instant that
// identifies a curve version, and back.
//
// Every trading date is pinned to 17:00 New York local time. US daylight
// saving transitions happen at 02:00, so 17:00 always exists exactly once
// on any calendar date and the mapping stays a bijection.
package calendar

import (
	"time"
	_ "time/tzdata" // reference zone must resolve on hosts without a zoneinfo database

	"cloud.google.com/go/civil"
)

const (
	// ZoneName is the reference zone for version timestamps.
	ZoneName = "America/New_York"
	// CloseHour is the local hour every version timestamp is anchored at.
	CloseHour = 17
)

var zone = mustLoadZone()

func mustLoadZone() *time.Location {
	loc, err := time.LoadLocation(ZoneName)
	if err != nil {
		panic("calendar: load " + ZoneName + ": " + err.Error())
	}
	return loc
}

// Location returns the reference time zone.
func Location() *time.Location { return zone }

// ToVersionTimestamp returns the canonical instant for a trading date,
// expressed in UTC so stored values compare byte-for-byte.
func ToVersionTimestamp(d civil.Date) time.Time {
	return time.Date(d.Year, d.Month, d.Day, CloseHour, 0, 0, 0, zone).UTC()
}

// ToTradingDate returns the trading date a version timestamp belongs to.
func ToTradingDate(ts time.Time) civil.Date {
	return civil.DateOf(ts.In(zone))
}

// Today returns the current trading date in the reference zone.
func Today() civil.Date {
	return civil.DateOf(time.Now().In(zone))
}

// ParseDate parses an ISO-8601 calendar date (YYYY-MM-DD).
func ParseDate(s string) (civil.Date, error) {
	return civil.ParseDate(s)
}
