package domain

import (
	"fmt"
	"time"
)

// DefaultDateFormat is the strftime layout used for the date line.
const DefaultDateFormat = "%Y/%m/%d %A"

// Time is a wall-clock reading with second precision.
type Time struct {
	Hours   int
	Minutes int
	Seconds int
}

// TimeOf extracts the clock fields of t in t's location.
func TimeOf(t time.Time) Time {
	return Time{
		Hours:   t.Hour(),
		Minutes: t.Minute(),
		Seconds: t.Second(),
	}
}

// Format returns "HH:MM", or "HH:MM:SS" when withSeconds is set.
func (t Time) Format(withSeconds bool) string {
	if withSeconds {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
	}
	return fmt.Sprintf("%02d:%02d", t.Hours, t.Minutes)
}
