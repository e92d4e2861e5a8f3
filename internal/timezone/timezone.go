package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "Africa/Malabo"

const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	DateTimeLayout = "2006-01-02 15:04"
)

// Clock returns the current instant already converted to the shop's
// location. Use cases receive one instead of calling time.Now.
type Clock func() time.Time

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func SystemClock(tz string) Clock {
	loc := Location(tz)
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// FixedClock always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// Today is the calendar date of now in now's own location.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}

func ParseDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateTimeLayout, date+" "+clock, loc)
}
