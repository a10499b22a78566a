package utils

import "time"

// Loc is the timezone used to split the diary into days.
var Loc = time.Local

func SetLocation(loc *time.Location) {
	if loc != nil {
		Loc = loc
	}
}

// FormatLocal returns the provided time formatted in the configured timezone.
func FormatLocal(t time.Time) string {
	return t.In(Loc).Format(time.RFC1123)
}

// DayBounds returns the [start, end) of the local day containing t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	local := t.In(Loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Loc)
	return start, start.AddDate(0, 0, 1)
}

// ParseDay accepts 2006-01-02 or 02/01/06 and returns midnight in Loc.
func ParseDay(s string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", s, Loc)
	if err != nil {
		d, err = time.ParseInLocation("02/01/06", s, Loc)
	}
	return d, err
}
