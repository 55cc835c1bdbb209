package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const calendarDateLayout = "2006-01-02"

var ErrInvalidCalendarDate = errors.New("invalid calendar date")

// CalendarDate is a wall-calendar day with no time-of-day or zone attached.
// Event dates are stored this way so grouping by month never shifts across
// time zones.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// CalendarDateOf takes the calendar day of t in t's own location.
func CalendarDateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// ParseCalendarDate accepts "2006-01-02" and full RFC3339 timestamps; for the
// latter the date part as written is kept.
func ParseCalendarDate(s string) (CalendarDate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CalendarDate{}, fmt.Errorf("%w: empty", ErrInvalidCalendarDate)
	}
	if t, err := time.Parse(calendarDateLayout, s); err == nil {
		return CalendarDateOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return CalendarDateOf(t), nil
	}
	return CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidCalendarDate, s)
}

func (d CalendarDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Compare returns -1, 0 or +1.
func (d CalendarDate) Compare(o CalendarDate) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func (d CalendarDate) Before(o CalendarDate) bool { return d.Compare(o) < 0 }

func (d CalendarDate) After(o CalendarDate) bool { return d.Compare(o) > 0 }

func (d CalendarDate) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *CalendarDate) UnmarshalJSON(b []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if raw == "" || raw == "null" {
		*d = CalendarDate{}
		return nil
	}
	parsed, err := ParseCalendarDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
