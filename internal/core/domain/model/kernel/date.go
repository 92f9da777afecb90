package kernel

import (
	"fmt"
	"strings"
	"time"

	"hvacops/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

// Accepted spellings of a date in imported and legacy records. Timestamps are
// reduced to the calendar date in their own offset.
var dateLayouts = []string{
	dateLayout,
	"2006.01.02",
	"2006/01/02",
	"20060102",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Date is a calendar date without time of day. The zero value is the absent
// date ("not yet known").
type Date struct {
	t       time.Time
	present bool
}

// NewDate normalises out-of-range components the same way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), present: true}
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate validates a date string at an ingestion boundary. Blank input is
// the absent date; input that matches no known layout is a ValueIsInvalidError.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}

	return Date{}, errs.NewValueIsInvalidErrorWithCause("date", fmt.Errorf("%q is not a calendar date", s))
}

// ParseDateOrAbsent is ParseDate for stored data, where an unparsable value
// reads as "not yet known".
func ParseDateOrAbsent(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		return Date{}
	}
	return d
}

func (d Date) IsPresent() bool {
	return d.present
}

// Compare returns -1, 0 or +1. Absent dates sort before present ones.
func (d Date) Compare(other Date) int {
	switch {
	case !d.present && !other.present:
		return 0
	case !d.present:
		return -1
	case !other.present:
		return 1
	}
	return d.t.Compare(other.t)
}

// Before and After are false when either date is absent.
func (d Date) Before(other Date) bool {
	return d.present && other.present && d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.present && other.present && d.t.After(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.present == other.present && d.t.Equal(other.t)
}

// AddDays keeps the absent date absent.
func (d Date) AddDays(n int) Date {
	if !d.present {
		return d
	}
	return Date{t: d.t.AddDate(0, 0, n), present: true}
}

// String is YYYY-MM-DD, or empty for the absent date.
func (d Date) String() string {
	if !d.present {
		return ""
	}
	return d.t.Format(dateLayout)
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return d.t
}
