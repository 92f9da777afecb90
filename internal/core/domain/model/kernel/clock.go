package kernel

import "time"

// Clock supplies the reference date of one evaluation pass. Rules take the
// date as an argument, so a whole board or refresh run sees one "today".
type Clock interface {
	Today() Date
}

// SystemClock reads the wall clock in the business time zone.
type SystemClock struct {
	loc *time.Location
}

func NewSystemClock(loc *time.Location) SystemClock {
	if loc == nil {
		loc = time.UTC
	}
	return SystemClock{loc: loc}
}

func (c SystemClock) Today() Date {
	return DateOf(time.Now().In(c.loc))
}

// FixedClock always returns the same date.
type FixedClock Date

func (c FixedClock) Today() Date {
	return Date(c)
}
