package dailysong

import (
	"time"

	"github.com/campuslife/CampusLife_Go/internal/domain"
)

// Clock supplies "today" for the daily pick engine. All callers share one
// canonical deployment timezone; clients never compute their own date, so
// every user sees the same winner slot roll over at the same moment.
type Clock interface {
	Now() time.Time
	Today() string
}

type locationClock struct {
	loc *time.Location
}

// NewClock creates a Clock pinned to the given timezone
func NewClock(loc *time.Location) Clock {
	return &locationClock{loc: loc}
}

func (c *locationClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *locationClock) Today() string {
	return c.Now().Format(domain.DateFormat)
}
