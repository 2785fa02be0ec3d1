package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
// Now returns local time: day-window record queries are calendar-local.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
