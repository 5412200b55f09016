package booking

import (
	"time"

	"gearshare/internal/pkg/errs"
)

var (
	// Zero-length and inverted periods are reported separately; clients
	// depend on the distinction.
	ErrZeroLengthPeriod = errs.New("rental period start coincides with its end")
	ErrInvertedPeriod   = errs.New("rental period start is after its end")
)

// Period is the half-open rental window [start, end). Validated once at
// creation; bookings never change their period afterwards.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if start.Equal(end) {
		return Period{}, ErrZeroLengthPeriod
	}
	if end.Before(start) {
		return Period{}, ErrInvertedPeriod
	}
	return Period{start: start, end: end}, nil
}

// ReconstructPeriod rebuilds a period from storage without validation.
func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}

// Contains reports whether now falls strictly inside the period.
func (p Period) Contains(now time.Time) bool {
	return p.start.Before(now) && p.end.After(now)
}

// FinishedBy reports whether the period ended at or before now.
func (p Period) FinishedBy(now time.Time) bool {
	return !p.end.After(now)
}
