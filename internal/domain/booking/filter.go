package booking

import (
	"fmt"
	"time"
)

// Filter is a query-time classification of bookings, never persisted.
// Temporal filters are evaluated against a caller-supplied reference
// instant so one listing call is internally consistent.
type Filter string

const (
	FilterAll      Filter = "ALL"
	FilterCurrent  Filter = "CURRENT"
	FilterPast     Filter = "PAST"
	FilterFuture   Filter = "FUTURE"
	FilterWaiting  Filter = "WAITING"
	FilterRejected Filter = "REJECTED"
)

// UnknownFilterError reports a filter token outside the fixed
// enumeration. It is distinct from not-found and validation failures so
// the transport layer can surface the offending token verbatim.
type UnknownFilterError struct {
	Token string
}

func (e *UnknownFilterError) Error() string {
	return fmt.Sprintf("Unknown state: %s", e.Token)
}

func ParseFilter(token string) (Filter, error) {
	f := Filter(token)
	if _, ok := filterPredicates[f]; !ok {
		return "", &UnknownFilterError{Token: token}
	}
	return f, nil
}

type filterPredicate func(start, end time.Time, status Status, now time.Time) bool

// One predicate per filter; listing code dispatches through this table
// instead of branching per variant.
var filterPredicates = map[Filter]filterPredicate{
	FilterAll: func(_, _ time.Time, _ Status, _ time.Time) bool {
		return true
	},
	FilterCurrent: func(start, end time.Time, _ Status, now time.Time) bool {
		return start.Before(now) && end.After(now)
	},
	FilterPast: func(_, end time.Time, _ Status, now time.Time) bool {
		return end.Before(now)
	},
	FilterFuture: func(start, _ time.Time, _ Status, now time.Time) bool {
		return start.After(now)
	},
	FilterWaiting: func(_, _ time.Time, status Status, _ time.Time) bool {
		return status == StatusWaiting
	},
	FilterRejected: func(_, _ time.Time, status Status, _ time.Time) bool {
		return status == StatusRejected
	},
}

// Matches evaluates the filter against one booking's temporal and status
// fields at the given reference instant.
func (f Filter) Matches(start, end time.Time, status Status, now time.Time) bool {
	pred, ok := filterPredicates[f]
	if !ok {
		return false
	}
	return pred(start, end, status, now)
}
