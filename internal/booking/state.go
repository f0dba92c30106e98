package booking

import "time"

// SearchState is a named filter over a booking list.
type SearchState string

const (
	StateAll      SearchState = "ALL"
	StateCurrent  SearchState = "CURRENT"
	StatePast     SearchState = "PAST"
	StateFuture   SearchState = "FUTURE"
	StateWaiting  SearchState = "WAITING"
	StateRejected SearchState = "REJECTED"
)

var searchStates = map[string]SearchState{
	string(StateAll):      StateAll,
	string(StateCurrent):  StateCurrent,
	string(StatePast):     StatePast,
	string(StateFuture):   StateFuture,
	string(StateWaiting):  StateWaiting,
	string(StateRejected): StateRejected,
}

// ParseSearchState is case-sensitive: "current" is unknown.
func ParseSearchState(raw string) (SearchState, error) {
	s, ok := searchStates[raw]
	if !ok {
		return "", ErrUnknownState.WithDetailf("Unknown state: %s", raw)
	}
	return s, nil
}

// Matches reports whether b satisfies the state at instant now.
func (s SearchState) Matches(b Booking, now time.Time) bool {
	switch s {
	case StateAll:
		return true
	case StateCurrent:
		return b.Start.Before(now) && b.End.After(now)
	case StatePast:
		return b.End.Before(now)
	case StateFuture:
		return b.Start.After(now)
	case StateWaiting:
		return b.Status == StatusWaiting
	case StateRejected:
		return b.Status == StatusRejected
	default:
		return false
	}
}
