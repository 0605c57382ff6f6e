package transport

import "fmt"

// State is the progress of one logical call through the refresh protocol.
type State int

const (
	Pending State = iota
	Sent
	// Succeeded holds any non-401 response.
	Succeeded
	// Failed holds a network error; it never triggers a refresh.
	Failed
	RefreshInFlight
	// Retried holds the result of the replayed request, whatever it is.
	Retried
	// FailedTerminal ends the session: 401 after a retry, missing refresh credential or failed refresh.
	FailedTerminal
)

var stateNames = map[State]string{
	Pending:         "pending",
	Sent:            "sent",
	Succeeded:       "succeeded",
	Failed:          "failed",
	RefreshInFlight: "refreshInFlight",
	Retried:         "retried",
	FailedTerminal:  "failedTerminal",
}

var transitions = map[State][]State{
	Pending:         {Sent},
	Sent:            {Succeeded, Failed, RefreshInFlight, FailedTerminal},
	RefreshInFlight: {Retried, FailedTerminal},
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// CanTransition reports whether to is reachable from s in one step.
func (s State) CanTransition(to State) bool {
	for _, candidate := range transitions[s] {
		if candidate == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return len(transitions[s]) == 0
}
