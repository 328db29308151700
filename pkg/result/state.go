package result

// State tracks which side a Result holds and whether it was already moved out.
type State uint8

const (
	// StateEmpty is the zero value of a Result that no constructor produced.
	StateEmpty State = iota
	StateSuccess
	StateFailure
	StateConsumedSuccess
	StateConsumedFailure
)

func (s State) String() string {
	switch s {
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	case StateConsumedSuccess:
		return "consumed success"
	case StateConsumedFailure:
		return "consumed failure"
	default:
		return "empty"
	}
}

// IsConsumed reports whether the value was moved out.
func (s State) IsConsumed() bool {
	return s == StateConsumedSuccess || s == StateConsumedFailure
}

// Live reports whether the state still owns a value.
func (s State) Live() bool {
	return s == StateSuccess || s == StateFailure
}

func (s State) article() string {
	switch s {
	case StateSuccess:
		return "a successful"
	case StateFailure:
		return "a failed"
	case StateConsumedSuccess, StateConsumedFailure:
		return "a consumed"
	default:
		return "an empty"
	}
}
