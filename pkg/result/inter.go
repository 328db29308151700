package result

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the non-consuming query surface shared by every Result,
// whatever its type parameters.
type Outcome interface {
	// IsSuccess returns true if the result holds or held a success value
	IsSuccess() bool
	// IsFailure returns true if the result holds or held a failure value
	IsFailure() bool
	// IsConsumed returns true once the value was moved out
	IsConsumed() bool
	State() State
}

// Traced is implemented by results that carry an id and creation time (UTC).
type Traced interface {
	Outcome
	Id() uuid.UUID
	CreatedAt() time.Time
}
