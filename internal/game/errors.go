package game

import "fmt"

// Kind partitions engine errors into the classes the transport layer maps
// to response statuses.
type Kind string

const (
	// KindNotFound means the referenced session, node, card, or item does
	// not exist.
	KindNotFound Kind = "not_found"
	// KindInvalidPhase means the operation is not legal in the session's
	// current phase.
	KindInvalidPhase Kind = "invalid_phase"
	// KindPreconditionFailed means the phase is right but a resource check
	// failed (energy, gold, slots, targets).
	KindPreconditionFailed Kind = "precondition_failed"
	// KindInvariantViolation means internal state is corrupt. It is never
	// the caller's fault.
	KindInvariantViolation Kind = "invariant_violation"
)

// Error is the typed error the engine and services return. Need/Have are
// populated for resource failures so clients can render a precise message.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Need    int    `json:"need,omitempty"`
	Have    int    `json:"have,omitempty"`
}

func (e *Error) Error() string {
	if e.Need != 0 || e.Have != 0 {
		return fmt.Sprintf("%s (need %d, have %d)", e.Message, e.Need, e.Have)
	}
	return e.Message
}

// NotFound builds a KindNotFound error.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// InvalidPhase builds a KindInvalidPhase error.
func InvalidPhase(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidPhase, Message: fmt.Sprintf(format, args...)}
}

// PreconditionFailed builds a KindPreconditionFailed error.
func PreconditionFailed(format string, args ...interface{}) *Error {
	return &Error{Kind: KindPreconditionFailed, Message: fmt.Sprintf(format, args...)}
}

// Insufficient builds a resource failure carrying the need/have pair.
func Insufficient(resource string, need, have int) *Error {
	return &Error{
		Kind:    KindPreconditionFailed,
		Message: fmt.Sprintf("not enough %s", resource),
		Need:    need,
		Have:    have,
	}
}

// InvariantViolation builds a KindInvariantViolation error.
func InvariantViolation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvariantViolation, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind of err, or KindInvariantViolation when err is
// not a *Error.
func KindOf(err error) Kind {
	if ge, ok := err.(*Error); ok {
		return ge.Kind
	}
	return KindInvariantViolation
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	ge, ok := err.(*Error)
	return ok && ge.Kind == kind
}
