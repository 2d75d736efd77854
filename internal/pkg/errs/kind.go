package errs

import "errors"

// Kind is the coarse classification of an error used by transports to pick a
// response code.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindForbidden
	KindInvalidState
	KindValidation
	KindInfrastructure
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindForbidden:
		return "Forbidden"
	case KindInvalidState:
		return "InvalidState"
	case KindValidation:
		return "ValidationFailure"
	case KindInfrastructure:
		return "Infrastructure"
	case KindUnknown:
		return "Unknown"
	}
	return "Unknown"
}

// KindOf classifies err. Domain kinds take precedence over infrastructure, so an
// ObjectNotFoundError raised by a repository stays NotFound.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrInvalidState):
		return KindInvalidState
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindValidation
	case errors.Is(err, ErrInfrastructure):
		return KindInfrastructure
	}
	return KindUnknown
}

// IsRetryable reports whether the caller may safely retry the failed operation.
func IsRetryable(err error) bool {
	return KindOf(err) == KindInfrastructure
}
