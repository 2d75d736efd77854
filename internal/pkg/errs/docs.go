// Package errs provides the typed failures shared by every layer of the
// marketplace service.
//
// The package includes:
//   - ObjectNotFoundError: a referenced order, vendor, service or user is absent
//   - ForbiddenError: the caller is authenticated but not authorized
//   - InvalidStateError: a precondition on the current state does not hold
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - InfrastructureError: the store or another dependency failed; safe to retry
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// KindOf maps any wrapped error onto a Kind, which transports translate into
// response codes without inspecting messages.
package errs
