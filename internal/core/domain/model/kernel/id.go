package kernel

import (
	"fmt"
	"strconv"

	"marketplace/internal/pkg/errs"
)

// ErrIDIsNotConstructed is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or ParseID")

// ID is the numeric identity the store assigns to orders, users, vendors,
// services and their child records. The zero value is invalid.
//
// Example usage:
//
//	orderID, err := kernel.NewID(42)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(orderID) // 42
type ID struct {
	value int64
}

// NewID wraps a positive store identifier.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", value))
	}
	return ID{value: value}, nil
}

// MustNewID is NewID for literals known to be valid. It panics otherwise.
func MustNewID(value int64) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// ParseID parses the decimal representation used in paths and headers.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(v)
}

// OptionalID converts a nullable store column into an optional ID.
func OptionalID(value *int64) (*ID, error) {
	if value == nil {
		return nil, nil
	}
	id, err := NewID(*value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// Int64 returns the raw identifier.
func (id ID) Int64() int64 {
	return id.value
}

func (id ID) String() string {
	return strconv.FormatInt(id.value, 10)
}

// IsEqual compares two identifiers.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Validate returns ErrIDIsNotConstructed for the zero value.
func (id ID) Validate() error {
	if id.value <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}

// Int64Ptr converts an optional ID back into a nullable column value.
func Int64Ptr(id *ID) *int64 {
	if id == nil {
		return nil
	}
	v := id.value
	return &v
}
