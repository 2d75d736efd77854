// Package pgerr translates gorm failures into the error kinds of the core.
package pgerr

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// Wrap marks err as a retryable store failure. It returns nil for nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewInfrastructureError(op, err)
}

// Lookup is Wrap for single-row reads: a missing row becomes ObjectNotFound
// for entity.
func Lookup(op, entity string, id kernel.ID, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(entity, id.String())
	}
	return Wrap(op, err)
}

// Insert is Wrap for inserts guarded by a unique key: a duplicate becomes
// InvalidState naming the conflicting field.
func Insert(op, field string, value any, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewInvalidStateErrorWithCause(op, field+" taken",
			fmt.Errorf("%s %v is already registered", field, value))
	}
	return Wrap(op, err)
}
