package catalog

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const (
	ServiceTextMinLength        = 2
	ServiceTextMaxLength        = 200
	ServiceDescriptionMaxLength = 4000
)

var ErrServiceIsNotConstructed = errors.New("Service must be created via NewService constructor")

// Service is an orderable catalog entry such as "Cleaning / Apartment".
type Service struct {
	id          kernel.ID
	category    string
	name        string
	description *string
	isActive    bool

	isConstructed bool
}

// NewService trims its text fields. Category and name are required.
func NewService(category, name, description string, isActive bool) (*Service, error) {
	s := &Service{isActive: isActive, isConstructed: true}

	var catErr, nameErr, descErr error
	s.category, catErr = requiredText("category", category, ServiceTextMinLength, ServiceTextMaxLength)
	s.name, nameErr = requiredText("name", name, ServiceTextMinLength, ServiceTextMaxLength)
	s.description, descErr = optionalText("description", description, ServiceDescriptionMaxLength)

	if err := errors.Join(catErr, nameErr, descErr); err != nil {
		return nil, err
	}
	return s, nil
}

// RestoreService rebuilds a persisted service.
func RestoreService(id kernel.ID, category, name string, description *string, isActive bool) (*Service, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Service{
		id:            id,
		category:      category,
		name:          name,
		description:   description,
		isActive:      isActive,
		isConstructed: true,
	}, nil
}

func (s *Service) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrServiceIsNotConstructed
	}
	return nil
}

// SetPersistedID records the identity assigned on insert.
func (s *Service) SetPersistedID(id kernel.ID) {
	s.id = id
}

func (s *Service) ID() kernel.ID        { return s.id }
func (s *Service) Category() string     { return s.category }
func (s *Service) Name() string         { return s.name }
func (s *Service) Description() *string { return s.description }
func (s *Service) IsActive() bool       { return s.isActive }

// SetActive activates or deactivates the service. Existing orders keep
// referencing it either way.
func (s *Service) SetActive(active bool) {
	s.isActive = active
}

// RequireActive fails with InvalidState when the service cannot be ordered.
func (s *Service) RequireActive() error {
	if !s.isActive {
		return errs.NewInvalidStateErrorWithCause("order service", "inactive",
			fmt.Errorf("service %s is not active", s.id))
	}
	return nil
}
