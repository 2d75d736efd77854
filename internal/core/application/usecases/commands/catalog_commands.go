package commands

import (
	"encoding/json"
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateServiceCommandIsNotConstructed = errors.New(
		"CreateServiceCommand must be created via NewCreateServiceCommand constructor",
	)
	ErrCreateVendorCommandIsNotConstructed = errors.New(
		"CreateVendorCommand must be created via NewCreateVendorCommand constructor",
	)
	ErrSetActiveCommandIsNotConstructed = errors.New(
		"SetActiveCommand must be created via NewSetActiveCommand constructor",
	)
)

// CreateServiceCommand adds a service to the catalog.
type CreateServiceCommand struct {
	actor       actor.Actor
	category    string
	name        string
	description string
	isActive    bool

	guard guard.ConstructorGuard
}

// NewCreateServiceCommand defaults isActive to true when it is nil.
func NewCreateServiceCommand(a actor.Actor, category, name, description string, isActive *bool) (CreateServiceCommand, error) {
	if err := a.Validate(); err != nil {
		return CreateServiceCommand{}, err
	}
	active := true
	if isActive != nil {
		active = *isActive
	}
	return CreateServiceCommand{
		actor:       a,
		category:    category,
		name:        name,
		description: description,
		isActive:    active,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateServiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateServiceCommandIsNotConstructed)
}

func (c CreateServiceCommand) Actor() actor.Actor  { return c.actor }
func (c CreateServiceCommand) Category() string    { return c.category }
func (c CreateServiceCommand) Name() string        { return c.name }
func (c CreateServiceCommand) Description() string { return c.description }
func (c CreateServiceCommand) IsActive() bool      { return c.isActive }

// CreateVendorCommand registers a vendor company.
type CreateVendorCommand struct {
	actor     actor.Actor
	name      string
	legalName string
	taxID     string
	contacts  json.RawMessage
	isActive  bool

	guard guard.ConstructorGuard
}

// NewCreateVendorCommand defaults isActive to true when it is nil.
func NewCreateVendorCommand(
	a actor.Actor,
	name, legalName, taxID string,
	contacts json.RawMessage,
	isActive *bool,
) (CreateVendorCommand, error) {
	if err := a.Validate(); err != nil {
		return CreateVendorCommand{}, err
	}
	active := true
	if isActive != nil {
		active = *isActive
	}
	return CreateVendorCommand{
		actor:     a,
		name:      name,
		legalName: legalName,
		taxID:     taxID,
		contacts:  contacts,
		isActive:  active,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateVendorCommand) Validate() error {
	return c.guard.Validate(ErrCreateVendorCommandIsNotConstructed)
}

func (c CreateVendorCommand) Actor() actor.Actor        { return c.actor }
func (c CreateVendorCommand) Name() string              { return c.name }
func (c CreateVendorCommand) LegalName() string         { return c.legalName }
func (c CreateVendorCommand) TaxID() string             { return c.taxID }
func (c CreateVendorCommand) Contacts() json.RawMessage { return c.contacts }
func (c CreateVendorCommand) IsActive() bool            { return c.isActive }

// SetActiveCommand activates or deactivates a service or a vendor.
type SetActiveCommand struct {
	actor  actor.Actor
	id     kernel.ID
	active bool

	guard guard.ConstructorGuard
}

func NewSetActiveCommand(a actor.Actor, id kernel.ID, active bool) (SetActiveCommand, error) {
	if err := errors.Join(a.Validate(), id.Validate()); err != nil {
		return SetActiveCommand{}, err
	}
	return SetActiveCommand{actor: a, id: id, active: active, guard: guard.NewConstructorGuard()}, nil
}

func (c SetActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetActiveCommandIsNotConstructed)
}

func (c SetActiveCommand) Actor() actor.Actor { return c.actor }
func (c SetActiveCommand) ID() kernel.ID      { return c.id }
func (c SetActiveCommand) Active() bool       { return c.active }
