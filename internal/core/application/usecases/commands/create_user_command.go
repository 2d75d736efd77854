package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand provisions an account. Profile fields are validated by
// the user model when the command is handled.
type CreateUserCommand struct {
	actor    actor.Actor
	name     string
	email    string
	phone    string
	role     actor.Role
	vendorID *kernel.ID

	guard guard.ConstructorGuard
}

func NewCreateUserCommand(
	a actor.Actor,
	name, email, phone string,
	role actor.Role,
	vendorID *kernel.ID,
) (CreateUserCommand, error) {
	if err := a.Validate(); err != nil {
		return CreateUserCommand{}, err
	}
	return CreateUserCommand{
		actor:    a,
		name:     name,
		email:    email,
		phone:    phone,
		role:     role,
		vendorID: vendorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

func (c CreateUserCommand) Actor() actor.Actor   { return c.actor }
func (c CreateUserCommand) Name() string         { return c.name }
func (c CreateUserCommand) Email() string        { return c.email }
func (c CreateUserCommand) Phone() string        { return c.phone }
func (c CreateUserCommand) Role() actor.Role     { return c.role }
func (c CreateUserCommand) VendorID() *kernel.ID { return c.vendorID }
