package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
)

var (
	ErrAddCommentCommandIsNotConstructed = errors.New(
		"AddCommentCommand must be created via NewAddCommentCommand constructor",
	)
	ErrAddFileCommandIsNotConstructed = errors.New(
		"AddFileCommand must be created via NewAddFileCommand constructor",
	)
)

// AddCommentCommand appends a comment to an order. The message is checked by
// the domain.
type AddCommentCommand struct {
	orderCommand
}

func NewAddCommentCommand(a actor.Actor, orderID kernel.ID, message string) (AddCommentCommand, error) {
	base, err := newOrderCommand(a, orderID, message)
	if err != nil {
		return AddCommentCommand{}, err
	}
	return AddCommentCommand{orderCommand: base}, nil
}

func (c AddCommentCommand) Validate() error {
	return c.guard.Validate(ErrAddCommentCommandIsNotConstructed)
}

func (c AddCommentCommand) Message() string {
	return c.note
}

// AddFileCommand attaches a file reference to an order.
type AddFileCommand struct {
	orderCommand
	fileURL  string
	fileName string
	fileType string
}

func NewAddFileCommand(a actor.Actor, orderID kernel.ID, fileURL, fileName, fileType string) (AddFileCommand, error) {
	base, err := newOrderCommand(a, orderID, "")
	if err != nil {
		return AddFileCommand{}, err
	}
	return AddFileCommand{orderCommand: base, fileURL: fileURL, fileName: fileName, fileType: fileType}, nil
}

func (c AddFileCommand) Validate() error {
	return c.guard.Validate(ErrAddFileCommandIsNotConstructed)
}

func (c AddFileCommand) FileURL() string  { return c.fileURL }
func (c AddFileCommand) FileName() string { return c.fileName }
func (c AddFileCommand) FileType() string { return c.fileType }
