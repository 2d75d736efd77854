package order

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// CommentMaxLength bounds a comment message in characters.
const CommentMaxLength = 2000

// Comment is an append-only message left on an order by any party that can
// see it.
type Comment struct {
	id        kernel.ID
	orderID   kernel.ID
	userID    kernel.ID
	message   string
	createdAt time.Time
}

// NewComment trims message and rejects it when empty or longer than
// CommentMaxLength characters.
func NewComment(orderID, userID kernel.ID, message string) (*Comment, error) {
	msg := strings.TrimSpace(message)

	var msgErr error
	switch n := utf8.RuneCountInString(msg); {
	case n == 0:
		msgErr = errs.NewValueIsRequiredError("message")
	case n > CommentMaxLength:
		msgErr = errs.NewValueIsOutOfRangeError("message length", n, 1, CommentMaxLength)
	}

	if err := errors.Join(orderID.Validate(), userID.Validate(), msgErr); err != nil {
		return nil, err
	}

	return &Comment{orderID: orderID, userID: userID, message: msg}, nil
}

// RestoreComment rebuilds a persisted comment.
func RestoreComment(id, orderID, userID kernel.ID, message string, createdAt time.Time) *Comment {
	return &Comment{id: id, orderID: orderID, userID: userID, message: message, createdAt: createdAt}
}

// SetPersisted records the identity and timestamp assigned on insert.
func (c *Comment) SetPersisted(id kernel.ID, createdAt time.Time) {
	c.id = id
	c.createdAt = createdAt
}

func (c *Comment) ID() kernel.ID        { return c.id }
func (c *Comment) OrderID() kernel.ID   { return c.orderID }
func (c *Comment) UserID() kernel.ID    { return c.userID }
func (c *Comment) Message() string      { return c.message }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
