package ports

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// CommentRepository appends order comments.
type CommentRepository interface {
	Add(ctx context.Context, comment *order.Comment) error
}

// FileRepository appends order file references.
type FileRepository interface {
	Add(ctx context.Context, file *order.File) error
}
