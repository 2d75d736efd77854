package commands

import (
	"context"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
)

// annotator appends child records to an order. Anyone who can see the
// order may annotate it; the record is validated only after that check. The
// order status is never touched.
type annotator struct {
	uowFactory UoWFactory
	assembler  OrderAssembler
	policy     services.TransitionPolicy
}

func (a annotator) run(
	ctx context.Context,
	cmd orderCommand,
	write func(ctx context.Context, uow UoW) error,
) (queries.OrderDetails, error) {
	uow := a.uowFactory.Create()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return queries.OrderDetails{}, err
	}
	if d := a.policy.CanAnnotate(cmd.Actor(), o.Ownership()); !d.Allowed() {
		return queries.OrderDetails{}, d.Err()
	}

	if err := uow.Begin(ctx); err != nil {
		return queries.OrderDetails{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := write(ctx, uow); err != nil {
		return queries.OrderDetails{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return queries.OrderDetails{}, err
	}
	return a.assembler.Assemble(ctx, o.ID())
}

// AddCommentCommandHandler appends a trimmed, non-empty comment.
type AddCommentCommandHandler struct {
	annotator annotator
}

func NewAddCommentCommandHandler(
	uowFactory UoWFactory,
	assembler OrderAssembler,
	policy services.TransitionPolicy,
) AddCommentCommandHandler {
	return AddCommentCommandHandler{annotator: annotator{uowFactory: uowFactory, assembler: assembler, policy: policy}}
}

func (h AddCommentCommandHandler) Handle(ctx context.Context, cmd AddCommentCommand) (queries.OrderDetails, error) {
	if err := cmd.Validate(); err != nil {
		return queries.OrderDetails{}, err
	}
	return h.annotator.run(ctx, cmd.orderCommand, func(ctx context.Context, uow UoW) error {
		comment, err := order.NewComment(cmd.OrderID(), cmd.Actor().ID(), cmd.Message())
		if err != nil {
			return err
		}
		return uow.CommentRepository().Add(ctx, comment)
	})
}

// AddFileCommandHandler appends a file reference. A missing file type is
// stored as application/octet-stream.
type AddFileCommandHandler struct {
	annotator annotator
}

func NewAddFileCommandHandler(
	uowFactory UoWFactory,
	assembler OrderAssembler,
	policy services.TransitionPolicy,
) AddFileCommandHandler {
	return AddFileCommandHandler{annotator: annotator{uowFactory: uowFactory, assembler: assembler, policy: policy}}
}

func (h AddFileCommandHandler) Handle(ctx context.Context, cmd AddFileCommand) (queries.OrderDetails, error) {
	if err := cmd.Validate(); err != nil {
		return queries.OrderDetails{}, err
	}
	return h.annotator.run(ctx, cmd.orderCommand, func(ctx context.Context, uow UoW) error {
		file, err := order.NewFile(cmd.OrderID(), cmd.Actor().ID(), cmd.FileURL(), cmd.FileName(), cmd.FileType())
		if err != nil {
			return err
		}
		return uow.FileRepository().Add(ctx, file)
	})
}

