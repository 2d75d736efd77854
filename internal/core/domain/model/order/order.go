package order

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned for an Order that was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIDAlreadySet is returned when the store tries to assign an
	// identity to an order that already has one.
	ErrOrderIDAlreadySet = errors.New("order id is already set")
)

// Cancellation records who cancelled an order, when and why.
type Cancellation struct {
	At       time.Time
	ByUserID kernel.ID
	ByRole   actor.Role
	Reason   *string
}

// Order is the aggregate root of the marketplace. It is created by a client
// for one catalog service and then moved through its lifecycle by the
// assigned vendor and the administrator.
//
// Order follows these invariants:
//   - userID and serviceID never change after creation
//   - pricing is fixed at creation and satisfies total == subtotal + commission
//   - DELIVERED and CANCELLED are terminal
//   - every transition queues one StatusChange carrying the new status
//   - cancellation is set only by the CANCELLED transition and never cleared
type Order struct {
	// id is zero until the store assigns it on insert
	id kernel.ID

	userID    kernel.ID
	serviceID kernel.ID
	vendorID  *kernel.ID

	pricing Pricing
	status  Status

	// params is an opaque JSON object stored verbatim
	params json.RawMessage
	dueAt  *time.Time

	cancellation *Cancellation

	createdAt time.Time
	updatedAt time.Time

	pendingChanges []StatusChange

	isConstructed bool
}

// NewOrder creates an order in NEW status on behalf of the client userID and
// queues the initial history row attributed to that client.
//
// Example:
//
//	pricing, _ := order.NewPricing(1000, 100, 1100)
//	o, err := order.NewOrder(clientID, serviceID, pricing, json.RawMessage(`{"rooms":2}`), nil)
//	if err != nil {
//	    return err
//	}
func NewOrder(
	userID, serviceID kernel.ID,
	pricing Pricing,
	params json.RawMessage,
	dueAt *time.Time,
) (*Order, error) {
	o := &Order{
		status:        New,
		isConstructed: true,
	}

	if err := errors.Join(
		setRequiredID("user id", &o.userID, userID),
		setRequiredID("service id", &o.serviceID, serviceID),
		o.setParams(params),
	); err != nil {
		return nil, err
	}

	o.pricing = pricing
	if dueAt != nil {
		d := dueAt.UTC()
		o.dueAt = &d
	}

	o.pendingChanges = append(o.pendingChanges, StatusChange{Status: New, ChangedBy: userID})
	return o, nil
}

// Snapshot is the persisted state of an order used to rebuild the aggregate.
type Snapshot struct {
	ID           kernel.ID
	UserID       kernel.ID
	ServiceID    kernel.ID
	VendorID     *kernel.ID
	Subtotal     int64
	Commission   int64
	Total        int64
	Status       Status
	Params       json.RawMessage
	DueAt        *time.Time
	Cancellation *Cancellation
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RestoreOrder rebuilds an order loaded from the store. Pricing is checked
// again so that corrupted rows surface instead of flowing through the domain.
func RestoreOrder(s Snapshot) (*Order, error) {
	pricing, err := NewPricing(s.Subtotal, s.Commission, s.Total)
	if err != nil {
		return nil, err
	}
	if err := errors.Join(s.ID.Validate(), s.UserID.Validate(), s.ServiceID.Validate(), s.Status.Validate()); err != nil {
		return nil, err
	}
	if s.Status == Cancelled && s.Cancellation == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("cancellation",
			fmt.Errorf("order %s is %s without cancellation details", s.ID, s.Status))
	}

	o := &Order{
		id:            s.ID,
		userID:        s.UserID,
		serviceID:     s.ServiceID,
		vendorID:      s.VendorID,
		pricing:       pricing,
		status:        s.Status,
		params:        s.Params,
		dueAt:         s.DueAt,
		cancellation:  s.Cancellation,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}
	if len(o.params) == 0 {
		o.params = json.RawMessage("{}")
	}
	return o, nil
}

// Validate ensures the order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// SetPersistedID records the identity assigned by the store. It may be called
// once, by the repository, right after the insert.
func (o *Order) SetPersistedID(id kernel.ID, createdAt time.Time) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if o.id.Validate() == nil {
		return ErrOrderIDAlreadySet
	}
	o.id = id
	o.createdAt = createdAt
	o.updatedAt = createdAt
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) UserID() kernel.ID {
	return o.userID
}

func (o *Order) ServiceID() kernel.ID {
	return o.serviceID
}

// VendorID returns the assigned vendor, or nil before assignment.
func (o *Order) VendorID() *kernel.ID {
	return o.vendorID
}

func (o *Order) Pricing() Pricing {
	return o.pricing
}

func (o *Order) Status() Status {
	return o.status
}

// Params returns the opaque client parameters.
func (o *Order) Params() json.RawMessage {
	return o.params
}

func (o *Order) DueAt() *time.Time {
	return o.dueAt
}

// Cancellation returns nil unless the order is CANCELLED.
func (o *Order) Cancellation() *Cancellation {
	return o.cancellation
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Ownership returns the projection used by the visibility rules.
func (o *Order) Ownership() Ownership {
	return Ownership{UserID: o.userID, VendorID: o.vendorID}
}

// IsOverdue reports whether a live order has passed its deadline at now.
func (o *Order) IsOverdue(now time.Time) bool {
	return IsOverdueAt(o.status, o.dueAt, now)
}

// IsOverdueAt applies the overdue rule to a projection of an order: the
// deadline is set, strictly before now, and the status is not terminal.
func IsOverdueAt(status Status, dueAt *time.Time, now time.Time) bool {
	return dueAt != nil && !status.IsTerminal() && dueAt.Before(now)
}

// PendingChanges returns the status changes not yet written to history.
func (o *Order) PendingChanges() []StatusChange {
	return o.pendingChanges
}

// ClearPendingChanges is called by the repository once the history rows are
// written in the same transaction as the order row.
func (o *Order) ClearPendingChanges() {
	o.pendingChanges = nil
}

// AssignVendor assigns or reassigns the order to vendorID and moves it to
// ASSIGNED.
func (o *Order) AssignVendor(vendorID, changedBy kernel.ID, note string) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	next, err := o.status.Assign()
	if err != nil {
		return err
	}
	if err := o.apply(next, changedBy, note); err != nil {
		return err
	}
	o.vendorID = &vendorID
	return nil
}

// Accept moves an ASSIGNED order to IN_PROGRESS.
func (o *Order) Accept(changedBy kernel.ID, note string) error {
	next, err := o.status.Accept()
	if err != nil {
		return err
	}
	return o.apply(next, changedBy, note)
}

// Reject declines an ASSIGNED order on behalf of its vendor. A rejected order
// is cancelled with the vendor recorded as the cancelling role.
func (o *Order) Reject(changedBy kernel.ID, reason string, at time.Time) error {
	if o.status != Assigned {
		return errs.NewInvalidStateErrorWithCause("reject", o.status.String(),
			fmt.Errorf("only %s orders can be rejected", Assigned))
	}
	return o.Cancel(changedBy, actor.Vendor, reason, at)
}

// ChangeStatus moves the order to target. Who may request which target is
// decided by the transition policy.
func (o *Order) ChangeStatus(target Status, changedBy kernel.ID, note string) error {
	next, err := o.status.ChangeTo(target)
	if err != nil {
		return err
	}
	return o.apply(next, changedBy, note)
}

// Cancel moves a live order to CANCELLED and records the cancellation.
// The reason doubles as the history note.
func (o *Order) Cancel(changedBy kernel.ID, role actor.Role, reason string, at time.Time) error {
	if err := role.Validate(); err != nil {
		return err
	}
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}
	normalized, err := normalizeNote(reason)
	if err != nil {
		return err
	}
	if err := changedBy.Validate(); err != nil {
		return err
	}

	o.status = next
	o.cancellation = &Cancellation{
		At:       at.UTC(),
		ByUserID: changedBy,
		ByRole:   role,
		Reason:   normalized,
	}
	o.pendingChanges = append(o.pendingChanges, StatusChange{Status: next, ChangedBy: changedBy, Note: normalized})
	return nil
}

func (o *Order) apply(next Status, changedBy kernel.ID, note string) error {
	if err := changedBy.Validate(); err != nil {
		return err
	}
	normalized, err := normalizeNote(note)
	if err != nil {
		return err
	}
	o.status = next
	o.pendingChanges = append(o.pendingChanges, StatusChange{Status: next, ChangedBy: changedBy, Note: normalized})
	return nil
}

func (o *Order) setParams(params json.RawMessage) error {
	trimmed := bytes.TrimSpace(params)
	if len(trimmed) == 0 {
		return errs.NewValueIsRequiredError("params")
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil || obj == nil {
		return errs.NewValueIsInvalidErrorWithCause("params", errors.New("must be a JSON object"))
	}
	o.params = json.RawMessage(trimmed)
	return nil
}

func setRequiredID(name string, dst *kernel.ID, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	*dst = id
	return nil
}
