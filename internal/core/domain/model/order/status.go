package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	NEW ──> ASSIGNED ──> IN_PROGRESS ──> READY ──> DELIVERED
//	 │         ▲  │           │            │
//	 │         └──┘ (reassign)│            │
//	 └─────────┴──────────────┴────────────┴──> CANCELLED
//
// Admins may move a live order to any non-initial state; the arrows above
// show the usual vendor path.
type Status int

const (
	// Unknown catches uninitialized values and is never valid.
	Unknown Status = iota
	New
	Assigned
	InProgress
	Ready
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		New:        "NEW",
		Assigned:   "ASSIGNED",
		InProgress: "IN_PROGRESS",
		Ready:      "READY",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
	}
}

// vendorProgressionRank orders the states a vendor moves through. States
// missing from the map have no rank.
func vendorProgressionRank() map[Status]int {
	//nolint:exhaustive // NEW and CANCELLED are outside the vendor path
	return map[Status]int{
		Assigned:   1,
		InProgress: 2,
		Ready:      3,
		Delivered:  4,
	}
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{New, Assigned, InProgress, Ready, Delivered, Cancelled}
}

// ParseStatus parses the wire representation, e.g. "IN_PROGRESS".
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and values outside the enum.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition may leave s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsAfter reports whether s ranks strictly after other on the vendor path.
// Statuses outside the path never rank after anything.
func (s Status) IsAfter(other Status) bool {
	ranks := vendorProgressionRank()
	sr, ok := ranks[s]
	if !ok {
		return false
	}
	return sr > ranks[other]
}

func (s Status) requireLive(operation string) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.IsTerminal() {
		return errs.NewInvalidStateError(operation, s.String())
	}
	return nil
}

// Assign moves any live order to ASSIGNED. Reassignment is allowed.
func (s Status) Assign() (Status, error) {
	if err := s.requireLive("assign vendor"); err != nil {
		return Unknown, err
	}
	return Assigned, nil
}

// Accept moves ASSIGNED to IN_PROGRESS.
func (s Status) Accept() (Status, error) {
	if s != Assigned {
		return Unknown, errs.NewInvalidStateErrorWithCause("accept", s.String(),
			fmt.Errorf("only %s orders can be accepted", Assigned))
	}
	return InProgress, nil
}

// ChangeTo moves a live order to target. NEW can never be targeted and
// CANCELLED is reachable only through Cancel.
func (s Status) ChangeTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	switch target {
	case New:
		return Unknown, errs.NewInvalidStateErrorWithCause("change status", s.String(),
			fmt.Errorf("%s is only an initial state", New))
	case Cancelled:
		return Unknown, errs.NewInvalidStateErrorWithCause("change status", s.String(),
			fmt.Errorf("use cancel to move an order to %s", Cancelled))
	case Unknown, Assigned, InProgress, Ready, Delivered:
	}
	if err := s.requireLive("change status"); err != nil {
		return Unknown, err
	}
	return target, nil
}

// Cancel moves any live order to CANCELLED.
func (s Status) Cancel() (Status, error) {
	if s == Delivered {
		return Unknown, errs.NewInvalidStateErrorWithCause("cancel", s.String(),
			fmt.Errorf("delivered order cannot be cancelled"))
	}
	if err := s.requireLive("cancel"); err != nil {
		return Unknown, err
	}
	return Cancelled, nil
}
