package actor

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role is the caller's role in the marketplace.
type Role int

const (
	// UnknownRole is the zero value and is never valid.
	UnknownRole Role = iota
	// Client places orders and sees only its own.
	Client
	// Vendor fulfils orders assigned to its linked vendor account.
	Vendor
	// Admin manages the catalog and every order.
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "UNKNOWN",
		Client:      "CLIENT",
		Vendor:      "VENDOR",
		Admin:       "ADMIN",
	}
}

// ParseRole parses the wire representation ("CLIENT", "VENDOR", "ADMIN").
func ParseRole(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != UnknownRole && str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate rejects UnknownRole and values outside the enum.
func (r Role) Validate() error {
	switch r {
	case Client, Vendor, Admin:
		return nil
	case UnknownRole:
	}
	return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
}
