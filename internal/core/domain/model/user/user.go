package user

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

const (
	NameMaxLength  = 200
	EmailMaxLength = 320
	PhoneMaxLength = 32
)

var (
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	emailValidator = validator.New()
)

// User is a marketplace account.
type User struct {
	id        kernel.ID
	name      string
	phone     *string
	email     string
	role      actor.Role
	vendorID  *kernel.ID
	createdAt time.Time

	isConstructed bool
}

// NewUser validates a new account. Name and phone are trimmed, email is
// trimmed and lower-cased. A VENDOR account must be linked to a vendor;
// CLIENT and ADMIN accounts must not be.
func NewUser(name, email, phone string, role actor.Role, vendorID *kernel.ID) (*User, error) {
	u := &User{role: role, isConstructed: true}

	var nameErr, emailErr, phoneErr error
	u.name, nameErr = normalizeName(name)
	u.email, emailErr = normalizeEmail(email)
	u.phone, phoneErr = normalizePhone(phone)

	if err := errors.Join(nameErr, emailErr, phoneErr, role.Validate(), CheckVendorLink(role, vendorID)); err != nil {
		return nil, err
	}
	if vendorID != nil {
		v := *vendorID
		u.vendorID = &v
	}
	return u, nil
}

// RestoreUser rebuilds a persisted account.
func RestoreUser(
	id kernel.ID,
	name string,
	phone *string,
	email string,
	role actor.Role,
	vendorID *kernel.ID,
	createdAt time.Time,
) (*User, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return nil, err
	}
	return &User{
		id:            id,
		name:          name,
		phone:         phone,
		email:         email,
		role:          role,
		vendorID:      vendorID,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// CheckVendorLink enforces that exactly the VENDOR role carries a vendor id.
func CheckVendorLink(role actor.Role, vendorID *kernel.ID) error {
	switch {
	case role == actor.Vendor && vendorID == nil:
		return errs.NewValueIsRequiredError("vendor id")
	case role != actor.Vendor && vendorID != nil:
		return RequireNoVendorLink(role)
	}
	return nil
}

// RequireNoVendorLink fails for roles that can never be linked to a vendor.
func RequireNoVendorLink(role actor.Role) error {
	if role == actor.Vendor {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("vendor id", fmt.Errorf("%s cannot have a vendor id", role))
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// SetPersisted records the identity and timestamp assigned on insert.
func (u *User) SetPersisted(id kernel.ID, createdAt time.Time) {
	u.id = id
	u.createdAt = createdAt
}

func (u *User) ID() kernel.ID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Phone() *string       { return u.phone }
func (u *User) Email() string        { return u.email }
func (u *User) Role() actor.Role     { return u.role }
func (u *User) VendorID() *kernel.ID { return u.vendorID }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// NormalizeEmail is the form emails are stored and compared in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeEmail(email string) (string, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return "", errs.NewValueIsRequiredError("email")
	}
	if n := utf8.RuneCountInString(email); n > EmailMaxLength {
		return "", errs.NewValueIsOutOfRangeError("email length", n, 3, EmailMaxLength)
	}
	if err := emailValidator.Var(email, "email"); err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	return email, nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > NameMaxLength {
		return "", errs.NewValueIsOutOfRangeError("name length", n, 1, NameMaxLength)
	}
	return name, nil
}

func normalizePhone(phone string) (*string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, nil
	}
	if n := utf8.RuneCountInString(phone); n > PhoneMaxLength {
		return nil, errs.NewValueIsOutOfRangeError("phone length", n, 1, PhoneMaxLength)
	}
	return &phone, nil
}
