package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const (
	VendorNameMaxLength      = 120
	VendorLegalNameMaxLength = 200
	VendorTaxIDMaxLength     = 32
)

var ErrVendorIsNotConstructed = errors.New("Vendor must be created via NewVendor constructor")

// Vendor is a company that fulfils orders. Its users act with the VENDOR role
// and are linked to it by vendor id.
type Vendor struct {
	id        kernel.ID
	name      string
	legalName string
	// taxID is the business or individual identification number (BIN/IIN)
	taxID     *string
	contacts  json.RawMessage
	isActive  bool
	createdAt time.Time

	isConstructed bool
}

// NewVendor validates the profile. contacts must be a JSON object.
func NewVendor(name, legalName, taxID string, contacts json.RawMessage, isActive bool) (*Vendor, error) {
	v := &Vendor{isActive: isActive, isConstructed: true}

	var nameErr, legalErr, taxErr error
	v.name, nameErr = requiredText("name", name, 1, VendorNameMaxLength)
	v.legalName, legalErr = requiredText("legal name", legalName, 1, VendorLegalNameMaxLength)
	v.taxID, taxErr = optionalText("tax id", taxID, VendorTaxIDMaxLength)

	if err := errors.Join(nameErr, legalErr, taxErr, v.setContacts(contacts)); err != nil {
		return nil, err
	}
	return v, nil
}

// RestoreVendor rebuilds a persisted vendor.
func RestoreVendor(
	id kernel.ID,
	name, legalName string,
	taxID *string,
	contacts json.RawMessage,
	isActive bool,
	createdAt time.Time,
) (*Vendor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Vendor{
		id:            id,
		name:          name,
		legalName:     legalName,
		taxID:         taxID,
		contacts:      contacts,
		isActive:      isActive,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (v *Vendor) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVendorIsNotConstructed
	}
	return nil
}

// SetPersisted records the identity and timestamp assigned on insert.
func (v *Vendor) SetPersisted(id kernel.ID, createdAt time.Time) {
	v.id = id
	v.createdAt = createdAt
}

func (v *Vendor) ID() kernel.ID             { return v.id }
func (v *Vendor) Name() string              { return v.name }
func (v *Vendor) LegalName() string         { return v.legalName }
func (v *Vendor) TaxID() *string            { return v.taxID }
func (v *Vendor) Contacts() json.RawMessage { return v.contacts }
func (v *Vendor) IsActive() bool            { return v.isActive }
func (v *Vendor) CreatedAt() time.Time      { return v.createdAt }

func (v *Vendor) SetActive(active bool) {
	v.isActive = active
}

// RequireActive fails with InvalidState when orders cannot be assigned to v.
func (v *Vendor) RequireActive() error {
	if !v.isActive {
		return errs.NewInvalidStateErrorWithCause("assign vendor", "inactive",
			fmt.Errorf("vendor %s is not active", v.id))
	}
	return nil
}

func (v *Vendor) setContacts(raw json.RawMessage) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return errs.NewValueIsRequiredError("contacts")
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return errs.NewValueIsInvalidErrorWithCause("contacts", errors.New("must be a JSON object"))
	}
	v.contacts = raw
	return nil
}
