package order

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const (
	FileNameMaxLength = 255
	FileTypeMaxLength = 100

	// DefaultFileType is stored when the uploader does not name a media type.
	DefaultFileType = "application/octet-stream"
)

// File is an append-only reference to a document stored elsewhere. Only the
// URL is kept; the bytes never pass through this service.
type File struct {
	id         kernel.ID
	orderID    kernel.ID
	uploadedBy kernel.ID
	url        string
	name       string
	fileType   string
	createdAt  time.Time
}

// NewFile validates an absolute URL, a file name and an optional media type.
func NewFile(orderID, uploadedBy kernel.ID, fileURL, fileName, fileType string) (*File, error) {
	f := &File{orderID: orderID, uploadedBy: uploadedBy}

	if err := errors.Join(
		orderID.Validate(),
		uploadedBy.Validate(),
		f.setURL(fileURL),
		f.setName(fileName),
		f.setType(fileType),
	); err != nil {
		return nil, err
	}
	return f, nil
}

// RestoreFile rebuilds a persisted file reference.
func RestoreFile(id, orderID, uploadedBy kernel.ID, fileURL, fileName, fileType string, createdAt time.Time) *File {
	return &File{
		id:         id,
		orderID:    orderID,
		uploadedBy: uploadedBy,
		url:        fileURL,
		name:       fileName,
		fileType:   fileType,
		createdAt:  createdAt,
	}
}

// SetPersisted records the identity and timestamp assigned on insert.
func (f *File) SetPersisted(id kernel.ID, createdAt time.Time) {
	f.id = id
	f.createdAt = createdAt
}

func (f *File) ID() kernel.ID         { return f.id }
func (f *File) OrderID() kernel.ID    { return f.orderID }
func (f *File) UploadedBy() kernel.ID { return f.uploadedBy }
func (f *File) URL() string           { return f.url }
func (f *File) Name() string          { return f.name }
func (f *File) Type() string          { return f.fileType }
func (f *File) CreatedAt() time.Time  { return f.createdAt }

func (f *File) setURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return errs.NewValueIsRequiredError("file url")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("file url", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return errs.NewValueIsInvalidErrorWithCause("file url", fmt.Errorf("%q is not an absolute URL", raw))
	}
	f.url = raw
	return nil
}

func (f *File) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("file name")
	}
	if n := utf8.RuneCountInString(name); n > FileNameMaxLength {
		return errs.NewValueIsOutOfRangeError("file name length", n, 1, FileNameMaxLength)
	}
	f.name = name
	return nil
}

func (f *File) setType(fileType string) error {
	fileType = strings.TrimSpace(fileType)
	if fileType == "" {
		f.fileType = DefaultFileType
		return nil
	}
	if n := utf8.RuneCountInString(fileType); n > FileTypeMaxLength {
		return errs.NewValueIsOutOfRangeError("file type length", n, 1, FileTypeMaxLength)
	}
	f.fileType = fileType
	return nil
}
