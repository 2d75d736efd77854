package order

import (
	"strings"
	"unicode/utf8"

	"marketplace/internal/pkg/errs"
)

// NoteMaxLength bounds transition notes and cancellation reasons.
const NoteMaxLength = 1000

// normalizeNote trims the note; an empty result means no note.
func normalizeNote(note string) (*string, error) {
	trimmed := strings.TrimSpace(note)
	if trimmed == "" {
		return nil, nil
	}
	if n := utf8.RuneCountInString(trimmed); n > NoteMaxLength {
		return nil, errs.NewValueIsOutOfRangeError("note length", n, 0, NoteMaxLength)
	}
	return &trimmed, nil
}
