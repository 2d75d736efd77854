package catalog

import (
	"strings"
	"unicode/utf8"

	"marketplace/internal/pkg/errs"
)

// requiredText trims s and checks its length in characters.
func requiredText(name, s string, minLen, maxLen int) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errs.NewValueIsRequiredError(name)
	}
	if n := utf8.RuneCountInString(s); n < minLen || n > maxLen {
		return "", errs.NewValueIsOutOfRangeError(name+" length", n, minLen, maxLen)
	}
	return s, nil
}

// optionalText trims s; an empty result means absent.
func optionalText(name, s string, maxLen int) (*string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if n := utf8.RuneCountInString(s); n > maxLen {
		return nil, errs.NewValueIsOutOfRangeError(name+" length", n, 1, maxLen)
	}
	return &s, nil
}
