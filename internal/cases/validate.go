package cases

import (
	"errors"
	"strings"
	"unicode/utf8"

	"bank_portal_echo/internal/models"
)

var (
	ErrNameMissing  = errors.New("case name is missing")
	ErrNameTooLong  = errors.New("case name exceeds maximum length")
	ErrNameHasXSS   = errors.New("case name contains a script tag")
	ErrThrottled    = errors.New("too many cases opened, try again later")
	ErrNotAvailable = errors.New("case intake is not configured")
)

// ValidateName checks a case title before anything is written
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameMissing
	}
	if utf8.RuneCountInString(name) > models.MaxCaseTitleLength {
		return ErrNameTooLong
	}
	if strings.Contains(strings.ToLower(name), "<script") {
		return ErrNameHasXSS
	}
	return nil
}

// IsValidation reports whether err is caused by bad input
func IsValidation(err error) bool {
	return errors.Is(err, ErrNameMissing) || errors.Is(err, ErrNameTooLong) || errors.Is(err, ErrNameHasXSS)
}
