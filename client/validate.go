package client

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors are raised before any network call is made.
var (
	// ErrPasswordMismatch is returned when password and its
	// confirmation differ on sign-up.
	ErrPasswordMismatch = errors.New("passwords don't match")
)

// ValidateEmail checks the minimal shape the API expects. Full address
// validation is server-side; this only rejects obviously empty or
// malformed input before a round-trip.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("email must be a valid address")
	}
	return nil
}

// ValidatePassword rejects empty passwords. Strength rules (length,
// character classes) are enforced by the server.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// ValidatePasswordConfirmation checks the sign-up form's confirm field
// against the password. Mismatch is a local validation failure.
func ValidatePasswordConfirmation(password, confirm string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	return nil
}

// ValidateConfirmationCode rejects empty confirmation codes.
func ValidateConfirmationCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("confirmation code is required")
	}
	return nil
}

// ValidateNoteFields rejects empty title or content for create/update.
func ValidateNoteFields(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}

// ValidateNoteID rejects empty note ids. The id itself is opaque and
// server-assigned, so no shape beyond non-emptiness is imposed.
func ValidateNoteID(id string) error {
	if id == "" {
		return fmt.Errorf("note id is required")
	}
	return nil
}
