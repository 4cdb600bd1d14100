package validation

import (
	"errors"
	"strings"
)

// ValidateName validates a contact sender name
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return errors.New("name is required")
	}

	if len(trimmed) > 100 {
		return errors.New("name is too long (max 100 characters)")
	}

	return nil
}

// ValidateMessage validates a contact message body
func ValidateMessage(message string) error {
	trimmed := strings.TrimSpace(message)

	if trimmed == "" {
		return errors.New("message is required")
	}

	if len(trimmed) > 5000 {
		return errors.New("message is too long (max 5000 characters)")
	}

	return nil
}
