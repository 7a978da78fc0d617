package app

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 30
	minPasswordLen = 8
	maxContentLen  = 5000
)

// ValidationError carries a user-facing message for rejected input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func validateUsername(username string) error {
	n := utf8.RuneCountInString(username)
	if n < minUsernameLen || n > maxUsernameLen {
		return &ValidationError{"username", fmt.Sprintf("must be %d-%d characters", minUsernameLen, maxUsernameLen)}
	}
	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return &ValidationError{"username", "may only contain letters, digits, and underscores"}
		}
	}
	return nil
}

func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLen {
		return &ValidationError{"password", fmt.Sprintf("must be at least %d characters", minPasswordLen)}
	}
	return nil
}

func validateContent(content string) error {
	if content == "" {
		return &ValidationError{"content", "must not be empty"}
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return &ValidationError{"content", fmt.Sprintf("must be at most %d characters", maxContentLen)}
	}
	return nil
}
