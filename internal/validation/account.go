// Package validation provides input validation utilities
package validation

import (
	"regexp"
	"unicode"

	"creatorhub/internal/models"
)

// ValidatePassword checks if a password meets security requirements
func ValidatePassword(password string) error {
	if len(password) < 12 {
		return models.NewValidationError("Password must be at least 12 characters long")
	}

	if len(password) > 128 {
		return models.NewValidationError("Password must not exceed 128 characters")
	}

	hasUpper := false
	hasLower := false
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsLower(r) {
			hasLower = true
		}
	}
	if !hasUpper {
		return models.NewValidationError("Password must contain at least one uppercase letter")
	}
	if !hasLower {
		return models.NewValidationError("Password must contain at least one lowercase letter")
	}

	if !regexp.MustCompile(`[0-9]`).MatchString(password) {
		return models.NewValidationError("Password must contain at least one digit")
	}

	if !regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?]`).MatchString(password) {
		return models.NewValidationError("Password must contain at least one special character (!@#$%^&*)")
	}

	return nil
}

// ValidateUsername checks if a username meets requirements
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return models.NewValidationError("Username must be at least 3 characters long")
	}

	if len(username) > 30 {
		return models.NewValidationError("Username must not exceed 30 characters")
	}

	if !regexp.MustCompile(`^[a-zA-Z0-9_-]+$`).MatchString(username) {
		return models.NewValidationError("Username can only contain letters, numbers, underscores, and hyphens")
	}

	if username[0] == '_' || username[0] == '-' || username[len(username)-1] == '_' || username[len(username)-1] == '-' {
		return models.NewValidationError("Username cannot start or end with underscore or hyphen")
	}

	return nil
}

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return models.NewValidationError("Invalid email format")
	}

	if len(email) > 254 {
		return models.NewValidationError("Email must not exceed 254 characters")
	}

	return nil
}
