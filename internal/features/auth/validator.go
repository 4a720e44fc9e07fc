package auth

import (
	"strings"

	pkgvalidator "github.com/durvibangera/sorte/internal/pkg/validator"
	apperrors "github.com/durvibangera/sorte/pkg/errors"
)

// ValidateRegister checks the fields binding tags cannot express
func ValidateRegister(req *RegisterRequest) error {
	if pkgvalidator.IsBlank(req.Name) {
		return apperrors.Validation("Name is required")
	}
	if !pkgvalidator.IsValidEmail(req.Email) {
		return apperrors.Validation("A valid email is required")
	}
	if pkgvalidator.IsBlank(req.Password) {
		return apperrors.Validation("Password is required")
	}
	return nil
}

// ValidateLogin checks login credentials are present
func ValidateLogin(req *LoginRequest) error {
	if !pkgvalidator.IsValidEmail(req.Email) {
		return apperrors.Validation("A valid email is required")
	}
	if req.Password == "" {
		return apperrors.Validation("Password is required")
	}
	return nil
}

// normalizeEmail lowercases and trims so lookups match the unique index
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// displayNameFromEmail is used when a Google profile carries no name
func displayNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return "Student"
	}
	return local
}
