package apperrors

import "net/http"

// Domain error factories and predefined values shared by the services.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound or a
// repo sentinel) into a 404.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict reports a uniqueness clash (409).
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrUnprocessable reports input that is well-formed but semantically
// rejected before any mutation (422).
func ErrUnprocessable(domain, message string) *AppError {
	return New(CodeUnprocessable, domain, message, http.StatusUnprocessableEntity)
}

var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Wrong password", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusUnauthorized)

	// ErrUserNotVerified is distinct from a wrong password: the account
	// exists but the confirmation link was never visited.
	ErrUserNotVerified = New(CodeNotVerified, "auth",
		"You cannot log in because you have not completed authentication. Please check your email.",
		http.StatusForbidden)

	ErrUserNotFound       = New(CodeNotFound, "user", "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeAlreadyExists, "user", "Email already exists", http.StatusConflict)

	ErrPasswordMismatch = ErrUnprocessable("auth", "New password does not match")

	ErrCardNotFound  = New(CodeNotFound, "card", "Card not found", http.StatusNotFound)
	ErrNotCardOwner  = New(CodeForbidden, "card", "You do not have permission to access this card", http.StatusForbidden)
	ErrResetNotFound = New(CodeNotFound, "password_reset", "Reset request not found", http.StatusNotFound)
	ErrInvalidCode   = New(CodeNotFound, "password_reset", "Invalid or expired reset code", http.StatusNotFound)
)
