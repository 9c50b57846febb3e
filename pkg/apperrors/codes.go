package apperrors

// ErrorCode identifies a class of application error.
type ErrorCode string

const (
	// System errors
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeMailError     ErrorCode = "MAIL_ERROR"
	CodeStorageError  ErrorCode = "STORAGE_ERROR"

	// Business logic
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeUnprocessable    ErrorCode = "UNPROCESSABLE"

	// Authentication and authorization
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeNotVerified        ErrorCode = "NOT_VERIFIED"
)
