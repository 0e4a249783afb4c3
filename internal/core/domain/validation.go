package domain

// ValidationError signals rejected input. The message is safe to return to
// the client verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with the given client-facing message.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
