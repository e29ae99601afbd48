package models

// ValidationError reports a value that violates the inventory constraints.
// Every recoverable core error is of this kind: the failed operation leaves
// the store untouched and the caller decides how to surface the message.
type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func (e *ValidationError) Error() string {
	return e.Description
}
