package services

// Service errors carry the user-facing message; controllers only map the
// error kind to a status code.

// NotFoundError: the addressed row (or a relationship parent) does not
// exist. Maps to 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ValidationError: a required field is missing or a value (such as a
// datetime) cannot be parsed. Maps to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RefError: a supplied foreign key does not resolve to an existing row.
// Maps to 400.
type RefError struct {
	Message string
}

func (e *RefError) Error() string {
	return e.Message
}

// ConflictError: a delete is blocked because dependent rows still reference
// the entity. Maps to 400.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
