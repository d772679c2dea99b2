package models

type ErrorKind string

const (
	KindInvalidDateFormat ErrorKind = "invalid_date_format"
	KindInvalidDate       ErrorKind = "invalid_date"
	KindInvalidDateRange  ErrorKind = "invalid_date_range"
	KindUnexpected        ErrorKind = "unexpected"
)

// SearchError is the structured error propagated by the generators. Only the
// boundary turns it into a flat message.
type SearchError struct {
	Kind    ErrorKind
	Field   string
	Message string
	Err     error
}

func (e *SearchError) Error() string {
	return e.Message
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

func NewSearchError(kind ErrorKind, field, message string, err error) *SearchError {
	return &SearchError{
		Kind:    kind,
		Field:   field,
		Message: message,
		Err:     err,
	}
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrUnknownTool  ValidationError = "unknown tool"
	ErrRateLimited  ValidationError = "rate limit exceeded"
	ErrInvalidInput ValidationError = "invalid tool arguments"
)
