package schema

// FieldError reports a missing or invalid field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Reason == "" {
		return "invalid " + e.Field + ": required"
	}
	return "invalid " + e.Field + ": " + e.Reason
}
