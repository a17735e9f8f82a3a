package auth

// Id is an opaque identifier, typically a UUID. No validation is applied.
type Id struct {
	value string
}

// NewId wraps an identifier string.
func NewId(id string) Id {
	return Id{value: id}
}

// Value returns the wrapped identifier.
func (i Id) Value() string { return i.value }

// IsZero reports whether the identifier is empty.
func (i Id) IsZero() bool { return i.value == "" }
