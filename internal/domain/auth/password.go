package auth

import "strings"

const (
	minPasswordLength = 8
	maxPasswordLength = 30
)

// Password wraps either a raw secret awaiting hashing or a stored hash;
// contracts name parameters password vs passwordEncrypted to keep the two
// forms apart. ValidatePassword enforces the format invariant; NewPassword
// is for trusted values such as hashes loaded from storage.
type Password struct {
	value string
}

// NewPassword wraps an already-trusted value.
func NewPassword(password string) Password {
	return Password{value: password}
}

// Value returns the wrapped string.
func (p Password) Value() string { return p.value }

// ValidatePassword trims raw and enforces: no embedded whitespace, not
// blank, length within [8, 30]. Checks run in the order has-space,
// too-long, blank, too-short so each failure carries a single motive.
func ValidatePassword(raw string) Result[Password] {
	password := strings.TrimSpace(raw)

	if len(strings.Fields(password)) > 1 {
		return Fail[Password](NewInvalidPasswordError(PasswordMotiveHasSpace))
	}
	if len(password) > maxPasswordLength {
		return Fail[Password](NewInvalidPasswordError(PasswordMotiveMoreThan30Chars))
	}
	if password == "" {
		return Fail[Password](NewInvalidPasswordError(PasswordMotiveIsBlank))
	}
	if len(password) < minPasswordLength {
		return Fail[Password](NewInvalidPasswordError(PasswordMotiveLessThan8Chars))
	}
	return Ok(Password{value: password})
}
