package auth

import (
	"regexp"
	"strings"
)

const (
	maxEmailSize       = 320
	maxEmailLocalSize  = 64
	maxEmailDomainSize = 255
	maxDomainLabelSize = 63
)

var emailPattern = regexp.MustCompile(
	`^[\w!#$%&'*+/=?^` + "`" + `{|}~-](\.?[\w!#$%&'*+/=?^` + "`" + `{|}~-])*@[0-9A-Za-z](-*\.?[0-9A-Za-z])*\.[A-Za-z](-?[0-9A-Za-z])+$`,
)

// Email wraps a lowercased, trimmed address. ValidateEmail is the only
// constructor that enforces the format invariant; NewEmail is reserved for
// values already trusted, e.g. reconstituted from storage.
type Email struct {
	value string
}

// NewEmail wraps an already-trusted address, lowercasing and trimming it.
func NewEmail(email string) Email {
	return Email{value: strings.ToLower(strings.TrimSpace(email))}
}

// Value returns the normalized address.
func (e Email) Value() string { return e.value }

// Domain returns the part after the @.
func (e Email) Domain() string {
	_, domain, _ := strings.Cut(e.value, "@")
	return domain
}

// ValidateEmail checks the normalized form of raw against the format
// invariants and returns the validated value object.
func ValidateEmail(raw string) Result[Email] {
	email := strings.ToLower(strings.TrimSpace(raw))

	if emptyOrTooLarge(email, maxEmailSize) || !emailPattern.MatchString(email) {
		return Fail[Email](NewInvalidEmailError(raw))
	}

	local, domain, _ := strings.Cut(email, "@")
	if emptyOrTooLarge(local, maxEmailLocalSize) || emptyOrTooLarge(domain, maxEmailDomainSize) {
		return Fail[Email](NewInvalidEmailError(raw))
	}

	for _, label := range strings.Split(domain, ".") {
		if len(label) > maxDomainLabelSize {
			return Fail[Email](NewInvalidEmailError(raw))
		}
	}

	return Ok(Email{value: email})
}

func emptyOrTooLarge(s string, maxSize int) bool {
	return s == "" || len(s) > maxSize
}
