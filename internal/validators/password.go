package validators

import "strings"

const (
	MinPasswordLength = 6
	PasswordSymbols   = "!@#$%^&*"
)

// IsStrongPassword requires at least six characters drawn from letters,
// digits and PasswordSymbols, with one uppercase letter and one symbol.
func IsStrongPassword(password string) bool {
	if len(password) < MinPasswordLength {
		return false
	}

	var hasUpper, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case strings.ContainsRune(PasswordSymbols, r):
			hasSymbol = true
		default:
			return false
		}
	}

	return hasUpper && hasSymbol
}
