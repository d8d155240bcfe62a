package validators

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}
