package validators

import "regexp"

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// IsPhone accepts exactly ten ASCII digits.
func IsPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
