package validators

import "regexp"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmail is a shape check only. The auth service decides whether the account exists.
func IsEmail(email string) bool {
	return emailPattern.MatchString(email)
}
