package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// EmailPattern matches a plain address shape, case-insensitive on input
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// UUIDPattern matches the UUID v4 wire shape used for billId, courseId and feeId
	UUIDPattern = `^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`

	// PasswordMinLength is the minimum accepted password length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	UUID  *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	UUID:  regexp.MustCompile(UUIDPattern),
}

// IsValidEmail reports whether the value looks like an email address
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(strings.ToLower(strings.TrimSpace(email)))
}

// IsValidUUID reports whether the value matches the UUID v4 shape.
// Natural identifiers are checked with this before any store access.
func IsValidUUID(id string) bool {
	return CompiledPatterns.UUID.MatchString(strings.ToLower(id))
}

// CommunalCategories are the accepted values for a student's communal category
var CommunalCategories = []string{"GEN", "BC", "BCM", "MBC", "DNC", "SC", "ST"}

// IsValidCommunalCategory reports whether the value is an accepted communal category
func IsValidCommunalCategory(category string) bool {
	for _, c := range CommunalCategories {
		if category == c {
			return true
		}
	}
	return false
}
