package host

import (
	"regexp"
	"strings"

	"slotbook/services/schedule"
)

// Nicknames form the host's public URL, so only lowercase ASCII letters
// and digits are allowed, 2-20 characters.
var nicknamePattern = regexp.MustCompile(`^[a-z0-9]{2,20}$`)

var disallowedChars = regexp.MustCompile(`[^a-z0-9]`)

// SanitizeNickname normalizes a raw nickname: lowercase, then strip every
// character outside [a-z0-9].
func SanitizeNickname(raw string) string {
	return disallowedChars.ReplaceAllString(strings.ToLower(raw), "")
}

// ValidateNickname checks a normalized nickname against the URL-safe rule.
func ValidateNickname(nickname string) error {
	if !nicknamePattern.MatchString(nickname) {
		return &schedule.ValidationError{
			Field:   "nickname",
			Message: "must be 2-20 lowercase letters or digits",
		}
	}
	return nil
}
