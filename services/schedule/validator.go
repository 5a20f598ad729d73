package schedule

import (
	"regexp"
	"strings"

	"slotbook/models"
)

// emailPattern mirrors the registration form check: one @, no whitespace,
// at least one dot in the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateNewSlot checks a candidate range against the full collection it
// would join (same host, same date). Pure: on success the candidate is
// returned unchanged and the caller decides insertion.
func ValidateNewSlot(candidate Range, existing []models.TimeSlot) (Range, error) {
	if !candidate.ValidOrder() {
		return Range{}, &InvalidRangeError{Range: candidate}
	}
	for _, s := range existing {
		if Overlaps(candidate, Range{Start: s.Start, End: s.End}) {
			return Range{}, &OverlapError{
				Candidate: candidate,
				Existing:  Range{Start: s.Start, End: s.End},
			}
		}
	}
	return candidate, nil
}

// ValidateClientInfo checks the booking form fields: name must be
// non-blank, email must match the standard pattern.
func ValidateClientInfo(info models.ClientInfo) error {
	if strings.TrimSpace(info.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if !emailPattern.MatchString(info.Email) {
		return &ValidationError{Field: "email", Message: "malformed email address"}
	}
	return nil
}
