package handlers

import (
	"errors"
	"net/http"

	"slotbook/services/schedule"
)

// statusForError maps core error types to HTTP statuses. Input problems
// are 4xx the client can fix; a lost booking race is 409 ("this time was
// just taken, choose another"); storage failures are 502 so the caller
// knows something downstream is down.
func statusForError(err error) int {
	var (
		formatErr   *schedule.FormatError
		rangeErr    *schedule.InvalidRangeError
		overlapErr  *schedule.OverlapError
		bookedErr   *schedule.SlotAlreadyBookedError
		validateErr *schedule.ValidationError
		storageErr  *schedule.StorageError
	)
	switch {
	case errors.As(err, &formatErr), errors.As(err, &rangeErr),
		errors.As(err, &overlapErr), errors.As(err, &validateErr):
		return http.StatusBadRequest
	case errors.As(err, &bookedErr):
		return http.StatusConflict
	case errors.As(err, &storageErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
