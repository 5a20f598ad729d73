package schedule

import (
	"slotbook/models"
)

// AvailabilitySet is a host's declared availability windows for one
// calendar date, in insertion order. Order is for display only and
// carries no ranking semantics. An empty set means the whole day is
// locked: availability is default-deny.
type AvailabilitySet struct {
	HostID string
	Date   string
	Slots  []models.TimeSlot
}

// NewAvailabilitySet wraps a freshly loaded slot collection.
func NewAvailabilitySet(hostID, date string, slots []models.TimeSlot) *AvailabilitySet {
	return &AvailabilitySet{HostID: hostID, Date: date, Slots: slots}
}

// Add validates the candidate range against the current slots and, on
// success, appends a new slot and returns the updated sequence.
func (a *AvailabilitySet) Add(candidate models.TimeSlot) ([]models.TimeSlot, error) {
	r := Range{Start: candidate.Start, End: candidate.End}
	if _, err := ValidateNewSlot(r, a.Slots); err != nil {
		return nil, err
	}
	candidate.HostID = a.HostID
	candidate.Date = a.Date
	a.Slots = append(a.Slots, candidate)
	return a.Slots, nil
}

// Remove deletes a slot by identity. Removing an absent id is a no-op,
// not an error, so deletion is idempotent.
func (a *AvailabilitySet) Remove(slotID string) []models.TimeSlot {
	kept := a.Slots[:0]
	for _, s := range a.Slots {
		if s.ID != slotID {
			kept = append(kept, s)
		}
	}
	a.Slots = kept
	return a.Slots
}

// Contains reports whether the set holds a slot with exactly this range.
// Booking requests must name a declared slot, never an arbitrary range.
func (a *AvailabilitySet) Contains(r Range) bool {
	for _, s := range a.Slots {
		if s.Start == r.Start && s.End == r.End {
			return true
		}
	}
	return false
}

// OpenWindows returns the slots not consumed by any appointment in the
// ledger. A slot is wholly booked-or-open: a booking exactly matching its
// range removes it in full, and clients cannot book sub-ranges, so there
// is no subdivision.
func (a *AvailabilitySet) OpenWindows(ledger *BookingLedger) []models.TimeSlot {
	open := make([]models.TimeSlot, 0, len(a.Slots))
	for _, s := range a.Slots {
		if !ledger.IsBooked(Range{Start: s.Start, End: s.End}) {
			open = append(open, s)
		}
	}
	return open
}
