package schedule

import (
	"slotbook/models"
)

// BookingLedger is the confirmed appointments for one host on one date,
// in insertion order. It answers "is this declared slot taken" and is
// recomputed from a fresh read before every commit.
type BookingLedger struct {
	HostID       string
	Date         string
	Appointments []models.Appointment
}

// NewBookingLedger wraps a freshly loaded appointment collection.
func NewBookingLedger(hostID, date string, appts []models.Appointment) *BookingLedger {
	return &BookingLedger{HostID: hostID, Date: date, Appointments: appts}
}

// IsBooked reports whether any appointment has exactly this range.
// Equality, not Overlaps, is deliberate: bookings always copy their range
// verbatim from a declared slot, so the displayed grid stays 1:1 with
// the availability set.
func (l *BookingLedger) IsBooked(r Range) bool {
	for _, a := range l.Appointments {
		if a.Start == r.Start && a.End == r.End {
			return true
		}
	}
	return false
}

// Append adds an appointment unconditionally. The booking guard lives in
// the arbiter, not here.
func (l *BookingLedger) Append(a models.Appointment) {
	l.Appointments = append(l.Appointments, a)
}
