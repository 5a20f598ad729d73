// Package booking wires the pure schedule core to the persistence
// collaborators: it loads fresh slot and ledger collections, runs the
// validators, and arbitrates booking requests.
package booking

import (
	"context"

	"github.com/go-redis/redis/v8"

	appointmentRepo "slotbook/database/repository/appointment"
	hostRepo "slotbook/database/repository/host"
	slotRepo "slotbook/database/repository/slot"
	"slotbook/models"
)

// ScheduleService is the API the HTTP layer calls. Host identity is always
// an explicit parameter, never ambient state.
type ScheduleService interface {
	// ListOpenSlots returns the host's availability for a date, already
	// reduced by booked ranges.
	ListOpenSlots(ctx context.Context, hostID, date string) ([]models.TimeSlot, error)
	// ListAvailability returns the raw declared availability, unbooked or not.
	ListAvailability(ctx context.Context, hostID, date string) ([]models.TimeSlot, error)
	AddAvailability(ctx context.Context, hostID, date string, input models.SlotInput) ([]models.TimeSlot, error)
	RemoveAvailability(ctx context.Context, hostID, date, slotID string) ([]models.TimeSlot, error)
	// SaveAvailability replaces the full availability collection for a date.
	SaveAvailability(ctx context.Context, hostID, date string, inputs []models.SlotInput) ([]models.TimeSlot, error)

	// Busy slots are the host's personal schedule; display-only, never
	// consulted during booking arbitration.
	ListBusy(ctx context.Context, hostID, date string) ([]models.TimeSlot, error)
	SaveBusy(ctx context.Context, hostID, date string, inputs []models.SlotInput) ([]models.TimeSlot, error)

	SubmitBooking(ctx context.Context, hostID, date string, slot models.SlotInput, info models.ClientInfo) (*models.Appointment, error)
	ListAppointments(ctx context.Context, hostID, fromDate string) ([]models.Appointment, error)
}

// DefaultScheduleService implements ScheduleService on MongoDB-backed
// repositories with a Redis read cache for open slots.
type DefaultScheduleService struct {
	SlotRepo slotRepo.SlotRepository // availability windows
	BusyRepo slotRepo.SlotRepository // personal busy blocks
	ApptRepo appointmentRepo.AppointmentRepository
	HostRepo hostRepo.HostRepository
	Cache    *redis.Client
}
