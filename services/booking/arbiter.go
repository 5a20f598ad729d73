package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appointmentRepo "slotbook/database/repository/appointment"
	"slotbook/models"
	"slotbook/services/schedule"
	"slotbook/utils"
)

// SubmitBooking arbitrates a client's booking request. The requested range
// must name one of the host's declared availability slots. The ledger is
// re-read immediately before committing to narrow the window between
// "shown as open" and "booked"; the unique range index on the appointment
// collection closes the rest. No retry is attempted here; the caller
// decides whether to re-prompt with refreshed availability.
func (s *DefaultScheduleService) SubmitBooking(
	ctx context.Context,
	hostID, date string,
	slot models.SlotInput,
	info models.ClientInfo,
) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if err := parseDate(date); err != nil {
		return nil, err
	}
	r, err := schedule.ParseRange(slot.StartTime, slot.EndTime)
	if err != nil {
		return nil, err
	}
	if err := schedule.ValidateClientInfo(info); err != nil {
		return nil, err
	}

	host, err := s.HostRepo.GetByID(ctx, hostID)
	if err != nil {
		return nil, &schedule.StorageError{Op: "findHost", Err: err}
	}

	avail, err := s.SlotRepo.GetByHostAndDate(ctx, hostID, date)
	if err != nil {
		return nil, &schedule.StorageError{Op: "getSlots", Err: err}
	}
	set := schedule.NewAvailabilitySet(hostID, date, avail)
	if !set.Contains(r) {
		return nil, &schedule.ValidationError{
			Field:   "slot",
			Message: "requested range is not one of the host's availability slots",
		}
	}

	// Fresh ledger snapshot, never a cached one.
	appts, err := s.ApptRepo.GetByHostAndDate(ctx, hostID, date)
	if err != nil {
		return nil, &schedule.StorageError{Op: "getAppointments", Err: err}
	}
	ledger := schedule.NewBookingLedger(hostID, date, appts)
	if ledger.IsBooked(r) {
		return nil, &schedule.SlotAlreadyBookedError{Date: date, Range: r}
	}

	appt := &models.Appointment{
		ID:             uuid.New().String(),
		HostID:         hostID,
		HostNickname:   host.Nickname,
		Date:           date,
		Start:          r.Start,
		End:            r.End,
		ClientName:     info.Name,
		ClientEmail:    info.Email,
		AdditionalInfo: info.AdditionalInfo,
		Status:         models.AppointmentStatusConfirmed,
		CreatedAt:      time.Now(),
	}

	if _, err := s.ApptRepo.Create(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrRangeTaken) {
			// Lost the race between the re-check and the insert.
			return nil, &schedule.SlotAlreadyBookedError{Date: date, Range: r}
		}
		return nil, &schedule.StorageError{Op: "createAppointment", Err: err}
	}

	s.invalidateOpenSlots(ctx, hostID, date)
	logger.Info("appointment confirmed",
		zap.String("hostID", hostID),
		zap.String("date", date),
		zap.String("range", r.String()),
		zap.String("appointmentID", appt.ID))
	return appt, nil
}
