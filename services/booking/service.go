package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	slotRepo "slotbook/database/repository/slot"
	"slotbook/models"
	"slotbook/services/schedule"
	"slotbook/utils"
)

const dateLayout = "2006-01-02"

// parseDate validates the calendar-date key. Dates are local wall-clock
// strings; no timezone math happens anywhere in the service.
func parseDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return &schedule.ValidationError{Field: "date", Message: "expected YYYY-MM-DD"}
	}
	return nil
}

func (s *DefaultScheduleService) ListOpenSlots(ctx context.Context, hostID, date string) ([]models.TimeSlot, error) {
	if err := parseDate(date); err != nil {
		return nil, err
	}
	if cached, ok := s.cachedOpenSlots(ctx, hostID, date); ok {
		return cached, nil
	}

	avail, err := s.SlotRepo.GetByHostAndDate(ctx, hostID, date)
	if err != nil {
		return nil, &schedule.StorageError{Op: "getSlots", Err: err}
	}
	appts, err := s.ApptRepo.GetByHostAndDate(ctx, hostID, date)
	if err != nil {
		return nil, &schedule.StorageError{Op: "getAppointments", Err: err}
	}

	set := schedule.NewAvailabilitySet(hostID, date, avail)
	ledger := schedule.NewBookingLedger(hostID, date, appts)
	open := set.OpenWindows(ledger)

	s.storeOpenSlots(ctx, hostID, date, open)
	return open, nil
}

func (s *DefaultScheduleService) ListAvailability(ctx context.Context, hostID, date string) ([]models.TimeSlot, error) {
	if err := parseDate(date); err != nil {
		return nil, err
	}
	slots, err := s.SlotRepo.GetByHostAndDate(ctx, hostID, date)
	if err != nil {
		return nil, &schedule.StorageError{Op: "getSlots", Err: err}
	}
	return slots, nil
}

func (s *DefaultScheduleService) AddAvailability(ctx context.Context, hostID, date string, input models.SlotInput) ([]models.TimeSlot, error) {
	if err := parseDate(date); err != nil {
		return nil, err
	}
	r, err := schedule.ParseRange(input.StartTime, input.EndTime)
	if err != nil {
		return nil, err
	}

	existing, err := s.SlotRepo.GetByHostAndDate(ctx, hostID, date)
	if err != nil {
		return nil, &schedule.StorageError{Op: "getSlots", Err: err}
	}

	set := schedule.NewAvailabilitySet(hostID, date, existing)
	updated, err := set.Add(models.TimeSlot{
		ID:    uuid.New().String(),
		Start: r.Start,
		End:   r.End,
		Color: input.Color,
	})
	if err != nil {
		return nil, err
	}

	if err := s.SlotRepo.ReplaceForDate(ctx, hostID, date, updated); err != nil {
		return nil, &schedule.StorageError{Op: "putSlots", Err: err}
	}
	s.invalidateOpenSlots(ctx, hostID, date)
	return updated, nil
}

func (s *DefaultScheduleService) RemoveAvailability(ctx context.Context, hostID, date, slotID string) ([]models.TimeSlot, error) {
	if err := parseDate(date); err != nil {
		return nil, err
	}
	existing, err := s.SlotRepo.GetByHostAndDate(ctx, hostID, date)
	if err != nil {
		return nil, &schedule.StorageError{Op: "getSlots", Err: err}
	}

	// Removing an absent id is a no-op, so removal is idempotent.
	set := schedule.NewAvailabilitySet(hostID, date, existing)
	updated := set.Remove(slotID)

	if err := s.SlotRepo.ReplaceForDate(ctx, hostID, date, updated); err != nil {
		return nil, &schedule.StorageError{Op: "putSlots", Err: err}
	}
	s.invalidateOpenSlots(ctx, hostID, date)
	return updated, nil
}

func (s *DefaultScheduleService) SaveAvailability(ctx context.Context, hostID, date string, inputs []models.SlotInput) ([]models.TimeSlot, error) {
	slots, err := s.replaceSlots(ctx, s.SlotRepo, hostID, date, inputs, "putSlots")
	if err != nil {
		return nil, err
	}
	s.invalidateOpenSlots(ctx, hostID, date)
	return slots, nil
}

func (s *DefaultScheduleService) ListBusy(ctx context.Context, hostID, date string) ([]models.TimeSlot, error) {
	if err := parseDate(date); err != nil {
		return nil, err
	}
	slots, err := s.BusyRepo.GetByHostAndDate(ctx, hostID, date)
	if err != nil {
		return nil, &schedule.StorageError{Op: "getBusySlots", Err: err}
	}
	return slots, nil
}

func (s *DefaultScheduleService) SaveBusy(ctx context.Context, hostID, date string, inputs []models.SlotInput) ([]models.TimeSlot, error) {
	return s.replaceSlots(ctx, s.BusyRepo, hostID, date, inputs, "putBusySlots")
}

func (s *DefaultScheduleService) ListAppointments(ctx context.Context, hostID, fromDate string) ([]models.Appointment, error) {
	if err := parseDate(fromDate); err != nil {
		return nil, err
	}
	appts, err := s.ApptRepo.GetUpcomingByHost(ctx, hostID, fromDate)
	if err != nil {
		return nil, &schedule.StorageError{Op: "getAppointments", Err: err}
	}
	return appts, nil
}

// replaceSlots validates the whole incoming collection slot by slot (each
// candidate against those accepted before it), then stores it with
// full-replace semantics.
func (s *DefaultScheduleService) replaceSlots(
	ctx context.Context,
	repo slotRepo.SlotRepository,
	hostID, date string,
	inputs []models.SlotInput,
	op string,
) ([]models.TimeSlot, error) {
	if err := parseDate(date); err != nil {
		return nil, err
	}

	accepted := make([]models.TimeSlot, 0, len(inputs))
	for _, in := range inputs {
		r, err := schedule.ParseRange(in.StartTime, in.EndTime)
		if err != nil {
			return nil, err
		}
		if _, err := schedule.ValidateNewSlot(r, accepted); err != nil {
			return nil, err
		}
		accepted = append(accepted, models.TimeSlot{
			ID:     uuid.New().String(),
			HostID: hostID,
			Date:   date,
			Start:  r.Start,
			End:    r.End,
			Color:  in.Color,
		})
	}

	if err := repo.ReplaceForDate(ctx, hostID, date, accepted); err != nil {
		return nil, &schedule.StorageError{Op: op, Err: err}
	}
	utils.GetLogger().Debug("replaced slot collection",
		zap.String("hostID", hostID), zap.String("date", date), zap.Int("count", len(accepted)))
	return accepted, nil
}
