package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	appointmentRepo "slotbook/database/repository/appointment"
	"slotbook/models"
	"slotbook/services/schedule"
)

// --- in-memory fakes for the persistence collaborators ---

type fakeSlotRepo struct {
	slots map[string][]models.TimeSlot
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[string][]models.TimeSlot)}
}

func slotKey(hostID, date string) string { return hostID + "|" + date }

func (f *fakeSlotRepo) GetByHostAndDate(_ context.Context, hostID, date string) ([]models.TimeSlot, error) {
	return append([]models.TimeSlot(nil), f.slots[slotKey(hostID, date)]...), nil
}

func (f *fakeSlotRepo) ReplaceForDate(_ context.Context, hostID, date string, slots []models.TimeSlot) error {
	f.slots[slotKey(hostID, date)] = append([]models.TimeSlot(nil), slots...)
	return nil
}

type fakeApptRepo struct {
	appts []models.Appointment
}

func (f *fakeApptRepo) Create(_ context.Context, appt *models.Appointment) (string, error) {
	for _, a := range f.appts {
		if a.HostID == appt.HostID && a.Date == appt.Date && a.Start == appt.Start && a.End == appt.End {
			return "", appointmentRepo.ErrRangeTaken
		}
	}
	f.appts = append(f.appts, *appt)
	return appt.ID, nil
}

func (f *fakeApptRepo) GetByHostAndDate(_ context.Context, hostID, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.HostID == hostID && a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) GetUpcomingByHost(_ context.Context, hostID, fromDate string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.HostID == hostID && a.Date >= fromDate {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Start < out[j].Start
	})
	return out, nil
}

type fakeHostRepo struct {
	hosts map[string]*models.Host
}

func (f *fakeHostRepo) Create(_ context.Context, h *models.Host) error {
	f.hosts[h.UID] = h
	return nil
}

func (f *fakeHostRepo) GetByID(_ context.Context, uid string) (*models.Host, error) {
	h, ok := f.hosts[uid]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return h, nil
}

func (f *fakeHostRepo) GetByEmail(_ context.Context, email string) (*models.Host, error) {
	for _, h := range f.hosts {
		if h.Email == email {
			return h, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (f *fakeHostRepo) GetByNickname(_ context.Context, nickname string) (*models.Host, error) {
	for _, h := range f.hosts {
		if h.Nickname == nickname {
			return h, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (f *fakeHostRepo) UpdateAdditionalInfo(_ context.Context, uid, info string) error {
	h, ok := f.hosts[uid]
	if !ok {
		return fmt.Errorf("not found")
	}
	h.AdditionalInfo = info
	return nil
}

func newTestService() (*DefaultScheduleService, *fakeSlotRepo, *fakeApptRepo) {
	slots := newFakeSlotRepo()
	appts := &fakeApptRepo{}
	hosts := &fakeHostRepo{hosts: map[string]*models.Host{
		"h1": {UID: "h1", Email: "host@example.com", Nickname: "host1"},
	}}
	svc := &DefaultScheduleService{
		SlotRepo: slots,
		BusyRepo: newFakeSlotRepo(),
		ApptRepo: appts,
		HostRepo: hosts,
	}
	return svc, slots, appts
}

const testDate = "2026-03-14"

// --- availability management ---

func TestAddAvailability(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	updated, err := svc.AddAvailability(ctx, "h1", testDate, models.SlotInput{StartTime: "09:00", EndTime: "10:00"})
	if err != nil {
		t.Fatalf("AddAvailability failed: %v", err)
	}
	if len(updated) != 1 || updated[0].Start != 540 || updated[0].End != 600 {
		t.Fatalf("unexpected slots: %+v", updated)
	}

	// Back-to-back slot is accepted.
	updated, err = svc.AddAvailability(ctx, "h1", testDate, models.SlotInput{StartTime: "10:00", EndTime: "11:00"})
	if err != nil {
		t.Fatalf("back-to-back AddAvailability failed: %v", err)
	}
	if len(updated) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(updated))
	}
}

func TestAddAvailabilityOverlapRejected(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.AddAvailability(ctx, "h1", testDate, models.SlotInput{StartTime: "09:00", EndTime: "10:00"}); err != nil {
		t.Fatalf("seed AddAvailability failed: %v", err)
	}

	_, err := svc.AddAvailability(ctx, "h1", testDate, models.SlotInput{StartTime: "09:30", EndTime: "10:30"})
	var overlapErr *schedule.OverlapError
	if !errors.As(err, &overlapErr) {
		t.Fatalf("expected OverlapError, got %v", err)
	}
}

func TestAddAvailabilityBadFormat(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.AddAvailability(context.Background(), "h1", testDate, models.SlotInput{StartTime: "9am", EndTime: "10:00"})
	var formatErr *schedule.FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
}

func TestRemoveAvailabilityIdempotent(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	updated, err := svc.AddAvailability(ctx, "h1", testDate, models.SlotInput{StartTime: "09:00", EndTime: "10:00"})
	if err != nil {
		t.Fatalf("AddAvailability failed: %v", err)
	}
	slotID := updated[0].ID

	first, err := svc.RemoveAvailability(ctx, "h1", testDate, slotID)
	if err != nil {
		t.Fatalf("first RemoveAvailability failed: %v", err)
	}
	second, err := svc.RemoveAvailability(ctx, "h1", testDate, slotID)
	if err != nil {
		t.Fatalf("second RemoveAvailability must not error: %v", err)
	}
	if len(first) != 0 || len(second) != 0 {
		t.Fatalf("expected empty collections, got %d and %d", len(first), len(second))
	}
}

func TestSaveAvailabilityRoundTrip(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	saved, err := svc.SaveAvailability(ctx, "h1", testDate, []models.SlotInput{
		{StartTime: "09:00", EndTime: "10:00"},
		{StartTime: "14:00", EndTime: "15:00", Color: "#4ecdc4"},
	})
	if err != nil {
		t.Fatalf("SaveAvailability failed: %v", err)
	}

	loaded, err := svc.ListAvailability(ctx, "h1", testDate)
	if err != nil {
		t.Fatalf("ListAvailability failed: %v", err)
	}
	if len(loaded) != len(saved) {
		t.Fatalf("round trip lost slots: saved %d, loaded %d", len(saved), len(loaded))
	}
	want := map[string]bool{}
	for _, s := range saved {
		want[fmt.Sprintf("%d-%d-%s", s.Start, s.End, s.Color)] = true
	}
	for _, s := range loaded {
		if !want[fmt.Sprintf("%d-%d-%s", s.Start, s.End, s.Color)] {
			t.Fatalf("loaded slot %+v not in saved set", s)
		}
	}
}

func TestSaveAvailabilityRejectsInternalOverlap(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.SaveAvailability(context.Background(), "h1", testDate, []models.SlotInput{
		{StartTime: "09:00", EndTime: "10:00"},
		{StartTime: "09:30", EndTime: "10:30"},
	})
	var overlapErr *schedule.OverlapError
	if !errors.As(err, &overlapErr) {
		t.Fatalf("expected OverlapError, got %v", err)
	}
}

func TestAvailabilityBadDate(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ListAvailability(context.Background(), "h1", "14-03-2026")
	var validateErr *schedule.ValidationError
	if !errors.As(err, &validateErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

// --- open slots and booking arbitration ---

func TestListOpenSlotsReducedByLedger(t *testing.T) {
	svc, _, appts := newTestService()
	ctx := context.Background()

	if _, err := svc.SaveAvailability(ctx, "h1", testDate, []models.SlotInput{
		{StartTime: "09:00", EndTime: "10:00"},
		{StartTime: "14:00", EndTime: "15:00"},
	}); err != nil {
		t.Fatalf("SaveAvailability failed: %v", err)
	}
	appts.appts = append(appts.appts, models.Appointment{
		ID: "x", HostID: "h1", Date: testDate, Start: 840, End: 900,
	})

	open, err := svc.ListOpenSlots(ctx, "h1", testDate)
	if err != nil {
		t.Fatalf("ListOpenSlots failed: %v", err)
	}
	if len(open) != 1 || open[0].Start != 540 {
		t.Fatalf("expected only the 09:00 slot open, got %+v", open)
	}
}

func TestSubmitBooking(t *testing.T) {
	svc, _, appts := newTestService()
	ctx := context.Background()

	if _, err := svc.SaveAvailability(ctx, "h1", testDate, []models.SlotInput{
		{StartTime: "14:00", EndTime: "15:00"},
	}); err != nil {
		t.Fatalf("SaveAvailability failed: %v", err)
	}

	appt, err := svc.SubmitBooking(ctx, "h1", testDate,
		models.SlotInput{StartTime: "14:00", EndTime: "15:00"},
		models.ClientInfo{Name: "Kim", Email: "kim@example.com", AdditionalInfo: "first visit"})
	if err != nil {
		t.Fatalf("SubmitBooking failed: %v", err)
	}
	if appt.Status != models.AppointmentStatusConfirmed {
		t.Errorf("expected confirmed status, got %q", appt.Status)
	}
	if appt.HostNickname != "host1" {
		t.Errorf("expected host nickname on record, got %q", appt.HostNickname)
	}
	if appt.ID == "" || appt.CreatedAt.IsZero() {
		t.Errorf("expected id and createdAt set, got %+v", appt)
	}
	if len(appts.appts) != 1 {
		t.Fatalf("expected 1 persisted appointment, got %d", len(appts.appts))
	}
}

func TestSubmitBookingAlreadyBooked(t *testing.T) {
	svc, _, appts := newTestService()
	ctx := context.Background()

	if _, err := svc.SaveAvailability(ctx, "h1", testDate, []models.SlotInput{
		{StartTime: "14:00", EndTime: "15:00"},
	}); err != nil {
		t.Fatalf("SaveAvailability failed: %v", err)
	}
	appts.appts = append(appts.appts, models.Appointment{
		ID: "x", HostID: "h1", Date: testDate, Start: 840, End: 900,
	})

	_, err := svc.SubmitBooking(ctx, "h1", testDate,
		models.SlotInput{StartTime: "14:00", EndTime: "15:00"},
		models.ClientInfo{Name: "Lee", Email: "lee@example.com"})
	var bookedErr *schedule.SlotAlreadyBookedError
	if !errors.As(err, &bookedErr) {
		t.Fatalf("expected SlotAlreadyBookedError, got %v", err)
	}
}

func TestSubmitBookingInvalidEmail(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.SaveAvailability(ctx, "h1", testDate, []models.SlotInput{
		{StartTime: "14:00", EndTime: "15:00"},
	}); err != nil {
		t.Fatalf("SaveAvailability failed: %v", err)
	}

	// Rejected regardless of slot availability.
	_, err := svc.SubmitBooking(ctx, "h1", testDate,
		models.SlotInput{StartTime: "14:00", EndTime: "15:00"},
		models.ClientInfo{Name: "Kim", Email: "not-an-email"})
	var validateErr *schedule.ValidationError
	if !errors.As(err, &validateErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestSubmitBookingUndeclaredRange(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.SaveAvailability(ctx, "h1", testDate, []models.SlotInput{
		{StartTime: "14:00", EndTime: "15:00"},
	}); err != nil {
		t.Fatalf("SaveAvailability failed: %v", err)
	}

	// An arbitrary range, even inside a declared slot, is not bookable.
	_, err := svc.SubmitBooking(ctx, "h1", testDate,
		models.SlotInput{StartTime: "14:00", EndTime: "14:30"},
		models.ClientInfo{Name: "Kim", Email: "kim@example.com"})
	var validateErr *schedule.ValidationError
	if !errors.As(err, &validateErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestSubmitBookingRaceLostAtStore(t *testing.T) {
	svc, _, appts := newTestService()
	ctx := context.Background()

	if _, err := svc.SaveAvailability(ctx, "h1", testDate, []models.SlotInput{
		{StartTime: "14:00", EndTime: "15:00"},
	}); err != nil {
		t.Fatalf("SaveAvailability failed: %v", err)
	}

	first, err := svc.SubmitBooking(ctx, "h1", testDate,
		models.SlotInput{StartTime: "14:00", EndTime: "15:00"},
		models.ClientInfo{Name: "Kim", Email: "kim@example.com"})
	if err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	// A rival submission for the identical range loses.
	_, err = svc.SubmitBooking(ctx, "h1", testDate,
		models.SlotInput{StartTime: "14:00", EndTime: "15:00"},
		models.ClientInfo{Name: "Lee", Email: "lee@example.com"})
	var bookedErr *schedule.SlotAlreadyBookedError
	if !errors.As(err, &bookedErr) {
		t.Fatalf("expected SlotAlreadyBookedError, got %v", err)
	}

	if len(appts.appts) != 1 || appts.appts[0].ID != first.ID {
		t.Fatalf("ledger must hold only the winning booking, got %+v", appts.appts)
	}
}

func TestListAppointments(t *testing.T) {
	svc, _, appts := newTestService()
	ctx := context.Background()

	appts.appts = []models.Appointment{
		{ID: "b", HostID: "h1", Date: "2026-03-15", Start: 600, End: 660},
		{ID: "a", HostID: "h1", Date: "2026-03-14", Start: 540, End: 600},
		{ID: "old", HostID: "h1", Date: "2026-03-01", Start: 540, End: 600},
	}

	got, err := svc.ListAppointments(ctx, "h1", "2026-03-14")
	if err != nil {
		t.Fatalf("ListAppointments failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("expected [a b] ordered by date, got %+v", got)
	}
}
