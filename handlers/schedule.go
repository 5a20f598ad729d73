package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"slotbook/models"
	"slotbook/services/booking"
	"slotbook/services/schedule"
	"slotbook/utils"
)

// ScheduleHandler exposes the host-facing schedule management endpoints.
// The host identity always comes from the authenticated session, set by
// the JWT middleware.
type ScheduleHandler struct {
	Service booking.ScheduleService
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(svc booking.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

func toSlotViews(slots []models.TimeSlot) []models.SlotView {
	views := make([]models.SlotView, len(slots))
	for i, s := range slots {
		views[i] = models.SlotView{
			ID:        s.ID,
			Date:      s.Date,
			StartTime: schedule.FormatClock(s.Start),
			EndTime:   schedule.FormatClock(s.End),
			Color:     s.Color,
		}
	}
	return views
}

// ListAvailabilityHandler handles GET /api/schedule/availability?date=.
func (h *ScheduleHandler) ListAvailabilityHandler(c *gin.Context) {
	hostID := c.GetString("hostID")
	date := c.Query("date")

	slots, err := h.Service.ListAvailability(c.Request.Context(), hostID, date)
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to list availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": toSlotViews(slots)})
}

// AddAvailabilityHandler handles POST /api/schedule/availability?date=.
func (h *ScheduleHandler) AddAvailabilityHandler(c *gin.Context) {
	hostID := c.GetString("hostID")
	date := c.Query("date")

	var input models.SlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.AddAvailability(c.Request.Context(), hostID, date, input)
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to add availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": toSlotViews(updated)})
}

// RemoveAvailabilityHandler handles DELETE /api/schedule/availability/:slotID?date=.
func (h *ScheduleHandler) RemoveAvailabilityHandler(c *gin.Context) {
	hostID := c.GetString("hostID")
	date := c.Query("date")

	updated, err := h.Service.RemoveAvailability(c.Request.Context(), hostID, date, c.Param("slotID"))
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to remove availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": toSlotViews(updated)})
}

// SaveAvailabilityHandler handles PUT /api/schedule/availability?date=
// with full-replace semantics, matching the dashboard's "save" button.
func (h *ScheduleHandler) SaveAvailabilityHandler(c *gin.Context) {
	hostID := c.GetString("hostID")
	date := c.Query("date")

	var input struct {
		Slots []models.SlotInput `json:"slots"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.SaveAvailability(c.Request.Context(), hostID, date, input.Slots)
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to save availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": toSlotViews(updated)})
}

// ListBusyHandler handles GET /api/schedule/busy?date=.
func (h *ScheduleHandler) ListBusyHandler(c *gin.Context) {
	hostID := c.GetString("hostID")
	date := c.Query("date")

	slots, err := h.Service.ListBusy(c.Request.Context(), hostID, date)
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to list busy slots", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": toSlotViews(slots)})
}

// SaveBusyHandler handles PUT /api/schedule/busy?date=.
func (h *ScheduleHandler) SaveBusyHandler(c *gin.Context) {
	hostID := c.GetString("hostID")
	date := c.Query("date")

	var input struct {
		Slots []models.SlotInput `json:"slots"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.SaveBusy(c.Request.Context(), hostID, date, input.Slots)
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to save busy slots", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": toSlotViews(updated)})
}

// ListAppointmentsHandler handles GET /api/schedule/appointments?from=.
func (h *ScheduleHandler) ListAppointmentsHandler(c *gin.Context) {
	hostID := c.GetString("hostID")
	from := c.Query("from")

	appts, err := h.Service.ListAppointments(c.Request.Context(), hostID, from)
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
