package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"slotbook/models"
	"slotbook/services/booking"
	"slotbook/services/host"
	"slotbook/utils"
)

// BookingHandler exposes the public client-facing booking endpoints,
// addressed by host nickname (the share link).
type BookingHandler struct {
	Schedule booking.ScheduleService
	Hosts    host.HostService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(schedule booking.ScheduleService, hosts host.HostService) *BookingHandler {
	return &BookingHandler{Schedule: schedule, Hosts: hosts}
}

// GetOpenSlotsHandler handles GET /api/booking/:nickname/slots?date=.
// Returns the host's availability already reduced by booked ranges.
func (h *BookingHandler) GetOpenSlotsHandler(c *gin.Context) {
	record, err := h.Hosts.GetByNickname(c.Request.Context(), c.Param("nickname"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "host not found", "")
		return
	}

	date := c.Query("date")
	open, err := h.Schedule.ListOpenSlots(c.Request.Context(), record.UID, date)
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to list open slots", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"host":  record.Public(),
		"date":  date,
		"slots": toSlotViews(open),
	})
}

// SubmitBookingHandler handles POST /api/booking/:nickname?date=.
func (h *BookingHandler) SubmitBookingHandler(c *gin.Context) {
	record, err := h.Hosts.GetByNickname(c.Request.Context(), c.Param("nickname"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "host not found", "")
		return
	}

	var input struct {
		Date   string            `json:"date" binding:"required"`
		Slot   models.SlotInput  `json:"slot" binding:"required"`
		Client models.ClientInfo `json:"client" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Schedule.SubmitBooking(c.Request.Context(), record.UID, input.Date, input.Slot, input.Client)
	if err != nil {
		utils.JSONError(c, statusForError(err), "booking failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, appt)
}
