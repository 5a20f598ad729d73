package models

import "time"

// Appointment statuses. Appointments are created confirmed; pending is
// reserved for flows where the host approves requests manually.
const (
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusPending   = "pending"
)

// Appointment is a confirmed client booking against one of a host's
// availability slots. Start/End mirror the slot's minutes-from-midnight
// range. Immutable after creation; there is no reschedule or cancel.
type Appointment struct {
	ID             string    `bson:"id" json:"id"`
	HostID         string    `bson:"hostId" json:"hostId"`
	HostNickname   string    `bson:"hostNickname" json:"hostNickname"`
	Date           string    `bson:"date" json:"date"`
	Start          int       `bson:"start" json:"start"`
	End            int       `bson:"end" json:"end"`
	ClientName     string    `bson:"clientName" json:"clientName"`
	ClientEmail    string    `bson:"clientEmail" json:"clientEmail"`
	AdditionalInfo string    `bson:"additionalInfo,omitempty" json:"additionalInfo,omitempty"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

// ClientInfo is what a client submits when booking a slot.
type ClientInfo struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
}
