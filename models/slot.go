package models

// SlotKind distinguishes the two slot collections a host edits.
// Availability slots are the only ones booking arbitration consults;
// busy slots are the host's personal schedule and are display-only.
type SlotKind string

const (
	SlotKindAvailable SlotKind = "available"
	SlotKindBusy      SlotKind = "busy"
)

// TimeSlot represents a host's time window on a single calendar date.
// Start and End are minutes from midnight (e.g., 540 for 9:00 AM); the
// interval is half-open, [Start, End). Slots are immutable once created:
// an edit is modeled as delete + recreate.
type TimeSlot struct {
	ID     string `bson:"id" json:"id"`
	HostID string `bson:"hostId" json:"hostId"`
	Date   string `bson:"date" json:"date"` // e.g., "2026-03-14", local wall clock, no timezone
	Start  int    `bson:"start" json:"start"`
	End    int    `bson:"end" json:"end"`
	Color  string `bson:"color,omitempty" json:"color,omitempty"`
}

// SlotInput is the client-facing payload for declaring a slot; times come
// in as "HH:MM" strings and are parsed at the service boundary.
type SlotInput struct {
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	Color     string `json:"color,omitempty"`
}

// SlotView is the wire representation of a TimeSlot with formatted times.
type SlotView struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Color     string `json:"color,omitempty"`
}
