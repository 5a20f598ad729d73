package models

import "time"

// Host is a freelancer who publishes availability and receives bookings
// through their personal link (e.g. https://slotbook.app/{nickname}).
type Host struct {
	UID            string    `bson:"uid" json:"uid"`
	Email          string    `bson:"email" json:"email"`
	Nickname       string    `bson:"nickname" json:"nickname"` // unique, lowercase a-z0-9, 2-20 chars
	PasswordHash   string    `bson:"passwordHash" json:"-"`
	AdditionalInfo string    `bson:"additionalInfo,omitempty" json:"additionalInfo,omitempty"` // free text shown to clients, e.g. meeting links
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

// PublicHostProfile is the subset of Host exposed on the public booking page.
type PublicHostProfile struct {
	UID            string `json:"uid"`
	Nickname       string `json:"nickname"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
}

// Public strips credentials and contact details from a host record.
func (h *Host) Public() PublicHostProfile {
	return PublicHostProfile{
		UID:            h.UID,
		Nickname:       h.Nickname,
		AdditionalInfo: h.AdditionalInfo,
	}
}
