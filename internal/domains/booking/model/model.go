package model

import "time"

const (
	CollectionName = "bookings"
	EntityName     = "booking"

	FieldID           = "_id"
	FieldClientID     = "clientId"
	FieldClientName   = "clientName"
	FieldCallType     = "callType"
	FieldDate         = "date"
	FieldTime         = "time"
	FieldIsRecurring  = "isRecurring"
	FieldOriginalDate = "originalDate"
)

// CallType determines the call duration. Duration is always derived from
// the type and never stored on its own.
type CallType string

const (
	CallTypeOnboarding CallType = "onboarding"
	CallTypeFollowUp   CallType = "follow-up"

	onboardingDurationMinutes = 40
	followUpDurationMinutes   = 20
)

func (c CallType) DurationMinutes() int {
	if c == CallTypeOnboarding {
		return onboardingDurationMinutes
	}

	return followUpDurationMinutes
}

func (c CallType) IsValid() bool {
	return c == CallTypeOnboarding || c == CallTypeFollowUp
}

// Booking is one scheduled call. OriginalDate is set only on recurring
// bookings and is omitted from storage entirely when absent.
type Booking struct {
	ID           string    `bson:"_id,omitempty"          json:"id"`
	ClientID     string    `bson:"clientId"               json:"client_id"`
	ClientName   string    `bson:"clientName"             json:"client_name"`
	CallType     CallType  `bson:"callType"               json:"call_type"`
	Date         string    `bson:"date"                   json:"date"`
	Time         string    `bson:"time"                   json:"time"`
	IsRecurring  bool      `bson:"isRecurring"            json:"is_recurring"`
	OriginalDate string    `bson:"originalDate,omitempty" json:"original_date,omitempty"`
	CreatedAt    time.Time `bson:"createdAt"              json:"created_at"`
}
