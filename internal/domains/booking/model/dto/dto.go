package dto

import (
	"healthtick/internal/domains/booking/model"
	"healthtick/shared/timezone"
)

type CreateBookingRequest struct {
	ClientID    string `json:"client_id"    validate:"required"`
	CallType    string `json:"call_type"    validate:"required,oneof=onboarding follow-up"`
	Date        string `json:"date"         validate:"required,dateformat"`
	Time        string `json:"time"         validate:"required,clocktime"`
	IsRecurring bool   `json:"is_recurring" validate:"omitempty"`
}

func (c *CreateBookingRequest) ToModel(clientName string) model.Booking {
	booking := model.Booking{
		ClientID:    c.ClientID,
		ClientName:  clientName,
		CallType:    model.CallType(c.CallType),
		Date:        c.Date,
		Time:        c.Time,
		IsRecurring: c.IsRecurring,
		CreatedAt:   timezone.Now(),
	}

	if c.IsRecurring {
		booking.OriginalDate = c.Date
	}

	return booking
}

type BookingResponse struct {
	ID           string `json:"id"`
	ClientID     string `json:"client_id"`
	ClientName   string `json:"client_name"`
	CallType     string `json:"call_type"`
	Duration     int    `json:"duration_minutes"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	IsRecurring  bool   `json:"is_recurring"`
	OriginalDate string `json:"original_date,omitempty"`
}

func (b *BookingResponse) FromModel(model model.Booking) {
	b.ID = model.ID
	b.ClientID = model.ClientID
	b.ClientName = model.ClientName
	b.CallType = string(model.CallType)
	b.Duration = model.CallType.DurationMinutes()
	b.Date = model.Date
	b.Time = model.Time
	b.IsRecurring = model.IsRecurring
	b.OriginalDate = model.OriginalDate
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (g *GetBookingsResponse) FromModels(models []model.Booking) {
	g.TotalData = len(models)

	g.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		g.Bookings[i].FromModel(mod)
	}
}

type DayViewResponse struct {
	Date     string            `json:"date"`
	Bookings []BookingResponse `json:"bookings"`
}

func (d *DayViewResponse) FromModels(date string, models []model.Booking) {
	d.Date = date

	d.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		d.Bookings[i].FromModel(mod)
	}
}

type SlotsResponse struct {
	Slots []string `json:"slots"`
}
