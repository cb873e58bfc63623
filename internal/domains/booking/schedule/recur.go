package schedule

import (
	"fmt"
	"healthtick/internal/domains/booking/model"
	"healthtick/shared/constant"
	"time"

	"github.com/teambition/rrule-go"
)

// Expand synthesizes the virtual occurrences of recurring bookings that
// fall on targetDate. A recurring booking occurs on every date that
// shares a weekday with its original date, from the original date
// onward. Input bookings are never mutated and output order follows
// input order.
func Expand(bookings []model.Booking, targetDate string) ([]model.Booking, error) {
	day, err := time.Parse(constant.CalendarDateFormat, targetDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse target date %q: %w", targetDate, err)
	}

	occurrences := []model.Booking{}

	for _, booking := range bookings {
		if !booking.IsRecurring || booking.OriginalDate == "" {
			continue
		}

		anchor, err := time.Parse(constant.CalendarDateFormat, booking.OriginalDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse original date %q: %w", booking.OriginalDate, err)
		}

		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:    rrule.WEEKLY,
			Dtstart: anchor,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build recurrence rule: %w", err)
		}

		if len(rule.Between(day, day, true)) == 0 {
			continue
		}

		occurrence := booking
		occurrence.ID = RecurringID(booking.ID, targetDate).String()
		occurrence.Date = targetDate

		occurrences = append(occurrences, occurrence)
	}

	return occurrences, nil
}
