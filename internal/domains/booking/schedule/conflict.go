package schedule

import "healthtick/internal/domains/booking/model"

// HasConflict reports whether a candidate call starting at clock with
// the given duration overlaps any booking already resolved for the day.
// Intervals are half open, so a call ending exactly when another starts
// does not conflict. The equal start check is redundant with the range
// checks but kept as a guard on the boundary cases.
func HasConflict(clock string, durationMinutes int, dayBookings []model.Booking) (bool, error) {
	end, err := AddMinutes(clock, durationMinutes)
	if err != nil {
		return false, err
	}

	for _, booking := range dayBookings {
		bookingEnd, err := AddMinutes(booking.Time, booking.CallType.DurationMinutes())
		if err != nil {
			return false, err
		}

		if clock == booking.Time ||
			InRange(clock, booking.Time, bookingEnd) ||
			InRange(booking.Time, clock, end) {
			return true, nil
		}
	}

	return false, nil
}
