package schedule

import "healthtick/internal/domains/booking/model"

// ResolveDay returns the bookings effective on targetDate: direct
// bookings dated that day plus virtual occurrences of recurring ones,
// deduplicated by origin identity. Direct bookings are merged first so
// a recurring booking viewed on its own original date keeps the stored
// record over its self referential occurrence. Output keeps merge
// order; callers wanting time order sort explicitly.
func ResolveDay(bookings []model.Booking, targetDate string) ([]model.Booking, error) {
	virtual, err := Expand(bookings, targetDate)
	if err != nil {
		return nil, err
	}

	merged := make([]model.Booking, 0, len(bookings)+len(virtual))

	for _, booking := range bookings {
		if booking.Date == targetDate {
			merged = append(merged, booking)
		}
	}

	merged = append(merged, virtual...)

	seen := make(map[string]struct{}, len(merged))
	resolved := make([]model.Booking, 0, len(merged))

	for _, booking := range merged {
		origin := ParseOccurrenceID(booking.ID).Origin()

		if _, duplicate := seen[origin]; duplicate {
			continue
		}

		seen[origin] = struct{}{}
		resolved = append(resolved, booking)
	}

	return resolved, nil
}
