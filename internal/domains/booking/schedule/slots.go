package schedule

import (
	"healthtick/shared/constant"
	"slices"
	"time"
)

const (
	// SlotOpen and SlotClose bound the daily grid, both inclusive.
	SlotOpen  = "10:30"
	SlotClose = "19:30"

	// SlotStepMinutes matches the shortest call duration.
	SlotStepMinutes = 20
)

// Slots returns the ordered bookable start times for a business day.
// The grid is the same for every day and is not affected by existing
// bookings, weekdays or holidays.
func Slots() []string {
	open, _ := time.Parse(constant.ClockFormat, SlotOpen)
	last, _ := time.Parse(constant.ClockFormat, SlotClose)

	slots := []string{}
	for at := open; !at.After(last); at = at.Add(SlotStepMinutes * time.Minute) {
		slots = append(slots, at.Format(constant.ClockFormat))
	}

	return slots
}

// IsSlot reports whether clock is one of the grid start times.
func IsSlot(clock string) bool {
	return slices.Contains(Slots(), clock)
}
