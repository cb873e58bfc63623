package schedule

import (
	"fmt"
	"healthtick/shared/constant"
	"time"
)

const minutesPerDay = 24 * 60

// AddMinutes adds a number of minutes to an HH:MM clock value and wraps
// within a 24 hour day. Callers that must not wrap reject the candidate
// with CrossesMidnight before doing interval arithmetic.
func AddMinutes(clock string, minutes int) (string, error) {
	parsed, err := time.Parse(constant.ClockFormat, clock)
	if err != nil {
		return "", fmt.Errorf("failed to parse clock value %q: %w", clock, err)
	}

	return parsed.Add(time.Duration(minutes) * time.Minute).Format(constant.ClockFormat), nil
}

// CrossesMidnight reports whether an interval starting at clock with the
// given duration ends past the last representable minute of the day. An
// interval ending exactly at midnight counts as crossing because the
// wrapped "00:00" end marker breaks half open interval comparison.
func CrossesMidnight(clock string, minutes int) (bool, error) {
	parsed, err := time.Parse(constant.ClockFormat, clock)
	if err != nil {
		return false, fmt.Errorf("failed to parse clock value %q: %w", clock, err)
	}

	start := parsed.Hour()*60 + parsed.Minute()

	return start+minutes >= minutesPerDay, nil
}

// InRange reports whether clock falls within the half open interval
// [start, end). HH:MM values compare correctly as plain strings.
func InRange(clock, start, end string) bool {
	return clock >= start && clock < end
}
