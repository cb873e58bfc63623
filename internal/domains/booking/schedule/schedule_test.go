package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthtick/internal/domains/booking/model"
	"healthtick/internal/domains/booking/schedule"
)

func TestSlots(t *testing.T) {
	slots := schedule.Slots()

	assert.Len(t, slots, 28)
	assert.Equal(t, "10:30", slots[0])
	assert.Equal(t, "19:30", slots[len(slots)-1])

	for i := 1; i < len(slots); i++ {
		next, err := schedule.AddMinutes(slots[i-1], schedule.SlotStepMinutes)
		require.NoError(t, err)
		assert.Equal(t, next, slots[i])
		assert.Greater(t, slots[i], slots[i-1])
	}
}

func TestIsSlot(t *testing.T) {
	assert.True(t, schedule.IsSlot("10:30"))
	assert.True(t, schedule.IsSlot("19:30"))
	assert.False(t, schedule.IsSlot("10:00"))
	assert.False(t, schedule.IsSlot("19:50"))
	assert.False(t, schedule.IsSlot("10:35"))
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		clock   string
		minutes int
		want    string
		wantErr bool
	}{
		{name: "within the hour", clock: "10:30", minutes: 20, want: "10:50"},
		{name: "hour rollover", clock: "10:50", minutes: 20, want: "11:10"},
		{name: "onboarding duration", clock: "14:00", minutes: 40, want: "14:40"},
		{name: "wraps past midnight", clock: "23:50", minutes: 20, want: "00:10"},
		{name: "malformed clock", clock: "not-a-time", minutes: 20, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schedule.AddMinutes(tt.clock, tt.minutes)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCrossesMidnight(t *testing.T) {
	tests := []struct {
		name    string
		clock   string
		minutes int
		want    bool
	}{
		{name: "well within the day", clock: "19:30", minutes: 40, want: false},
		{name: "ends one minute before midnight", clock: "23:39", minutes: 20, want: false},
		{name: "ends exactly at midnight", clock: "23:20", minutes: 40, want: true},
		{name: "wraps past midnight", clock: "23:50", minutes: 20, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schedule.CrossesMidnight(tt.clock, tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInRange(t *testing.T) {
	assert.True(t, schedule.InRange("14:10", "14:00", "14:40"))
	assert.True(t, schedule.InRange("14:00", "14:00", "14:40"))
	assert.False(t, schedule.InRange("14:40", "14:00", "14:40"))
	assert.False(t, schedule.InRange("13:59", "14:00", "14:40"))
}

func TestHasConflict(t *testing.T) {
	onboarding := model.Booking{
		ID:       "booking-a",
		CallType: model.CallTypeOnboarding,
		Date:     "2024-01-08",
		Time:     "14:00",
	}

	followUp := model.Booking{
		ID:       "booking-b",
		CallType: model.CallTypeFollowUp,
		Date:     "2024-01-08",
		Time:     "10:50",
	}

	tests := []struct {
		name     string
		clock    string
		duration int
		existing []model.Booking
		want     bool
	}{
		{
			name:     "empty day never conflicts",
			clock:    "14:00",
			duration: 40,
			existing: []model.Booking{},
			want:     false,
		},
		{
			name:     "candidate starts inside existing call",
			clock:    "14:10",
			duration: 20,
			existing: []model.Booking{onboarding},
			want:     true,
		},
		{
			name:     "candidate starts when existing ends",
			clock:    "14:40",
			duration: 20,
			existing: []model.Booking{onboarding},
			want:     false,
		},
		{
			name:     "candidate ends when existing starts",
			clock:    "13:20",
			duration: 40,
			existing: []model.Booking{onboarding},
			want:     false,
		},
		{
			name:     "existing starts inside candidate",
			clock:    "13:40",
			duration: 40,
			existing: []model.Booking{onboarding},
			want:     true,
		},
		{
			name:     "equal start times",
			clock:    "14:00",
			duration: 20,
			existing: []model.Booking{onboarding},
			want:     true,
		},
		{
			name:     "back to back follow ups",
			clock:    "11:10",
			duration: 20,
			existing: []model.Booking{followUp},
			want:     false,
		},
		{
			name:     "disjoint earlier interval",
			clock:    "10:30",
			duration: 20,
			existing: []model.Booking{onboarding},
			want:     false,
		},
		{
			name:     "overlap by one minute",
			clock:    "14:39",
			duration: 20,
			existing: []model.Booking{onboarding},
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schedule.HasConflict(tt.clock, tt.duration, tt.existing)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasConflictMalformedClock(t *testing.T) {
	_, err := schedule.HasConflict("25:99:00", 20, nil)
	assert.Error(t, err)
}

func TestExpand(t *testing.T) {
	// 2024-01-01 is a Monday.
	recurring := model.Booking{
		ID:           "booking-r",
		ClientID:     "client-1",
		CallType:     model.CallTypeFollowUp,
		Date:         "2024-01-01",
		Time:         "11:10",
		IsRecurring:  true,
		OriginalDate: "2024-01-01",
	}

	direct := model.Booking{
		ID:       "booking-d",
		ClientID: "client-2",
		CallType: model.CallTypeOnboarding,
		Date:     "2024-01-08",
		Time:     "14:00",
	}

	tests := []struct {
		name       string
		bookings   []model.Booking
		targetDate string
		wantIDs    []string
	}{
		{
			name:       "matching weekday one week later",
			bookings:   []model.Booking{recurring, direct},
			targetDate: "2024-01-08",
			wantIDs:    []string{"booking-r-2024-01-08"},
		},
		{
			name:       "weekday mismatch",
			bookings:   []model.Booking{recurring},
			targetDate: "2024-01-09",
			wantIDs:    []string{},
		},
		{
			name:       "matching weekday before the original date",
			bookings:   []model.Booking{recurring},
			targetDate: "2023-12-25",
			wantIDs:    []string{},
		},
		{
			name:       "original date itself",
			bookings:   []model.Booking{recurring},
			targetDate: "2024-01-01",
			wantIDs:    []string{"booking-r-2024-01-01"},
		},
		{
			name:       "direct bookings are ignored",
			bookings:   []model.Booking{direct},
			targetDate: "2024-01-08",
			wantIDs:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occurrences, err := schedule.Expand(tt.bookings, tt.targetDate)
			require.NoError(t, err)

			ids := []string{}
			for _, occurrence := range occurrences {
				ids = append(ids, occurrence.ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestExpandKeepsFields(t *testing.T) {
	recurring := model.Booking{
		ID:           "booking-r",
		ClientID:     "client-1",
		ClientName:   "Sriram Kumar",
		CallType:     model.CallTypeFollowUp,
		Date:         "2024-01-01",
		Time:         "11:10",
		IsRecurring:  true,
		OriginalDate: "2024-01-01",
	}

	occurrences, err := schedule.Expand([]model.Booking{recurring}, "2024-01-15")
	require.NoError(t, err)
	require.Len(t, occurrences, 1)

	occurrence := occurrences[0]
	assert.Equal(t, "booking-r-2024-01-15", occurrence.ID)
	assert.Equal(t, "2024-01-15", occurrence.Date)
	assert.Equal(t, recurring.Time, occurrence.Time)
	assert.Equal(t, recurring.ClientID, occurrence.ClientID)
	assert.Equal(t, recurring.ClientName, occurrence.ClientName)
	assert.Equal(t, recurring.OriginalDate, occurrence.OriginalDate)

	// Input is untouched.
	assert.Equal(t, "booking-r", recurring.ID)
	assert.Equal(t, "2024-01-01", recurring.Date)
}

func TestExpandMalformedDates(t *testing.T) {
	_, err := schedule.Expand(nil, "08-01-2024")
	assert.Error(t, err)

	bad := model.Booking{
		ID:           "booking-x",
		IsRecurring:  true,
		OriginalDate: "January 1st",
	}

	_, err = schedule.Expand([]model.Booking{bad}, "2024-01-08")
	assert.Error(t, err)
}

func TestResolveDay(t *testing.T) {
	recurring := model.Booking{
		ID:           "booking-r",
		CallType:     model.CallTypeFollowUp,
		Date:         "2024-01-08",
		Time:         "11:10",
		IsRecurring:  true,
		OriginalDate: "2024-01-08",
	}

	direct := model.Booking{
		ID:       "booking-d",
		CallType: model.CallTypeOnboarding,
		Date:     "2024-01-08",
		Time:     "14:00",
	}

	otherDay := model.Booking{
		ID:       "booking-o",
		CallType: model.CallTypeOnboarding,
		Date:     "2024-01-09",
		Time:     "14:00",
	}

	t.Run("direct record wins over its own occurrence", func(t *testing.T) {
		resolved, err := schedule.ResolveDay([]model.Booking{recurring, direct, otherDay}, "2024-01-08")
		require.NoError(t, err)
		require.Len(t, resolved, 2)

		assert.Equal(t, "booking-r", resolved[0].ID)
		assert.Equal(t, "booking-d", resolved[1].ID)
	})

	t.Run("future week yields virtual occurrence only", func(t *testing.T) {
		resolved, err := schedule.ResolveDay([]model.Booking{recurring, direct, otherDay}, "2024-01-15")
		require.NoError(t, err)
		require.Len(t, resolved, 1)

		assert.Equal(t, "booking-r-2024-01-15", resolved[0].ID)
		assert.Equal(t, "2024-01-15", resolved[0].Date)
	})

	t.Run("unrelated day", func(t *testing.T) {
		resolved, err := schedule.ResolveDay([]model.Booking{recurring, direct}, "2024-01-10")
		require.NoError(t, err)
		assert.Empty(t, resolved)
	})
}

func TestBookingDayEndToEnd(t *testing.T) {
	// A 40 minute onboarding call at 14:00 occupies 14:00 to 14:40.
	bookings := []model.Booking{
		{
			ID:       "booking-a",
			CallType: model.CallTypeOnboarding,
			Date:     "2024-01-08",
			Time:     "14:00",
		},
	}

	day, err := schedule.ResolveDay(bookings, "2024-01-08")
	require.NoError(t, err)

	conflict, err := schedule.HasConflict("14:10", model.CallTypeFollowUp.DurationMinutes(), day)
	require.NoError(t, err)
	assert.True(t, conflict)

	conflict, err = schedule.HasConflict("14:40", model.CallTypeFollowUp.DurationMinutes(), day)
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestOccurrenceID(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantOrigin  string
		wantDate    string
		wantVirtual bool
	}{
		{
			name:        "virtual occurrence",
			raw:         "booking-a-2024-01-08",
			wantOrigin:  "booking-a",
			wantDate:    "2024-01-08",
			wantVirtual: true,
		},
		{
			name:       "direct id without separator",
			raw:        "64f1c0ffee",
			wantOrigin: "64f1c0ffee",
		},
		{
			name:       "direct id containing dashes but no date suffix",
			raw:        "booking-a-extra",
			wantOrigin: "booking-a-extra",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := schedule.ParseOccurrenceID(tt.raw)

			assert.Equal(t, tt.wantOrigin, parsed.Origin())
			assert.Equal(t, tt.wantDate, parsed.Date())
			assert.Equal(t, tt.wantVirtual, parsed.IsVirtual())
			assert.Equal(t, tt.raw, parsed.String())
		})
	}
}

func TestCallTypeDuration(t *testing.T) {
	assert.Equal(t, 40, model.CallTypeOnboarding.DurationMinutes())
	assert.Equal(t, 20, model.CallTypeFollowUp.DurationMinutes())
	assert.True(t, model.CallTypeOnboarding.IsValid())
	assert.True(t, model.CallTypeFollowUp.IsValid())
	assert.False(t, model.CallType("consultation").IsValid())
}
