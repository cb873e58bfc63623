package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"healthtick/internal/domains/booking/model"
)

func TestCallTypeDurationMinutes(t *testing.T) {
	assert.Equal(t, 40, model.CallTypeOnboarding.DurationMinutes())
	assert.Equal(t, 20, model.CallTypeFollowUp.DurationMinutes())
}

func TestCallTypeIsValid(t *testing.T) {
	assert.True(t, model.CallTypeOnboarding.IsValid())
	assert.True(t, model.CallTypeFollowUp.IsValid())
	assert.False(t, model.CallType("consultation").IsValid())
	assert.False(t, model.CallType("").IsValid())
}

// The originalDate key must be absent from a stored direct booking, not
// present as null or an empty string.
func TestBookingMarshalOmitsOriginalDateWhenDirect(t *testing.T) {
	direct := model.Booking{
		ID:        "64f1c0ffee",
		ClientID:  "client-1",
		CallType:  model.CallTypeOnboarding,
		Date:      "2024-01-08",
		Time:      "14:10",
		CreatedAt: time.Now(),
	}

	raw, err := bson.Marshal(direct)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))

	_, found := doc[model.FieldOriginalDate]
	assert.False(t, found)
	assert.Equal(t, "2024-01-08", doc[model.FieldDate])

	payload, err := json.Marshal(direct)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "original_date")
}

func TestBookingMarshalKeepsOriginalDateWhenRecurring(t *testing.T) {
	recurring := model.Booking{
		ID:           "64f1c0ffee",
		ClientID:     "client-1",
		CallType:     model.CallTypeFollowUp,
		Date:         "2024-01-08",
		Time:         "11:10",
		IsRecurring:  true,
		OriginalDate: "2024-01-08",
		CreatedAt:    time.Now(),
	}

	raw, err := bson.Marshal(recurring)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))

	assert.Equal(t, "2024-01-08", doc[model.FieldOriginalDate])
	assert.Equal(t, true, doc[model.FieldIsRecurring])

	payload, err := json.Marshal(recurring)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"original_date":"2024-01-08"`)
}
