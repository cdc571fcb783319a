package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEvent(t *testing.T) {
	t.Parallel()

	payload := EventPayload{
		Summary:     "Intro call",
		Description: "Discuss the seed round",
		Start:       "2024-06-01T10:00:00",
		End:         "2024-06-01T10:30:00",
	}

	event := buildEvent(payload, "req-123")

	assert.Equal(t, "Intro call", event.Summary)
	assert.Equal(t, "Discuss the seed round", event.Description)

	require.NotNil(t, event.Start)
	assert.Equal(t, "2024-06-01T10:00:00", event.Start.DateTime)
	assert.Equal(t, TimeZone, event.Start.TimeZone)

	require.NotNil(t, event.End)
	assert.Equal(t, "2024-06-01T10:30:00", event.End.DateTime)
	assert.Equal(t, TimeZone, event.End.TimeZone)

	require.NotNil(t, event.ConferenceData)
	require.NotNil(t, event.ConferenceData.CreateRequest)
	assert.Equal(t, "req-123", event.ConferenceData.CreateRequest.RequestId)
	require.NotNil(t, event.ConferenceData.CreateRequest.ConferenceSolutionKey)
	assert.Equal(t, "hangoutsMeet", event.ConferenceData.CreateRequest.ConferenceSolutionKey.Type)
}

func TestBuildEventUniqueRequestIDs(t *testing.T) {
	t.Parallel()

	p := EventPayload{Summary: "a", Start: "2024-06-01T10:00:00", End: "2024-06-01T10:30:00"}

	a := buildEvent(p, "one")
	b := buildEvent(p, "two")

	assert.NotEqual(t, a.ConferenceData.CreateRequest.RequestId, b.ConferenceData.CreateRequest.RequestId)
}
