package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestParseClockTime(t *testing.T) {
	valid := map[string]int{"00:00": 0, "09:30": 570, "23:59": 1439}
	for in, want := range valid {
		got, err := ParseClockTime(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.Minutes())
		assert.Equal(t, in, got.String())
	}

	for _, in := range []string{"", "9:30", "24:00", "12:60", "12-30", "12:30:00", " 12:30"} {
		_, err := ParseClockTime(in)
		assert.Error(t, err, in)
		assert.False(t, IsClockTime(in), in)
	}
}

func TestClockTimeAddWraps(t *testing.T) {
	assert.Equal(t, "00:00", MustClockTime("23:30").Add(30).String())
	assert.Equal(t, "01:15", MustClockTime("23:45").Add(90).String())
	assert.Equal(t, "23:30", MustClockTime("00:00").Add(-30).String())
}

func TestClockTimeEncoding(t *testing.T) {
	type doc struct {
		Start ClockTime `json:"start" bson:"start"`
	}

	data, err := json.Marshal(doc{Start: MustClockTime("08:05")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"08:05"}`, string(data))

	var fromJSON doc
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Equal(t, MustClockTime("08:05"), fromJSON.Start)
	assert.Error(t, json.Unmarshal([]byte(`{"start":"8:05"}`), &fromJSON))

	raw, err := bson.Marshal(doc{Start: MustClockTime("17:45")})
	require.NoError(t, err)
	var asStrings bson.M
	require.NoError(t, bson.Unmarshal(raw, &asStrings))
	assert.Equal(t, "17:45", asStrings["start"])

	var fromBSON doc
	require.NoError(t, bson.Unmarshal(raw, &fromBSON))
	assert.Equal(t, MustClockTime("17:45"), fromBSON.Start)
}

func TestDurationMinutes(t *testing.T) {
	s := AppointmentSlot{StartTime: MustClockTime("23:30"), EndTime: MustClockTime("00:00")}
	assert.Equal(t, 30, s.DurationMinutes())

	s = AppointmentSlot{StartTime: MustClockTime("09:00"), EndTime: MustClockTime("09:30")}
	assert.Equal(t, 30, s.DurationMinutes())
}
