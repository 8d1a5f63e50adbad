package models

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampDecodesEveryShape(t *testing.T) {
	want := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	cases := map[string]string{
		"firestore object": `{"_seconds": 1709296200, "_nanoseconds": 0}`,
		"seconds object":   `{"seconds": 1709296200}`,
		"epoch seconds":    `1709296200`,
		"epoch millis":     `1709296200000`,
		"rfc3339":          `"2024-03-01T12:30:00Z"`,
		"offset":           `"2024-03-01T14:30:00+02:00"`,
		"local no zone":    `"2024-03-01T12:30"`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(raw), &ts))
			assert.True(t, want.Equal(ts.Time), "got %s", ts.Time)
		})
	}
}

func TestTimestampNullAndEmptyAreZero(t *testing.T) {
	for _, raw := range []string{`null`, `""`} {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(raw), &ts))
		assert.True(t, ts.IsZero())
	}
}

func TestTimestampRejectsGarbage(t *testing.T) {
	for _, raw := range []string{`"yesterday"`, `{"foo": 1}`, `true`} {
		var ts Timestamp
		err := json.Unmarshal([]byte(raw), &ts)
		assert.ErrorIs(t, err, ErrBadTimestamp, raw)
	}
}

func TestTimestampEncodesRFC3339(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC))
	out, err := json.Marshal(struct {
		At   Timestamp `json:"at"`
		Zero Timestamp `json:"zero"`
	}{At: ts})
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"2024-03-01T12:30:00Z","zero":null}`, string(out))
}

func TestOrderItemsTotal(t *testing.T) {
	o := Order{Items: []OrderItem{
		{FoodID: "a", Quantity: 3, Price: 0.1},
		{FoodID: "b", Quantity: 2, Price: 4.25},
	}}
	assert.Equal(t, 8.8, o.ItemsTotal())
	assert.True(t, o.References("b"))
	assert.False(t, o.References("c"))
}
