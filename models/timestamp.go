package models

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// ErrBadTimestamp is returned when a timestamp value has none of the accepted shapes.
var ErrBadTimestamp = errors.New("unrecognised timestamp")

// epoch values above this are taken to be milliseconds
const millisThreshold = 1e12

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp is the canonical instant used by every entity. The remote API
// sends Firestore-style {_seconds,_nanoseconds} objects, bare epoch numbers
// or ISO strings; all of them decode into this one type and always encode
// back as an RFC3339 string.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(t.UTC().Format(time.RFC3339Nano))), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrBadTimestamp, err)
		}
		parsed, err := ParseTimestamp(s)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case '{':
		var obj struct {
			UnderSeconds *float64 `json:"_seconds"`
			UnderNanos   int64    `json:"_nanoseconds"`
			Seconds      *float64 `json:"seconds"`
			Nanos        int64    `json:"nanoseconds"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return fmt.Errorf("%w: %v", ErrBadTimestamp, err)
		}
		switch {
		case obj.UnderSeconds != nil:
			t.Time = time.Unix(int64(*obj.UnderSeconds), obj.UnderNanos).UTC()
		case obj.Seconds != nil:
			t.Time = time.Unix(int64(*obj.Seconds), obj.Nanos).UTC()
		default:
			return fmt.Errorf("%w: object without seconds", ErrBadTimestamp)
		}
		return nil
	default:
		n, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrBadTimestamp, data)
		}
		t.Time = fromEpoch(n)
		return nil
	}
}

// ParseTimestamp parses the string forms the API is known to send.
func ParseTimestamp(s string) (Timestamp, error) {
	if s == "" {
		return Timestamp{}, nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return NewTimestamp(parsed), nil
		}
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return Timestamp{Time: fromEpoch(n)}, nil
	}
	return Timestamp{}, fmt.Errorf("%w: %q", ErrBadTimestamp, s)
}

func fromEpoch(n float64) time.Time {
	if n > millisThreshold {
		return time.UnixMilli(int64(n)).UTC()
	}
	sec, frac := math.Modf(n)
	return time.Unix(int64(sec), int64(frac*1e9)).UTC()
}
