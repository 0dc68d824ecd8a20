package models

import (
	"encoding/json"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// MinutesPerDay bounds every ClockTime.
const MinutesPerDay = 24 * 60

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ClockTime is a time of day stored as minutes since midnight.
// Its text form is the zero-padded "HH:mm" used by clients and persisted documents.
type ClockTime int

// ParseClockTime parses a strict "HH:mm" value.
func ParseClockTime(s string) (ClockTime, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:mm", s)
	}
	hours := int(m[1][0]-'0')*10 + int(m[1][1]-'0')
	minutes := int(m[2][0]-'0')*10 + int(m[2][1]-'0')
	return ClockTime(hours*60 + minutes), nil
}

// MustClockTime is ParseClockTime for literals known to be valid.
func MustClockTime(s string) ClockTime {
	c, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsClockTime reports whether s is a well-formed "HH:mm" value.
func IsClockTime(s string) bool {
	return clockPattern.MatchString(s)
}

func (c ClockTime) Minutes() int { return int(c) }

// Add moves the clock forward, wrapping around midnight.
func (c ClockTime) Add(minutes int) ClockTime {
	v := (int(c) + minutes) % MinutesPerDay
	if v < 0 {
		v += MinutesPerDay
	}
	return ClockTime(v)
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c ClockTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(c.String())
}

func (c *ClockTime) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	s, ok := bson.RawValue{Type: t, Value: data}.StringValueOK()
	if !ok {
		return fmt.Errorf("cannot decode %s into ClockTime", t)
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
