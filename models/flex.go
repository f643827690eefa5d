package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// FlexInt accepts a JSON number or a numeric string. Anything else
// (including malformed numbers) decodes to 0 rather than failing the bind,
// matching how the frontend has always submitted these fields.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexInt(int(n))
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt(int(n))
	return nil
}

// FlexFloat is FlexInt's fractional counterpart, used for monetary amounts.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexFloat(n)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(n)
	return nil
}

// FlexBool coerces boolean-ish input: JSON booleans pass through, numbers
// are false only at zero, strings are false only for "", "0" and "false",
// null is false.
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = false
		return nil
	}

	switch data[0] {
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			*f = false
			return nil
		}
		*f = FlexBool(b)
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = false
			return nil
		}
		*f = s != "" && s != "0" && s != "false"
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			*f = false
			return nil
		}
		*f = n != 0
	}
	return nil
}

var flexDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FlexDate accepts RFC3339 or date-only strings. An absent, null or
// unparseable value leaves Valid false; the handler decides whether that
// means NULL or now for its entity.
type FlexDate struct {
	Time  time.Time
	Valid bool
}

func (f *FlexDate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		f.Valid = false
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		f.Valid = false
		return nil
	}

	for _, layout := range flexDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			f.Time = t
			f.Valid = true
			return nil
		}
	}

	f.Valid = false
	return nil
}

// OrNil returns the parsed time, or nil when the input was absent or invalid.
func (f FlexDate) OrNil() *time.Time {
	if !f.Valid {
		return nil
	}
	t := f.Time
	return &t
}

// OrNow returns the parsed time, falling back to the current time.
func (f FlexDate) OrNow() time.Time {
	if !f.Valid {
		return time.Now()
	}
	return f.Time
}
