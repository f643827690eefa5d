package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFlexIntUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"number", `42`, 42},
		{"numeric string", `"42"`, 42},
		{"float truncates", `3.9`, 3},
		{"float string truncates", `"3.9"`, 3},
		{"non-numeric string", `"abc"`, 0},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
		{"bool", `true`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexInt
			assert.NoError(t, json.Unmarshal([]byte(tt.input), &f))
			assert.Equal(t, tt.expected, int(f))
		})
	}
}

func TestFlexFloatUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"number", `19.99`, 19.99},
		{"numeric string", `"19.99"`, 19.99},
		{"non-numeric string", `"free"`, 0},
		{"null", `null`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexFloat
			assert.NoError(t, json.Unmarshal([]byte(tt.input), &f))
			assert.Equal(t, tt.expected, float64(f))
		})
	}
}

func TestFlexBoolUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"true", `true`, true},
		{"false", `false`, false},
		{"string true", `"true"`, true},
		{"string false", `"false"`, false},
		{"string zero", `"0"`, false},
		{"empty string", `""`, false},
		{"arbitrary string", `"yes"`, true},
		{"one", `1`, true},
		{"zero", `0`, false},
		{"null", `null`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexBool
			assert.NoError(t, json.Unmarshal([]byte(tt.input), &f))
			assert.Equal(t, tt.expected, bool(f))
		})
	}
}

func TestFlexDateUnmarshal(t *testing.T) {
	t.Run("RFC3339", func(t *testing.T) {
		var f FlexDate
		assert.NoError(t, json.Unmarshal([]byte(`"2025-03-09T10:30:00Z"`), &f))
		assert.True(t, f.Valid)
		assert.Equal(t, time.Date(2025, 3, 9, 10, 30, 0, 0, time.UTC), f.Time)
	})

	t.Run("date only", func(t *testing.T) {
		var f FlexDate
		assert.NoError(t, json.Unmarshal([]byte(`"2025-03-09"`), &f))
		assert.True(t, f.Valid)
		assert.Equal(t, 2025, f.Time.Year())
	})

	t.Run("invalid stays invalid", func(t *testing.T) {
		var f FlexDate
		assert.NoError(t, json.Unmarshal([]byte(`"next sunday"`), &f))
		assert.False(t, f.Valid)
		assert.Nil(t, f.OrNil())
	})

	t.Run("null stays invalid", func(t *testing.T) {
		var f FlexDate
		assert.NoError(t, json.Unmarshal([]byte(`null`), &f))
		assert.False(t, f.Valid)
	})

	t.Run("OrNow falls back for invalid input", func(t *testing.T) {
		var f FlexDate
		before := time.Now()
		got := f.OrNow()
		assert.False(t, got.Before(before))
	})
}

func TestFlexFieldsInsideStruct(t *testing.T) {
	// The whole point of the flex types: a sloppy payload still binds.
	var req struct {
		Order  FlexInt   `json:"order"`
		Active FlexBool  `json:"active"`
		Amount FlexFloat `json:"amount"`
		Date   FlexDate  `json:"date"`
	}
	payload := `{"order": "3", "active": "1", "amount": "12.50", "date": "garbage"}`
	assert.NoError(t, json.Unmarshal([]byte(payload), &req))
	assert.Equal(t, 3, int(req.Order))
	assert.True(t, bool(req.Active))
	assert.Equal(t, 12.5, float64(req.Amount))
	assert.False(t, req.Date.Valid)
}
