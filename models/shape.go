package models

import (
	"time"

	"github.com/lib/pq"
)

// All timestamps leave the API in this form.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func FormatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTime(*t)
	return &s
}

// StringsOrEmpty maps a NULL array column to an empty JSON array.
func StringsOrEmpty(a pq.StringArray) []string {
	if a == nil {
		return []string{}
	}
	return []string(a)
}
