package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	loc := time.FixedZone("EST", -5*3600)
	local := time.Date(2025, 3, 9, 10, 30, 0, 0, loc)
	assert.Equal(t, "2025-03-09T15:30:00Z", FormatTime(local))
}

func TestFormatTimePtr(t *testing.T) {
	assert.Nil(t, FormatTimePtr(nil))

	ts := time.Date(2025, 3, 9, 10, 30, 0, 0, time.UTC)
	got := FormatTimePtr(&ts)
	assert.NotNil(t, got)
	assert.Equal(t, "2025-03-09T10:30:00Z", *got)
}

func TestStringsOrEmpty(t *testing.T) {
	assert.Equal(t, []string{}, StringsOrEmpty(nil))
	assert.Equal(t, []string{"a.jpg"}, StringsOrEmpty(pq.StringArray{"a.jpg"}))
}

func TestSermonShape(t *testing.T) {
	now := time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)
	s := Sermon{
		Sermon_ID:       4,
		Title:           "Walking by Faith",
		Likes:           2,
		Datetime_Create: now,
		Datetime_Update: now,
	}

	shaped := s.Shape()
	assert.Equal(t, "/sermons/4", shaped.Link_Path)
	assert.Nil(t, shaped.Date)
	assert.Equal(t, []string{}, shaped.Media_URLs)
	assert.Equal(t, []CommentResponse{}, shaped.Comments)

	// nil slices must still serialize as [], not null
	data, err := json.Marshal(shaped)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"mediaUrls":[]`)
	assert.Contains(t, string(data), `"comments":[]`)
}

func TestCommentShapeDerivesParent(t *testing.T) {
	id := 7
	now := time.Now()

	tests := []struct {
		name       string
		comment    Comment
		parentType string
	}{
		{"sermon", Comment{Sermon_ID: &id}, "sermon"},
		{"event", Comment{Event_ID: &id}, "event"},
		{"blogpost", Comment{Blog_Post_ID: &id}, "blogpost"},
		{"news", Comment{News_Item_ID: &id}, "news"},
		{"chapter", Comment{History_Chapter_ID: &id}, "chapter"},
		{"prayerrequest", Comment{Prayer_Request_ID: &id}, "prayerrequest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.comment.Datetime_Create = now
			tt.comment.Datetime_Update = now
			shaped := tt.comment.Shape()
			assert.Equal(t, tt.parentType, shaped.Parent_Type)
			assert.Equal(t, 7, shaped.Parent_ID)
		})
	}
}

func TestUserShapeHidesPassword(t *testing.T) {
	u := UserProfile{
		User_Profile_ID: 1,
		Email:           "test@example.com",
		Password:        "hashed-secret",
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}

	data, err := json.Marshal(u.Shape())
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "hashed-secret")

	// the raw model hides it too
	data, err = json.Marshal(u)
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "hashed-secret")
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		user     UserProfile
		expected string
	}{
		{"full name", UserProfile{First_Name: "Jane", Last_Name: "Doe", Email: "j@x.com"}, "Jane Doe"},
		{"first only", UserProfile{First_Name: "Jane", Email: "j@x.com"}, "Jane"},
		{"email fallback", UserProfile{Email: "j@x.com"}, "j@x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.user.DisplayName())
		})
	}
}
