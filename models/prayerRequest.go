package models

import (
	"time"

	"github.com/doug-martin/goqu/v9"
)

const (
	PrayerRequestStatusActive   = "active"
	PrayerRequestStatusAnswered = "answered"
	PrayerRequestStatusArchived = "archived"

	VisibilityPublic  = "public"
	VisibilityMembers = "members"
	VisibilityPrivate = "private"
)

func ValidPrayerRequestStatus(s string) bool {
	return s == PrayerRequestStatusActive || s == PrayerRequestStatusAnswered || s == PrayerRequestStatusArchived
}

func ValidVisibility(v string) bool {
	return v == VisibilityPublic || v == VisibilityMembers || v == VisibilityPrivate
}

type PrayerRequest struct {
	Prayer_Request_ID int       `json:"prayerRequestId" db:"prayer_request_id" goqu:"skipinsert"`
	Title             string    `json:"title" db:"title"`
	Body              string    `json:"body" db:"body"`
	Is_Anonymous      bool      `json:"isAnonymous" db:"is_anonymous"`
	Visibility        string    `json:"visibility" db:"visibility"`
	Status            string    `json:"status" db:"status"`
	Prayer_Count      int       `json:"prayerCount" db:"prayer_count" goqu:"skipinsert"`
	Created_By        int       `json:"createdBy" db:"created_by"`
	Author_Name       string    `json:"authorName" db:"author_name"`
	Datetime_Create   time.Time `json:"datetimeCreate" db:"datetime_create"`
	Updated_By        int       `json:"updatedBy" db:"updated_by"`
	Datetime_Update   time.Time `json:"datetimeUpdate" db:"datetime_update"`
}

type PrayerRequestCreate struct {
	Title        string   `json:"title"`
	Body         string   `json:"body"`
	Is_Anonymous FlexBool `json:"isAnonymous"`
	Visibility   string   `json:"visibility"`
}

type PrayerRequestUpdate struct {
	Title        *string   `json:"title"`
	Body         *string   `json:"body"`
	Is_Anonymous *FlexBool `json:"isAnonymous"`
	Visibility   *string   `json:"visibility"`
}

func (u PrayerRequestUpdate) Record() goqu.Record {
	r := goqu.Record{}
	if u.Title != nil {
		r["title"] = *u.Title
	}
	if u.Body != nil {
		r["body"] = *u.Body
	}
	if u.Is_Anonymous != nil {
		r["is_anonymous"] = bool(*u.Is_Anonymous)
	}
	if u.Visibility != nil {
		r["visibility"] = *u.Visibility
	}
	return r
}

type PrayerRequestResponse struct {
	Prayer_Request_ID int               `json:"id"`
	Title             string            `json:"title"`
	Body              string            `json:"body"`
	Is_Anonymous      bool              `json:"isAnonymous"`
	Visibility        string            `json:"visibility"`
	Status            string            `json:"status"`
	Prayer_Count      int               `json:"prayerCount"`
	Comments          []CommentResponse `json:"comments"`
	Created_By        int               `json:"createdBy"`
	Author_Name       string            `json:"authorName"`
	Created_At        string            `json:"createdAt"`
	Updated_At        string            `json:"updatedAt"`
}

func (p PrayerRequest) Shape() PrayerRequestResponse {
	authorName := p.Author_Name
	if p.Is_Anonymous {
		authorName = "Anonymous"
	}

	return PrayerRequestResponse{
		Prayer_Request_ID: p.Prayer_Request_ID,
		Title:             p.Title,
		Body:              p.Body,
		Is_Anonymous:      p.Is_Anonymous,
		Visibility:        p.Visibility,
		Status:            p.Status,
		Prayer_Count:      p.Prayer_Count,
		Comments:          []CommentResponse{},
		Created_By:        p.Created_By,
		Author_Name:       authorName,
		Created_At:        FormatTime(p.Datetime_Create),
		Updated_At:        FormatTime(p.Datetime_Update),
	}
}

// Prayer is the "I prayed for this" join row; (user, request) is unique.
type Prayer struct {
	Prayer_ID         int       `json:"prayerId" db:"prayer_id" goqu:"skipinsert"`
	Prayer_Request_ID int       `json:"prayerRequestId" db:"prayer_request_id"`
	User_Profile_ID   int       `json:"userProfileId" db:"user_profile_id"`
	Datetime_Create   time.Time `json:"datetimeCreate" db:"datetime_create"`
}
