package models

import (
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type Event struct {
	Event_ID        int            `json:"eventId" db:"event_id" goqu:"skipinsert"`
	Title           string         `json:"title" db:"title"`
	Description     string         `json:"description" db:"description"`
	Event_Date      *time.Time     `json:"eventDate" db:"event_date"`
	Location        string         `json:"location" db:"location"`
	Image_URL       string         `json:"imageUrl" db:"image_url"`
	Media_URLs      pq.StringArray `json:"mediaUrls" db:"media_urls"`
	Category        string         `json:"category" db:"category"`
	Likes           int            `json:"likes" db:"likes" goqu:"skipinsert"`
	Created_By      int            `json:"createdBy" db:"created_by"`
	Author_Name     string         `json:"authorName" db:"author_name"`
	Datetime_Create time.Time      `json:"datetimeCreate" db:"datetime_create"`
	Updated_By      int            `json:"updatedBy" db:"updated_by"`
	Datetime_Update time.Time      `json:"datetimeUpdate" db:"datetime_update"`
}

type EventCreate struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Event_Date  FlexDate `json:"eventDate"`
	Location    string   `json:"location"`
	Image_URL   string   `json:"imageUrl"`
	Media_URLs  []string `json:"mediaUrls"`
	Category    string   `json:"category"`
}

type EventUpdate struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Event_Date  *FlexDate `json:"eventDate"`
	Location    *string   `json:"location"`
	Image_URL   *string   `json:"imageUrl"`
	Media_URLs  []string  `json:"mediaUrls"`
	Category    *string   `json:"category"`
}

func (u EventUpdate) Record() goqu.Record {
	r := goqu.Record{}
	if u.Title != nil {
		r["title"] = *u.Title
	}
	if u.Description != nil {
		r["description"] = *u.Description
	}
	if u.Event_Date != nil {
		r["event_date"] = u.Event_Date.OrNil()
	}
	if u.Location != nil {
		r["location"] = *u.Location
	}
	if u.Image_URL != nil {
		r["image_url"] = *u.Image_URL
	}
	if u.Media_URLs != nil {
		r["media_urls"] = pq.StringArray(u.Media_URLs)
	}
	if u.Category != nil {
		r["category"] = *u.Category
	}
	return r
}

type EventResponse struct {
	Event_ID    int               `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Event_Date  *string           `json:"eventDate"`
	Location    string            `json:"location"`
	Image_URL   string            `json:"imageUrl"`
	Media_URLs  []string          `json:"mediaUrls"`
	Category    string            `json:"category"`
	Likes       int               `json:"likes"`
	Link_Path   string            `json:"linkPath"`
	Comments    []CommentResponse `json:"comments"`
	Created_By  int               `json:"createdBy"`
	Author_Name string            `json:"authorName"`
	Created_At  string            `json:"createdAt"`
	Updated_At  string            `json:"updatedAt"`
}

func (e Event) Shape() EventResponse {
	return EventResponse{
		Event_ID:    e.Event_ID,
		Title:       e.Title,
		Description: e.Description,
		Event_Date:  FormatTimePtr(e.Event_Date),
		Location:    e.Location,
		Image_URL:   e.Image_URL,
		Media_URLs:  StringsOrEmpty(e.Media_URLs),
		Category:    e.Category,
		Likes:       e.Likes,
		Link_Path:   fmt.Sprintf("/events/%d", e.Event_ID),
		Comments:    []CommentResponse{},
		Created_By:  e.Created_By,
		Author_Name: e.Author_Name,
		Created_At:  FormatTime(e.Datetime_Create),
		Updated_At:  FormatTime(e.Datetime_Update),
	}
}
