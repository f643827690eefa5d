package models

import (
	"time"

	"github.com/doug-martin/goqu/v9"
)

const (
	TestimonialStatusPending  = "pending"
	TestimonialStatusApproved = "approved"
	TestimonialStatusArchived = "archived"
)

func ValidTestimonialStatus(s string) bool {
	return s == TestimonialStatusPending || s == TestimonialStatusApproved || s == TestimonialStatusArchived
}

type Testimonial struct {
	Testimonial_ID  int       `json:"testimonialId" db:"testimonial_id" goqu:"skipinsert"`
	Title           string    `json:"title" db:"title"`
	Body            string    `json:"body" db:"body"`
	Visibility      string    `json:"visibility" db:"visibility"`
	Status          string    `json:"status" db:"status"`
	Likes           int       `json:"likes" db:"likes" goqu:"skipinsert"`
	Created_By      int       `json:"createdBy" db:"created_by"`
	Author_Name     string    `json:"authorName" db:"author_name"`
	Datetime_Create time.Time `json:"datetimeCreate" db:"datetime_create"`
	Updated_By      int       `json:"updatedBy" db:"updated_by"`
	Datetime_Update time.Time `json:"datetimeUpdate" db:"datetime_update"`
}

type TestimonialCreate struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	Visibility string `json:"visibility"`
}

type TestimonialUpdate struct {
	Title      *string `json:"title"`
	Body       *string `json:"body"`
	Visibility *string `json:"visibility"`
	Status     *string `json:"status"`
}

func (u TestimonialUpdate) Record() goqu.Record {
	r := goqu.Record{}
	if u.Title != nil {
		r["title"] = *u.Title
	}
	if u.Body != nil {
		r["body"] = *u.Body
	}
	if u.Visibility != nil {
		r["visibility"] = *u.Visibility
	}
	if u.Status != nil {
		r["status"] = *u.Status
	}
	return r
}

type TestimonialResponse struct {
	Testimonial_ID int    `json:"id"`
	Title          string `json:"title"`
	Body           string `json:"body"`
	Visibility     string `json:"visibility"`
	Status         string `json:"status"`
	Likes          int    `json:"likes"`
	Created_By     int    `json:"createdBy"`
	Author_Name    string `json:"authorName"`
	Created_At     string `json:"createdAt"`
	Updated_At     string `json:"updatedAt"`
}

func (t Testimonial) Shape() TestimonialResponse {
	return TestimonialResponse{
		Testimonial_ID: t.Testimonial_ID,
		Title:          t.Title,
		Body:           t.Body,
		Visibility:     t.Visibility,
		Status:         t.Status,
		Likes:          t.Likes,
		Created_By:     t.Created_By,
		Author_Name:    t.Author_Name,
		Created_At:     FormatTime(t.Datetime_Create),
		Updated_At:     FormatTime(t.Datetime_Update),
	}
}
