package models

import (
	"time"

	"github.com/doug-martin/goqu/v9"
)

type Ministry struct {
	Ministry_ID     int       `json:"ministryId" db:"ministry_id" goqu:"skipinsert"`
	Name            string    `json:"name" db:"name"`
	Description     string    `json:"description" db:"description"`
	Leader_Name     string    `json:"leaderName" db:"leader_name"`
	Contact_Email   string    `json:"contactEmail" db:"contact_email"`
	Meeting_Time    string    `json:"meetingTime" db:"meeting_time"`
	Image_URL       string    `json:"imageUrl" db:"image_url"`
	Created_By      int       `json:"createdBy" db:"created_by"`
	Author_Name     string    `json:"authorName" db:"author_name"`
	Datetime_Create time.Time `json:"datetimeCreate" db:"datetime_create"`
	Updated_By      int       `json:"updatedBy" db:"updated_by"`
	Datetime_Update time.Time `json:"datetimeUpdate" db:"datetime_update"`
}

type MinistryCreate struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Leader_Name   string `json:"leaderName"`
	Contact_Email string `json:"contactEmail"`
	Meeting_Time  string `json:"meetingTime"`
	Image_URL     string `json:"imageUrl"`
}

type MinistryUpdate struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Leader_Name   *string `json:"leaderName"`
	Contact_Email *string `json:"contactEmail"`
	Meeting_Time  *string `json:"meetingTime"`
	Image_URL     *string `json:"imageUrl"`
}

func (u MinistryUpdate) Record() goqu.Record {
	r := goqu.Record{}
	if u.Name != nil {
		r["name"] = *u.Name
	}
	if u.Description != nil {
		r["description"] = *u.Description
	}
	if u.Leader_Name != nil {
		r["leader_name"] = *u.Leader_Name
	}
	if u.Contact_Email != nil {
		r["contact_email"] = *u.Contact_Email
	}
	if u.Meeting_Time != nil {
		r["meeting_time"] = *u.Meeting_Time
	}
	if u.Image_URL != nil {
		r["image_url"] = *u.Image_URL
	}
	return r
}

type MinistryResponse struct {
	Ministry_ID   int    `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Leader_Name   string `json:"leaderName"`
	Contact_Email string `json:"contactEmail"`
	Meeting_Time  string `json:"meetingTime"`
	Image_URL     string `json:"imageUrl"`
	Created_By    int    `json:"createdBy"`
	Author_Name   string `json:"authorName"`
	Created_At    string `json:"createdAt"`
	Updated_At    string `json:"updatedAt"`
}

func (m Ministry) Shape() MinistryResponse {
	return MinistryResponse{
		Ministry_ID:   m.Ministry_ID,
		Name:          m.Name,
		Description:   m.Description,
		Leader_Name:   m.Leader_Name,
		Contact_Email: m.Contact_Email,
		Meeting_Time:  m.Meeting_Time,
		Image_URL:     m.Image_URL,
		Created_By:    m.Created_By,
		Author_Name:   m.Author_Name,
		Created_At:    FormatTime(m.Datetime_Create),
		Updated_At:    FormatTime(m.Datetime_Update),
	}
}
