package models

import (
	"time"

	"github.com/doug-martin/goqu/v9"
)

// AboutSection rows flagged is_core cannot be deleted, and their display
// order is pinned: a client-submitted displayOrder is dropped on update.
type AboutSection struct {
	About_Section_ID int       `json:"aboutSectionId" db:"about_section_id" goqu:"skipinsert"`
	Title            string    `json:"title" db:"title"`
	Body             string    `json:"body" db:"body"`
	Image_URL        string    `json:"imageUrl" db:"image_url"`
	Display_Order    int       `json:"displayOrder" db:"display_order"`
	Is_Core          bool      `json:"isCore" db:"is_core"`
	Created_By       int       `json:"createdBy" db:"created_by"`
	Author_Name      string    `json:"authorName" db:"author_name"`
	Datetime_Create  time.Time `json:"datetimeCreate" db:"datetime_create"`
	Updated_By       int       `json:"updatedBy" db:"updated_by"`
	Datetime_Update  time.Time `json:"datetimeUpdate" db:"datetime_update"`
}

type AboutSectionCreate struct {
	Title         string   `json:"title"`
	Body          string   `json:"body"`
	Image_URL     string   `json:"imageUrl"`
	Display_Order FlexInt  `json:"displayOrder"`
	Is_Core       FlexBool `json:"isCore"`
}

type AboutSectionUpdate struct {
	Title         *string  `json:"title"`
	Body          *string  `json:"body"`
	Image_URL     *string  `json:"imageUrl"`
	Display_Order *FlexInt `json:"displayOrder"`
}

func (u AboutSectionUpdate) Record(isCore bool) goqu.Record {
	r := goqu.Record{}
	if u.Title != nil {
		r["title"] = *u.Title
	}
	if u.Body != nil {
		r["body"] = *u.Body
	}
	if u.Image_URL != nil {
		r["image_url"] = *u.Image_URL
	}
	if u.Display_Order != nil && !isCore {
		r["display_order"] = int(*u.Display_Order)
	}
	return r
}

type AboutSectionResponse struct {
	About_Section_ID int    `json:"id"`
	Title            string `json:"title"`
	Body             string `json:"body"`
	Image_URL        string `json:"imageUrl"`
	Display_Order    int    `json:"displayOrder"`
	Is_Core          bool   `json:"isCore"`
	Created_By       int    `json:"createdBy"`
	Author_Name      string `json:"authorName"`
	Created_At       string `json:"createdAt"`
	Updated_At       string `json:"updatedAt"`
}

func (a AboutSection) Shape() AboutSectionResponse {
	return AboutSectionResponse{
		About_Section_ID: a.About_Section_ID,
		Title:            a.Title,
		Body:             a.Body,
		Image_URL:        a.Image_URL,
		Display_Order:    a.Display_Order,
		Is_Core:          a.Is_Core,
		Created_By:       a.Created_By,
		Author_Name:      a.Author_Name,
		Created_At:       FormatTime(a.Datetime_Create),
		Updated_At:       FormatTime(a.Datetime_Update),
	}
}
