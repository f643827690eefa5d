package models

import (
	"time"

	"github.com/doug-martin/goqu/v9"
)

type HomeSlide struct {
	Home_Slide_ID   int       `json:"homeSlideId" db:"home_slide_id" goqu:"skipinsert"`
	Title           string    `json:"title" db:"title"`
	Subtitle        string    `json:"subtitle" db:"subtitle"`
	Image_URL       string    `json:"imageUrl" db:"image_url"`
	Link_URL        string    `json:"linkUrl" db:"link_url"`
	Display_Order   int       `json:"displayOrder" db:"display_order"`
	Created_By      int       `json:"createdBy" db:"created_by"`
	Author_Name     string    `json:"authorName" db:"author_name"`
	Datetime_Create time.Time `json:"datetimeCreate" db:"datetime_create"`
	Updated_By      int       `json:"updatedBy" db:"updated_by"`
	Datetime_Update time.Time `json:"datetimeUpdate" db:"datetime_update"`
}

type HomeSlideCreate struct {
	Title         string  `json:"title"`
	Subtitle      string  `json:"subtitle"`
	Image_URL     string  `json:"imageUrl"`
	Link_URL      string  `json:"linkUrl"`
	Display_Order FlexInt `json:"displayOrder"`
}

type HomeSlideUpdate struct {
	Title         *string  `json:"title"`
	Subtitle      *string  `json:"subtitle"`
	Image_URL     *string  `json:"imageUrl"`
	Link_URL      *string  `json:"linkUrl"`
	Display_Order *FlexInt `json:"displayOrder"`
}

func (u HomeSlideUpdate) Record() goqu.Record {
	r := goqu.Record{}
	if u.Title != nil {
		r["title"] = *u.Title
	}
	if u.Subtitle != nil {
		r["subtitle"] = *u.Subtitle
	}
	if u.Image_URL != nil {
		r["image_url"] = *u.Image_URL
	}
	if u.Link_URL != nil {
		r["link_url"] = *u.Link_URL
	}
	if u.Display_Order != nil {
		r["display_order"] = int(*u.Display_Order)
	}
	return r
}

type HomeSlideResponse struct {
	Home_Slide_ID int    `json:"id"`
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	Image_URL     string `json:"imageUrl"`
	Link_URL      string `json:"linkUrl"`
	Display_Order int    `json:"displayOrder"`
	Created_By    int    `json:"createdBy"`
	Author_Name   string `json:"authorName"`
	Created_At    string `json:"createdAt"`
	Updated_At    string `json:"updatedAt"`
}

func (h HomeSlide) Shape() HomeSlideResponse {
	return HomeSlideResponse{
		Home_Slide_ID: h.Home_Slide_ID,
		Title:         h.Title,
		Subtitle:      h.Subtitle,
		Image_URL:     h.Image_URL,
		Link_URL:      h.Link_URL,
		Display_Order: h.Display_Order,
		Created_By:    h.Created_By,
		Author_Name:   h.Author_Name,
		Created_At:    FormatTime(h.Datetime_Create),
		Updated_At:    FormatTime(h.Datetime_Update),
	}
}
