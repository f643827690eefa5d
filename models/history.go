package models

import (
	"time"

	"github.com/doug-martin/goqu/v9"
)

type HistoryMilestone struct {
	History_Milestone_ID int       `json:"historyMilestoneId" db:"history_milestone_id" goqu:"skipinsert"`
	Year                 int       `json:"year" db:"year"`
	Title                string    `json:"title" db:"title"`
	Description          string    `json:"description" db:"description"`
	Image_URL            string    `json:"imageUrl" db:"image_url"`
	Created_By           int       `json:"createdBy" db:"created_by"`
	Author_Name          string    `json:"authorName" db:"author_name"`
	Datetime_Create      time.Time `json:"datetimeCreate" db:"datetime_create"`
	Updated_By           int       `json:"updatedBy" db:"updated_by"`
	Datetime_Update      time.Time `json:"datetimeUpdate" db:"datetime_update"`
}

type HistoryMilestoneCreate struct {
	Year        FlexInt `json:"year"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image_URL   string  `json:"imageUrl"`
}

type HistoryMilestoneUpdate struct {
	Year        *FlexInt `json:"year"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Image_URL   *string  `json:"imageUrl"`
}

func (u HistoryMilestoneUpdate) Record() goqu.Record {
	r := goqu.Record{}
	if u.Year != nil {
		r["year"] = int(*u.Year)
	}
	if u.Title != nil {
		r["title"] = *u.Title
	}
	if u.Description != nil {
		r["description"] = *u.Description
	}
	if u.Image_URL != nil {
		r["image_url"] = *u.Image_URL
	}
	return r
}

type HistoryMilestoneResponse struct {
	History_Milestone_ID int    `json:"id"`
	Year                 int    `json:"year"`
	Title                string `json:"title"`
	Description          string `json:"description"`
	Image_URL            string `json:"imageUrl"`
	Created_By           int    `json:"createdBy"`
	Author_Name          string `json:"authorName"`
	Created_At           string `json:"createdAt"`
	Updated_At           string `json:"updatedAt"`
}

func (m HistoryMilestone) Shape() HistoryMilestoneResponse {
	return HistoryMilestoneResponse{
		History_Milestone_ID: m.History_Milestone_ID,
		Year:                 m.Year,
		Title:                m.Title,
		Description:          m.Description,
		Image_URL:            m.Image_URL,
		Created_By:           m.Created_By,
		Author_Name:          m.Author_Name,
		Created_At:           FormatTime(m.Datetime_Create),
		Updated_At:           FormatTime(m.Datetime_Update),
	}
}

type HistoryChapter struct {
	History_Chapter_ID int       `json:"historyChapterId" db:"history_chapter_id" goqu:"skipinsert"`
	Title              string    `json:"title" db:"title"`
	Body               string    `json:"body" db:"body"`
	Chapter_Order      int       `json:"chapterOrder" db:"chapter_order"`
	Image_URL          string    `json:"imageUrl" db:"image_url"`
	Created_By         int       `json:"createdBy" db:"created_by"`
	Author_Name        string    `json:"authorName" db:"author_name"`
	Datetime_Create    time.Time `json:"datetimeCreate" db:"datetime_create"`
	Updated_By         int       `json:"updatedBy" db:"updated_by"`
	Datetime_Update    time.Time `json:"datetimeUpdate" db:"datetime_update"`
}

type HistoryChapterCreate struct {
	Title         string  `json:"title"`
	Body          string  `json:"body"`
	Chapter_Order FlexInt `json:"chapterOrder"`
	Image_URL     string  `json:"imageUrl"`
}

type HistoryChapterUpdate struct {
	Title         *string  `json:"title"`
	Body          *string  `json:"body"`
	Chapter_Order *FlexInt `json:"chapterOrder"`
	Image_URL     *string  `json:"imageUrl"`
}

func (u HistoryChapterUpdate) Record() goqu.Record {
	r := goqu.Record{}
	if u.Title != nil {
		r["title"] = *u.Title
	}
	if u.Body != nil {
		r["body"] = *u.Body
	}
	if u.Chapter_Order != nil {
		r["chapter_order"] = int(*u.Chapter_Order)
	}
	if u.Image_URL != nil {
		r["image_url"] = *u.Image_URL
	}
	return r
}

type HistoryChapterResponse struct {
	History_Chapter_ID int               `json:"id"`
	Title              string            `json:"title"`
	Body               string            `json:"body"`
	Chapter_Order      int               `json:"chapterOrder"`
	Image_URL          string            `json:"imageUrl"`
	Comments           []CommentResponse `json:"comments"`
	Created_By         int               `json:"createdBy"`
	Author_Name        string            `json:"authorName"`
	Created_At         string            `json:"createdAt"`
	Updated_At         string            `json:"updatedAt"`
}

func (h HistoryChapter) Shape() HistoryChapterResponse {
	return HistoryChapterResponse{
		History_Chapter_ID: h.History_Chapter_ID,
		Title:              h.Title,
		Body:               h.Body,
		Chapter_Order:      h.Chapter_Order,
		Image_URL:          h.Image_URL,
		Comments:           []CommentResponse{},
		Created_By:         h.Created_By,
		Author_Name:        h.Author_Name,
		Created_At:         FormatTime(h.Datetime_Create),
		Updated_At:         FormatTime(h.Datetime_Update),
	}
}
