package models

import (
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type Sermon struct {
	Sermon_ID       int            `json:"sermonId" db:"sermon_id" goqu:"skipinsert"`
	Title           string         `json:"title" db:"title"`
	Speaker         string         `json:"speaker" db:"speaker"`
	Description     string         `json:"description" db:"description"`
	Scripture       string         `json:"scripture" db:"scripture"`
	Date            *time.Time     `json:"date" db:"date"`
	Video_URL       string         `json:"videoUrl" db:"video_url"`
	Audio_URL       string         `json:"audioUrl" db:"audio_url"`
	Media_URLs      pq.StringArray `json:"mediaUrls" db:"media_urls"`
	Category        string         `json:"category" db:"category"`
	Likes           int            `json:"likes" db:"likes" goqu:"skipinsert"`
	Created_By      int            `json:"createdBy" db:"created_by"`
	Author_Name     string         `json:"authorName" db:"author_name"`
	Datetime_Create time.Time      `json:"datetimeCreate" db:"datetime_create"`
	Updated_By      int            `json:"updatedBy" db:"updated_by"`
	Datetime_Update time.Time      `json:"datetimeUpdate" db:"datetime_update"`
}

type SermonCreate struct {
	Title       string   `json:"title"`
	Speaker     string   `json:"speaker"`
	Description string   `json:"description"`
	Scripture   string   `json:"scripture"`
	Date        FlexDate `json:"date"`
	Video_URL   string   `json:"videoUrl"`
	Audio_URL   string   `json:"audioUrl"`
	Media_URLs  []string `json:"mediaUrls"`
	Category    string   `json:"category"`
}

type SermonUpdate struct {
	Title       *string   `json:"title"`
	Speaker     *string   `json:"speaker"`
	Description *string   `json:"description"`
	Scripture   *string   `json:"scripture"`
	Date        *FlexDate `json:"date"`
	Video_URL   *string   `json:"videoUrl"`
	Audio_URL   *string   `json:"audioUrl"`
	Media_URLs  []string  `json:"mediaUrls"`
	Category    *string   `json:"category"`
}

// Record maps only the supplied fields onto SET columns.
func (u SermonUpdate) Record() goqu.Record {
	r := goqu.Record{}
	if u.Title != nil {
		r["title"] = *u.Title
	}
	if u.Speaker != nil {
		r["speaker"] = *u.Speaker
	}
	if u.Description != nil {
		r["description"] = *u.Description
	}
	if u.Scripture != nil {
		r["scripture"] = *u.Scripture
	}
	if u.Date != nil {
		r["date"] = u.Date.OrNil()
	}
	if u.Video_URL != nil {
		r["video_url"] = *u.Video_URL
	}
	if u.Audio_URL != nil {
		r["audio_url"] = *u.Audio_URL
	}
	if u.Media_URLs != nil {
		r["media_urls"] = pq.StringArray(u.Media_URLs)
	}
	if u.Category != nil {
		r["category"] = *u.Category
	}
	return r
}

type SermonResponse struct {
	Sermon_ID   int               `json:"id"`
	Title       string            `json:"title"`
	Speaker     string            `json:"speaker"`
	Description string            `json:"description"`
	Scripture   string            `json:"scripture"`
	Date        *string           `json:"date"`
	Video_URL   string            `json:"videoUrl"`
	Audio_URL   string            `json:"audioUrl"`
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

func (s Sermon) Shape() SermonResponse {
	return SermonResponse{
		Sermon_ID:   s.Sermon_ID,
		Title:       s.Title,
		Speaker:     s.Speaker,
		Description: s.Description,
		Scripture:   s.Scripture,
		Date:        FormatTimePtr(s.Date),
		Video_URL:   s.Video_URL,
		Audio_URL:   s.Audio_URL,
		Media_URLs:  StringsOrEmpty(s.Media_URLs),
		Category:    s.Category,
		Likes:       s.Likes,
		Link_Path:   fmt.Sprintf("/sermons/%d", s.Sermon_ID),
		Comments:    []CommentResponse{},
		Created_By:  s.Created_By,
		Author_Name: s.Author_Name,
		Created_At:  FormatTime(s.Datetime_Create),
		Updated_At:  FormatTime(s.Datetime_Update),
	}
}
