package models

import (
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type NewsItem struct {
	News_Item_ID    int            `json:"newsItemId" db:"news_item_id" goqu:"skipinsert"`
	Title           string         `json:"title" db:"title"`
	Body            string         `json:"body" db:"body"`
	News_Date       time.Time      `json:"newsDate" db:"news_date"`
	Image_URL       string         `json:"imageUrl" db:"image_url"`
	Media_URLs      pq.StringArray `json:"mediaUrls" db:"media_urls"`
	Likes           int            `json:"likes" db:"likes" goqu:"skipinsert"`
	Created_By      int            `json:"createdBy" db:"created_by"`
	Author_Name     string         `json:"authorName" db:"author_name"`
	Datetime_Create time.Time      `json:"datetimeCreate" db:"datetime_create"`
	Updated_By      int            `json:"updatedBy" db:"updated_by"`
	Datetime_Update time.Time      `json:"datetimeUpdate" db:"datetime_update"`
}

type NewsItemCreate struct {
	Title      string   `json:"title"`
	Body       string   `json:"body"`
	News_Date  FlexDate `json:"newsDate"`
	Image_URL  string   `json:"imageUrl"`
	Media_URLs []string `json:"mediaUrls"`
}

type NewsItemUpdate struct {
	Title      *string   `json:"title"`
	Body       *string   `json:"body"`
	News_Date  *FlexDate `json:"newsDate"`
	Image_URL  *string   `json:"imageUrl"`
	Media_URLs []string  `json:"mediaUrls"`
}

func (u NewsItemUpdate) Record() goqu.Record {
	r := goqu.Record{}
	if u.Title != nil {
		r["title"] = *u.Title
	}
	if u.Body != nil {
		r["body"] = *u.Body
	}
	if u.News_Date != nil {
		r["news_date"] = u.News_Date.OrNow()
	}
	if u.Image_URL != nil {
		r["image_url"] = *u.Image_URL
	}
	if u.Media_URLs != nil {
		r["media_urls"] = pq.StringArray(u.Media_URLs)
	}
	return r
}

type NewsItemResponse struct {
	News_Item_ID int               `json:"id"`
	Title        string            `json:"title"`
	Body         string            `json:"body"`
	News_Date    string            `json:"newsDate"`
	Image_URL    string            `json:"imageUrl"`
	Media_URLs   []string          `json:"mediaUrls"`
	Likes        int               `json:"likes"`
	Link_Path    string            `json:"linkPath"`
	Comments     []CommentResponse `json:"comments"`
	Created_By   int               `json:"createdBy"`
	Author_Name  string            `json:"authorName"`
	Created_At   string            `json:"createdAt"`
	Updated_At   string            `json:"updatedAt"`
}

func (n NewsItem) Shape() NewsItemResponse {
	return NewsItemResponse{
		News_Item_ID: n.News_Item_ID,
		Title:        n.Title,
		Body:         n.Body,
		News_Date:    FormatTime(n.News_Date),
		Image_URL:    n.Image_URL,
		Media_URLs:   StringsOrEmpty(n.Media_URLs),
		Likes:        n.Likes,
		Link_Path:    fmt.Sprintf("/news/%d", n.News_Item_ID),
		Comments:     []CommentResponse{},
		Created_By:   n.Created_By,
		Author_Name:  n.Author_Name,
		Created_At:   FormatTime(n.Datetime_Create),
		Updated_At:   FormatTime(n.Datetime_Update),
	}
}
