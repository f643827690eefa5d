package models

import (
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type BlogPost struct {
	Blog_Post_ID    int            `json:"blogPostId" db:"blog_post_id" goqu:"skipinsert"`
	Title           string         `json:"title" db:"title"`
	Content         string         `json:"content" db:"content"`
	Post_Date       time.Time      `json:"postDate" db:"post_date"`
	Image_URL       string         `json:"imageUrl" db:"image_url"`
	Tags            pq.StringArray `json:"tags" db:"tags"`
	Category        string         `json:"category" db:"category"`
	Likes           int            `json:"likes" db:"likes" goqu:"skipinsert"`
	Created_By      int            `json:"createdBy" db:"created_by"`
	Author_Name     string         `json:"authorName" db:"author_name"`
	Datetime_Create time.Time      `json:"datetimeCreate" db:"datetime_create"`
	Updated_By      int            `json:"updatedBy" db:"updated_by"`
	Datetime_Update time.Time      `json:"datetimeUpdate" db:"datetime_update"`
}

type BlogPostCreate struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Post_Date FlexDate `json:"postDate"`
	Image_URL string   `json:"imageUrl"`
	Tags      []string `json:"tags"`
	Category  string   `json:"category"`
}

type BlogPostUpdate struct {
	Title     *string   `json:"title"`
	Content   *string   `json:"content"`
	Post_Date *FlexDate `json:"postDate"`
	Image_URL *string   `json:"imageUrl"`
	Tags      []string  `json:"tags"`
	Category  *string   `json:"category"`
}

func (u BlogPostUpdate) Record() goqu.Record {
	r := goqu.Record{}
	if u.Title != nil {
		r["title"] = *u.Title
	}
	if u.Content != nil {
		r["content"] = *u.Content
	}
	if u.Post_Date != nil {
		r["post_date"] = u.Post_Date.OrNow()
	}
	if u.Image_URL != nil {
		r["image_url"] = *u.Image_URL
	}
	if u.Tags != nil {
		r["tags"] = pq.StringArray(u.Tags)
	}
	if u.Category != nil {
		r["category"] = *u.Category
	}
	return r
}

type BlogPostResponse struct {
	Blog_Post_ID int               `json:"id"`
	Title        string            `json:"title"`
	Content      string            `json:"content"`
	Post_Date    string            `json:"postDate"`
	Image_URL    string            `json:"imageUrl"`
	Tags         []string          `json:"tags"`
	Category     string            `json:"category"`
	Likes        int               `json:"likes"`
	Link_Path    string            `json:"linkPath"`
	Comments     []CommentResponse `json:"comments"`
	Created_By   int               `json:"createdBy"`
	Author_Name  string            `json:"authorName"`
	Created_At   string            `json:"createdAt"`
	Updated_At   string            `json:"updatedAt"`
}

func (b BlogPost) Shape() BlogPostResponse {
	return BlogPostResponse{
		Blog_Post_ID: b.Blog_Post_ID,
		Title:        b.Title,
		Content:      b.Content,
		Post_Date:    FormatTime(b.Post_Date),
		Image_URL:    b.Image_URL,
		Tags:         StringsOrEmpty(b.Tags),
		Category:     b.Category,
		Likes:        b.Likes,
		Link_Path:    fmt.Sprintf("/blog/%d", b.Blog_Post_ID),
		Comments:     []CommentResponse{},
		Created_By:   b.Created_By,
		Author_Name:  b.Author_Name,
		Created_At:   FormatTime(b.Datetime_Create),
		Updated_At:   FormatTime(b.Datetime_Update),
	}
}
