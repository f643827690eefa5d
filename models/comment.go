package models

import "time"

// Comment belongs to exactly one parent record; exactly one of the foreign
// keys is set, selected by the caller-supplied parent type.
type Comment struct {
	Comment_ID         int       `json:"commentId" db:"comment_id" goqu:"skipinsert"`
	Sermon_ID          *int      `json:"-" db:"sermon_id"`
	Event_ID           *int      `json:"-" db:"event_id"`
	Blog_Post_ID       *int      `json:"-" db:"blog_post_id"`
	News_Item_ID       *int      `json:"-" db:"news_item_id"`
	History_Chapter_ID *int      `json:"-" db:"history_chapter_id"`
	Prayer_Request_ID  *int      `json:"-" db:"prayer_request_id"`
	Author_Name        string    `json:"authorName" db:"author_name"`
	Comment_Text       string    `json:"commentText" db:"comment_text"`
	Created_By         int       `json:"createdBy" db:"created_by"`
	Datetime_Create    time.Time `json:"datetimeCreate" db:"datetime_create"`
	Updated_By         int       `json:"updatedBy" db:"updated_by"`
	Datetime_Update    time.Time `json:"datetimeUpdate" db:"datetime_update"`
}

type CommentCreate struct {
	Parent_Type  string  `json:"parentType"`
	Parent_ID    FlexInt `json:"parentId"`
	Comment_Text string  `json:"commentText"`
}

type CommentResponse struct {
	Comment_ID   int    `json:"id"`
	Parent_Type  string `json:"parentType"`
	Parent_ID    int    `json:"parentId"`
	Author_Name  string `json:"authorName"`
	Comment_Text string `json:"commentText"`
	Created_At   string `json:"createdAt"`
	Updated_At   string `json:"updatedAt"`
}

func (cm Comment) Shape() CommentResponse {
	parentType, parentID := "", 0
	switch {
	case cm.Sermon_ID != nil:
		parentType, parentID = "sermon", *cm.Sermon_ID
	case cm.Event_ID != nil:
		parentType, parentID = "event", *cm.Event_ID
	case cm.Blog_Post_ID != nil:
		parentType, parentID = "blogpost", *cm.Blog_Post_ID
	case cm.News_Item_ID != nil:
		parentType, parentID = "news", *cm.News_Item_ID
	case cm.History_Chapter_ID != nil:
		parentType, parentID = "chapter", *cm.History_Chapter_ID
	case cm.Prayer_Request_ID != nil:
		parentType, parentID = "prayerrequest", *cm.Prayer_Request_ID
	}

	return CommentResponse{
		Comment_ID:   cm.Comment_ID,
		Parent_Type:  parentType,
		Parent_ID:    parentID,
		Author_Name:  cm.Author_Name,
		Comment_Text: cm.Comment_Text,
		Created_At:   FormatTime(cm.Datetime_Create),
		Updated_At:   FormatTime(cm.Datetime_Update),
	}
}
