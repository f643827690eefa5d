package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ChurchCMS/initializers"
	"github.com/ChurchCMS/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
)

// commentParentColumns maps the caller-supplied discriminator to the
// nullable foreign-key column holding that parent. Unknown discriminators
// are rejected before any persistence call.
var commentParentColumns = map[string]string{
	"sermon":        "sermon_id",
	"event":         "event_id",
	"blogpost":      "blog_post_id",
	"news":          "news_item_id",
	"chapter":       "history_chapter_id",
	"prayerrequest": "prayer_request_id",
}

func GetComments(c *gin.Context) {
	parentColumn, ok := commentParentColumns[c.Param("parentType")]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown parent type"})
		return
	}

	parentID, err := strconv.Atoi(c.Param("parentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parent ID"})
		return
	}

	var comments []models.Comment
	err = initializers.DB.From("comment").
		Where(goqu.C(parentColumn).Eq(parentID)).
		Order(goqu.I("datetime_create").Desc()).
		ScanStructs(&comments)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	shaped := make([]models.CommentResponse, 0, len(comments))
	for _, cm := range comments {
		shaped = append(shaped, cm.Shape())
	}

	c.JSON(http.StatusOK, shaped)
}

func CreateComment(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var req models.CommentCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parentColumn, ok := commentParentColumns[req.Parent_Type]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown parent type"})
		return
	}

	if req.Comment_Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is required"})
		return
	}

	parentID := int(req.Parent_ID)
	if parentID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parent ID"})
		return
	}

	now := time.Now()
	record := goqu.Record{
		parentColumn:      parentID,
		"author_name":     user.DisplayName(),
		"comment_text":    req.Comment_Text,
		"created_by":      user.User_Profile_ID,
		"datetime_create": now,
		"updated_by":      user.User_Profile_ID,
		"datetime_update": now,
	}

	var insertedID int
	_, err := initializers.DB.Insert("comment").
		Rows(record).
		Returning("comment_id").
		Executor().ScanVal(&insertedID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	var comment models.Comment
	found, err := initializers.DB.From("comment").
		Where(goqu.C("comment_id").Eq(insertedID)).
		ScanStruct(&comment)
	if err != nil || !found {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch created comment"})
		return
	}

	c.JSON(http.StatusCreated, comment.Shape())
}

func DeleteComment(c *gin.Context) {
	commentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	result, err := initializers.DB.Delete("comment").
		Where(goqu.C("comment_id").Eq(commentID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
