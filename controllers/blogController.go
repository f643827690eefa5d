package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ChurchCMS/initializers"
	"github.com/ChurchCMS/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

func GetBlogPosts(c *gin.Context) {
	var posts []models.BlogPost
	err := initializers.DB.From("blog_post").
		Order(goqu.I("post_date").Desc()).
		ScanStructs(&posts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog posts"})
		return
	}

	shaped := make([]models.BlogPostResponse, 0, len(posts))
	for _, p := range posts {
		shaped = append(shaped, p.Shape())
	}

	c.JSON(http.StatusOK, shaped)
}

func GetBlogPost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog post ID"})
		return
	}

	var post models.BlogPost
	found, err := initializers.DB.From("blog_post").
		Where(goqu.C("blog_post_id").Eq(postID)).
		ScanStruct(&post)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog post"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
		return
	}

	c.JSON(http.StatusOK, post.Shape())
}

func CreateBlogPost(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var req models.BlogPostCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	now := time.Now()
	post := models.BlogPost{
		Title:           req.Title,
		Content:         req.Content,
		Post_Date:       req.Post_Date.OrNow(),
		Image_URL:       req.Image_URL,
		Tags:            pq.StringArray(req.Tags),
		Category:        req.Category,
		Created_By:      user.User_Profile_ID,
		Author_Name:     user.DisplayName(),
		Datetime_Create: now,
		Updated_By:      user.User_Profile_ID,
		Datetime_Update: now,
	}

	var insertedID int
	_, err := initializers.DB.Insert("blog_post").
		Rows(post).
		Returning("blog_post_id").
		Executor().ScanVal(&insertedID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blog post"})
		return
	}

	post.Blog_Post_ID = insertedID
	c.JSON(http.StatusCreated, post.Shape())
}

func UpdateBlogPost(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog post ID"})
		return
	}

	var req models.BlogPostUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := req.Record()
	record["updated_by"] = user.User_Profile_ID
	record["datetime_update"] = time.Now()

	result, err := initializers.DB.Update("blog_post").
		Set(record).
		Where(goqu.C("blog_post_id").Eq(postID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update blog post"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
		return
	}

	var post models.BlogPost
	found, err := initializers.DB.From("blog_post").
		Where(goqu.C("blog_post_id").Eq(postID)).
		ScanStruct(&post)
	if err != nil || !found {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated blog post"})
		return
	}

	c.JSON(http.StatusOK, post.Shape())
}

func DeleteBlogPost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog post ID"})
		return
	}

	result, err := initializers.DB.Delete("blog_post").
		Where(goqu.C("blog_post_id").Eq(postID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete blog post"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
