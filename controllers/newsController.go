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

func GetNewsItems(c *gin.Context) {
	var items []models.NewsItem
	err := initializers.DB.From("news_item").
		Order(goqu.I("news_date").Desc()).
		ScanStructs(&items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		return
	}

	shaped := make([]models.NewsItemResponse, 0, len(items))
	for _, n := range items {
		shaped = append(shaped, n.Shape())
	}

	c.JSON(http.StatusOK, shaped)
}

func GetNewsItem(c *gin.Context) {
	newsID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid news item ID"})
		return
	}

	var item models.NewsItem
	found, err := initializers.DB.From("news_item").
		Where(goqu.C("news_item_id").Eq(newsID)).
		ScanStruct(&item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news item"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "News item not found"})
		return
	}

	c.JSON(http.StatusOK, item.Shape())
}

func CreateNewsItem(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var req models.NewsItemCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	now := time.Now()
	item := models.NewsItem{
		Title:           req.Title,
		Body:            req.Body,
		News_Date:       req.News_Date.OrNow(),
		Image_URL:       req.Image_URL,
		Media_URLs:      pq.StringArray(req.Media_URLs),
		Created_By:      user.User_Profile_ID,
		Author_Name:     user.DisplayName(),
		Datetime_Create: now,
		Updated_By:      user.User_Profile_ID,
		Datetime_Update: now,
	}

	var insertedID int
	_, err := initializers.DB.Insert("news_item").
		Rows(item).
		Returning("news_item_id").
		Executor().ScanVal(&insertedID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create news item"})
		return
	}

	item.News_Item_ID = insertedID
	c.JSON(http.StatusCreated, item.Shape())
}

func UpdateNewsItem(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	newsID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid news item ID"})
		return
	}

	var req models.NewsItemUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := req.Record()
	record["updated_by"] = user.User_Profile_ID
	record["datetime_update"] = time.Now()

	result, err := initializers.DB.Update("news_item").
		Set(record).
		Where(goqu.C("news_item_id").Eq(newsID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update news item"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "News item not found"})
		return
	}

	var item models.NewsItem
	found, err := initializers.DB.From("news_item").
		Where(goqu.C("news_item_id").Eq(newsID)).
		ScanStruct(&item)
	if err != nil || !found {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated news item"})
		return
	}

	c.JSON(http.StatusOK, item.Shape())
}

func DeleteNewsItem(c *gin.Context) {
	newsID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid news item ID"})
		return
	}

	result, err := initializers.DB.Delete("news_item").
		Where(goqu.C("news_item_id").Eq(newsID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete news item"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "News item not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
