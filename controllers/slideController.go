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

func GetHomeSlides(c *gin.Context) {
	var slides []models.HomeSlide
	err := initializers.DB.From("home_slide").
		Order(goqu.I("display_order").Asc()).
		ScanStructs(&slides)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch slides"})
		return
	}

	shaped := make([]models.HomeSlideResponse, 0, len(slides))
	for _, s := range slides {
		shaped = append(shaped, s.Shape())
	}

	c.JSON(http.StatusOK, shaped)
}

func GetHomeSlide(c *gin.Context) {
	slideID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slide ID"})
		return
	}

	var slide models.HomeSlide
	found, err := initializers.DB.From("home_slide").
		Where(goqu.C("home_slide_id").Eq(slideID)).
		ScanStruct(&slide)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch slide"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Slide not found"})
		return
	}

	c.JSON(http.StatusOK, slide.Shape())
}

func CreateHomeSlide(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var req models.HomeSlideCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Image_URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image URL is required"})
		return
	}

	now := time.Now()
	slide := models.HomeSlide{
		Title:           req.Title,
		Subtitle:        req.Subtitle,
		Image_URL:       req.Image_URL,
		Link_URL:        req.Link_URL,
		Display_Order:   int(req.Display_Order),
		Created_By:      user.User_Profile_ID,
		Author_Name:     user.DisplayName(),
		Datetime_Create: now,
		Updated_By:      user.User_Profile_ID,
		Datetime_Update: now,
	}

	var insertedID int
	_, err := initializers.DB.Insert("home_slide").
		Rows(slide).
		Returning("home_slide_id").
		Executor().ScanVal(&insertedID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create slide"})
		return
	}

	slide.Home_Slide_ID = insertedID
	c.JSON(http.StatusCreated, slide.Shape())
}

func UpdateHomeSlide(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	slideID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slide ID"})
		return
	}

	var req models.HomeSlideUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := req.Record()
	record["updated_by"] = user.User_Profile_ID
	record["datetime_update"] = time.Now()

	result, err := initializers.DB.Update("home_slide").
		Set(record).
		Where(goqu.C("home_slide_id").Eq(slideID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update slide"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Slide not found"})
		return
	}

	var slide models.HomeSlide
	found, err := initializers.DB.From("home_slide").
		Where(goqu.C("home_slide_id").Eq(slideID)).
		ScanStruct(&slide)
	if err != nil || !found {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated slide"})
		return
	}

	c.JSON(http.StatusOK, slide.Shape())
}

func DeleteHomeSlide(c *gin.Context) {
	slideID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slide ID"})
		return
	}

	result, err := initializers.DB.Delete("home_slide").
		Where(goqu.C("home_slide_id").Eq(slideID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete slide"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Slide not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
