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

func GetTestimonials(c *gin.Context) {
	var testimonials []models.Testimonial
	err := initializers.DB.From("testimonial").
		Order(goqu.I("datetime_create").Desc()).
		ScanStructs(&testimonials)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonials"})
		return
	}

	shaped := make([]models.TestimonialResponse, 0, len(testimonials))
	for _, t := range testimonials {
		shaped = append(shaped, t.Shape())
	}

	c.JSON(http.StatusOK, shaped)
}

func GetTestimonial(c *gin.Context) {
	testimonialID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid testimonial ID"})
		return
	}

	var testimonial models.Testimonial
	found, err := initializers.DB.From("testimonial").
		Where(goqu.C("testimonial_id").Eq(testimonialID)).
		ScanStruct(&testimonial)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonial"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		return
	}

	c.JSON(http.StatusOK, testimonial.Shape())
}

func CreateTestimonial(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var req models.TestimonialCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Body == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Body is required"})
		return
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = models.VisibilityPublic
	}
	if !models.ValidVisibility(visibility) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid visibility"})
		return
	}

	now := time.Now()
	testimonial := models.Testimonial{
		Title:           req.Title,
		Body:            req.Body,
		Visibility:      visibility,
		Status:          models.TestimonialStatusPending,
		Created_By:      user.User_Profile_ID,
		Author_Name:     user.DisplayName(),
		Datetime_Create: now,
		Updated_By:      user.User_Profile_ID,
		Datetime_Update: now,
	}

	var insertedID int
	_, err := initializers.DB.Insert("testimonial").
		Rows(testimonial).
		Returning("testimonial_id").
		Executor().ScanVal(&insertedID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create testimonial"})
		return
	}

	testimonial.Testimonial_ID = insertedID
	c.JSON(http.StatusCreated, testimonial.Shape())
}

func UpdateTestimonial(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	testimonialID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid testimonial ID"})
		return
	}

	var req models.TestimonialUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Visibility != nil && !models.ValidVisibility(*req.Visibility) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid visibility"})
		return
	}
	if req.Status != nil && !models.ValidTestimonialStatus(*req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	record := req.Record()
	record["updated_by"] = user.User_Profile_ID
	record["datetime_update"] = time.Now()

	result, err := initializers.DB.Update("testimonial").
		Set(record).
		Where(goqu.C("testimonial_id").Eq(testimonialID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update testimonial"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		return
	}

	var testimonial models.Testimonial
	found, err := initializers.DB.From("testimonial").
		Where(goqu.C("testimonial_id").Eq(testimonialID)).
		ScanStruct(&testimonial)
	if err != nil || !found {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated testimonial"})
		return
	}

	c.JSON(http.StatusOK, testimonial.Shape())
}

func DeleteTestimonial(c *gin.Context) {
	testimonialID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid testimonial ID"})
		return
	}

	result, err := initializers.DB.Delete("testimonial").
		Where(goqu.C("testimonial_id").Eq(testimonialID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete testimonial"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
