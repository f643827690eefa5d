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

func GetAboutSections(c *gin.Context) {
	var sections []models.AboutSection
	err := initializers.DB.From("about_section").
		Order(goqu.I("display_order").Asc()).
		ScanStructs(&sections)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch about sections"})
		return
	}

	shaped := make([]models.AboutSectionResponse, 0, len(sections))
	for _, s := range sections {
		shaped = append(shaped, s.Shape())
	}

	c.JSON(http.StatusOK, shaped)
}

func GetAboutSection(c *gin.Context) {
	sectionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid about section ID"})
		return
	}

	var section models.AboutSection
	found, err := initializers.DB.From("about_section").
		Where(goqu.C("about_section_id").Eq(sectionID)).
		ScanStruct(&section)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch about section"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "About section not found"})
		return
	}

	c.JSON(http.StatusOK, section.Shape())
}

func CreateAboutSection(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var req models.AboutSectionCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	now := time.Now()
	section := models.AboutSection{
		Title:           req.Title,
		Body:            req.Body,
		Image_URL:       req.Image_URL,
		Display_Order:   int(req.Display_Order),
		Is_Core:         bool(req.Is_Core),
		Created_By:      user.User_Profile_ID,
		Author_Name:     user.DisplayName(),
		Datetime_Create: now,
		Updated_By:      user.User_Profile_ID,
		Datetime_Update: now,
	}

	var insertedID int
	_, err := initializers.DB.Insert("about_section").
		Rows(section).
		Returning("about_section_id").
		Executor().ScanVal(&insertedID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create about section"})
		return
	}

	section.About_Section_ID = insertedID
	c.JSON(http.StatusCreated, section.Shape())
}

func UpdateAboutSection(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	sectionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid about section ID"})
		return
	}

	var req models.AboutSectionUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The stored core flag decides whether displayOrder may change; the
	// client-submitted value is dropped for core sections.
	var existing models.AboutSection
	found, err := initializers.DB.From("about_section").
		Where(goqu.C("about_section_id").Eq(sectionID)).
		ScanStruct(&existing)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch about section"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "About section not found"})
		return
	}

	record := req.Record(existing.Is_Core)
	record["updated_by"] = user.User_Profile_ID
	record["datetime_update"] = time.Now()

	_, err = initializers.DB.Update("about_section").
		Set(record).
		Where(goqu.C("about_section_id").Eq(sectionID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update about section"})
		return
	}

	var section models.AboutSection
	found, err = initializers.DB.From("about_section").
		Where(goqu.C("about_section_id").Eq(sectionID)).
		ScanStruct(&section)
	if err != nil || !found {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated about section"})
		return
	}

	c.JSON(http.StatusOK, section.Shape())
}

func DeleteAboutSection(c *gin.Context) {
	sectionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid about section ID"})
		return
	}

	var existing models.AboutSection
	found, err := initializers.DB.From("about_section").
		Where(goqu.C("about_section_id").Eq(sectionID)).
		ScanStruct(&existing)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch about section"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "About section not found"})
		return
	}
	if existing.Is_Core {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Core sections cannot be deleted"})
		return
	}

	result, err := initializers.DB.Delete("about_section").
		Where(goqu.C("about_section_id").Eq(sectionID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete about section"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "About section not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
