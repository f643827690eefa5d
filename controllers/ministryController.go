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

func GetMinistries(c *gin.Context) {
	var ministries []models.Ministry
	err := initializers.DB.From("ministry").
		Order(goqu.I("name").Asc()).
		ScanStructs(&ministries)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ministries"})
		return
	}

	shaped := make([]models.MinistryResponse, 0, len(ministries))
	for _, m := range ministries {
		shaped = append(shaped, m.Shape())
	}

	c.JSON(http.StatusOK, shaped)
}

func GetMinistry(c *gin.Context) {
	ministryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ministry ID"})
		return
	}

	var ministry models.Ministry
	found, err := initializers.DB.From("ministry").
		Where(goqu.C("ministry_id").Eq(ministryID)).
		ScanStruct(&ministry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ministry"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ministry not found"})
		return
	}

	c.JSON(http.StatusOK, ministry.Shape())
}

func CreateMinistry(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var req models.MinistryCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	now := time.Now()
	ministry := models.Ministry{
		Name:            req.Name,
		Description:     req.Description,
		Leader_Name:     req.Leader_Name,
		Contact_Email:   req.Contact_Email,
		Meeting_Time:    req.Meeting_Time,
		Image_URL:       req.Image_URL,
		Created_By:      user.User_Profile_ID,
		Author_Name:     user.DisplayName(),
		Datetime_Create: now,
		Updated_By:      user.User_Profile_ID,
		Datetime_Update: now,
	}

	var insertedID int
	_, err := initializers.DB.Insert("ministry").
		Rows(ministry).
		Returning("ministry_id").
		Executor().ScanVal(&insertedID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ministry"})
		return
	}

	ministry.Ministry_ID = insertedID
	c.JSON(http.StatusCreated, ministry.Shape())
}

func UpdateMinistry(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	ministryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ministry ID"})
		return
	}

	var req models.MinistryUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := req.Record()
	record["updated_by"] = user.User_Profile_ID
	record["datetime_update"] = time.Now()

	result, err := initializers.DB.Update("ministry").
		Set(record).
		Where(goqu.C("ministry_id").Eq(ministryID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ministry"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ministry not found"})
		return
	}

	var ministry models.Ministry
	found, err := initializers.DB.From("ministry").
		Where(goqu.C("ministry_id").Eq(ministryID)).
		ScanStruct(&ministry)
	if err != nil || !found {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated ministry"})
		return
	}

	c.JSON(http.StatusOK, ministry.Shape())
}

func DeleteMinistry(c *gin.Context) {
	ministryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ministry ID"})
		return
	}

	result, err := initializers.DB.Delete("ministry").
		Where(goqu.C("ministry_id").Eq(ministryID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete ministry"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ministry not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
