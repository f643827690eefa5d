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

func GetSermons(c *gin.Context) {
	var sermons []models.Sermon
	err := initializers.DB.From("sermon").
		Order(goqu.I("date").Desc().NullsLast()).
		ScanStructs(&sermons)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sermons"})
		return
	}

	shaped := make([]models.SermonResponse, 0, len(sermons))
	for _, s := range sermons {
		shaped = append(shaped, s.Shape())
	}

	c.JSON(http.StatusOK, shaped)
}

func GetSermon(c *gin.Context) {
	sermonID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sermon ID"})
		return
	}

	var sermon models.Sermon
	found, err := initializers.DB.From("sermon").
		Where(goqu.C("sermon_id").Eq(sermonID)).
		ScanStruct(&sermon)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sermon"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sermon not found"})
		return
	}

	c.JSON(http.StatusOK, sermon.Shape())
}

func CreateSermon(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var req models.SermonCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	now := time.Now()
	sermon := models.Sermon{
		Title:           req.Title,
		Speaker:         req.Speaker,
		Description:     req.Description,
		Scripture:       req.Scripture,
		Date:            req.Date.OrNil(),
		Video_URL:       req.Video_URL,
		Audio_URL:       req.Audio_URL,
		Media_URLs:      pq.StringArray(req.Media_URLs),
		Category:        req.Category,
		Created_By:      user.User_Profile_ID,
		Author_Name:     user.DisplayName(),
		Datetime_Create: now,
		Updated_By:      user.User_Profile_ID,
		Datetime_Update: now,
	}

	var insertedID int
	_, err := initializers.DB.Insert("sermon").
		Rows(sermon).
		Returning("sermon_id").
		Executor().ScanVal(&insertedID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sermon"})
		return
	}

	sermon.Sermon_ID = insertedID
	c.JSON(http.StatusCreated, sermon.Shape())
}

func UpdateSermon(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	sermonID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sermon ID"})
		return
	}

	var req models.SermonUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := req.Record()
	record["updated_by"] = user.User_Profile_ID
	record["datetime_update"] = time.Now()

	result, err := initializers.DB.Update("sermon").
		Set(record).
		Where(goqu.C("sermon_id").Eq(sermonID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sermon"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sermon not found"})
		return
	}

	var sermon models.Sermon
	found, err := initializers.DB.From("sermon").
		Where(goqu.C("sermon_id").Eq(sermonID)).
		ScanStruct(&sermon)
	if err != nil || !found {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated sermon"})
		return
	}

	c.JSON(http.StatusOK, sermon.Shape())
}

func DeleteSermon(c *gin.Context) {
	sermonID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sermon ID"})
		return
	}

	result, err := initializers.DB.Delete("sermon").
		Where(goqu.C("sermon_id").Eq(sermonID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sermon"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sermon not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
