package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/ChurchCMS/initializers"
	"github.com/ChurchCMS/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
)

func GetPrayerRequests(c *gin.Context) {
	var requests []models.PrayerRequest
	err := initializers.DB.From("prayer_request").
		Order(goqu.I("datetime_create").Desc()).
		ScanStructs(&requests)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prayer requests"})
		return
	}

	shaped := make([]models.PrayerRequestResponse, 0, len(requests))
	for _, r := range requests {
		shaped = append(shaped, r.Shape())
	}

	c.JSON(http.StatusOK, shaped)
}

func GetPrayerRequest(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer request ID"})
		return
	}

	var request models.PrayerRequest
	found, err := initializers.DB.From("prayer_request").
		Where(goqu.C("prayer_request_id").Eq(requestID)).
		ScanStruct(&request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prayer request"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prayer request not found"})
		return
	}

	c.JSON(http.StatusOK, request.Shape())
}

func CreatePrayerRequest(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var req models.PrayerRequestCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = models.VisibilityMembers
	}
	if !models.ValidVisibility(visibility) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid visibility"})
		return
	}

	now := time.Now()
	request := models.PrayerRequest{
		Title:           req.Title,
		Body:            req.Body,
		Is_Anonymous:    bool(req.Is_Anonymous),
		Visibility:      visibility,
		Status:          models.PrayerRequestStatusActive,
		Created_By:      user.User_Profile_ID,
		Author_Name:     user.DisplayName(),
		Datetime_Create: now,
		Updated_By:      user.User_Profile_ID,
		Datetime_Update: now,
	}

	var insertedID int
	_, err := initializers.DB.Insert("prayer_request").
		Rows(request).
		Returning("prayer_request_id").
		Executor().ScanVal(&insertedID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create prayer request"})
		return
	}

	request.Prayer_Request_ID = insertedID
	c.JSON(http.StatusCreated, request.Shape())
}

func UpdatePrayerRequest(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer request ID"})
		return
	}

	var req models.PrayerRequestUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Visibility != nil && !models.ValidVisibility(*req.Visibility) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid visibility"})
		return
	}

	record := req.Record()
	record["updated_by"] = user.User_Profile_ID
	record["datetime_update"] = time.Now()

	result, err := initializers.DB.Update("prayer_request").
		Set(record).
		Where(goqu.C("prayer_request_id").Eq(requestID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update prayer request"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prayer request not found"})
		return
	}

	var request models.PrayerRequest
	found, err := initializers.DB.From("prayer_request").
		Where(goqu.C("prayer_request_id").Eq(requestID)).
		ScanStruct(&request)
	if err != nil || !found {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated prayer request"})
		return
	}

	c.JSON(http.StatusOK, request.Shape())
}

// DeletePrayerRequest removes the request; comments and prayer marks go
// with it via the database cascade.
func DeletePrayerRequest(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer request ID"})
		return
	}

	result, err := initializers.DB.Delete("prayer_request").
		Where(goqu.C("prayer_request_id").Eq(requestID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete prayer request"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prayer request not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

func UpdatePrayerRequestStatus(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer request ID"})
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidPrayerRequestStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	result, err := initializers.DB.Update("prayer_request").
		Set(goqu.Record{
			"status":          req.Status,
			"updated_by":      user.User_Profile_ID,
			"datetime_update": time.Now(),
		}).
		Where(goqu.C("prayer_request_id").Eq(requestID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prayer request not found"})
		return
	}

	var request models.PrayerRequest
	found, err := initializers.DB.From("prayer_request").
		Where(goqu.C("prayer_request_id").Eq(requestID)).
		ScanStruct(&request)
	if err != nil || !found {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated prayer request"})
		return
	}

	c.JSON(http.StatusOK, request.Shape())
}

// TogglePrayer flips the "I prayed for this" mark for the current user.
// The (user, request) pair is unique, so a second toggle is the exact
// inverse of the first.
func TogglePrayer(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer request ID"})
		return
	}

	var request models.PrayerRequest
	found, err := initializers.DB.From("prayer_request").
		Where(goqu.C("prayer_request_id").Eq(requestID)).
		ScanStruct(&request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prayer request"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prayer request not found"})
		return
	}

	var existing models.Prayer
	hasPrayer, err := initializers.DB.From("prayer").
		Where(goqu.And(
			goqu.C("prayer_request_id").Eq(requestID),
			goqu.C("user_profile_id").Eq(user.User_Profile_ID),
		)).
		ScanStruct(&existing)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check prayer state"})
		return
	}

	if hasPrayer {
		_, err = initializers.DB.Delete("prayer").
			Where(goqu.C("prayer_id").Eq(existing.Prayer_ID)).
			Executor().Exec()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove prayer"})
			return
		}

		var count int
		_, err = initializers.DB.Update("prayer_request").
			Set(goqu.Record{"prayer_count": goqu.L("prayer_count - 1")}).
			Where(goqu.C("prayer_request_id").Eq(requestID)).
			Returning("prayer_count").
			Executor().ScanVal(&count)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update prayer count"})
			return
		}

		if count < 0 {
			log.Printf("Prayer count for request %d went negative, resetting to 0", requestID)
			_, err = initializers.DB.Update("prayer_request").
				Set(goqu.Record{"prayer_count": 0}).
				Where(goqu.C("prayer_request_id").Eq(requestID)).
				Executor().Exec()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update prayer count"})
				return
			}
			count = 0
		}

		request.Prayer_Count = count
		c.JSON(http.StatusOK, request.Shape())
		return
	}

	prayer := models.Prayer{
		Prayer_Request_ID: requestID,
		User_Profile_ID:   user.User_Profile_ID,
		Datetime_Create:   time.Now(),
	}
	if _, err := initializers.DB.Insert("prayer").Rows(prayer).Executor().Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record prayer"})
		return
	}

	var count int
	_, err = initializers.DB.Update("prayer_request").
		Set(goqu.Record{"prayer_count": goqu.L("prayer_count + 1")}).
		Where(goqu.C("prayer_request_id").Eq(requestID)).
		Returning("prayer_count").
		Executor().ScanVal(&count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update prayer count"})
		return
	}

	request.Prayer_Count = count
	c.JSON(http.StatusOK, request.Shape())
}
