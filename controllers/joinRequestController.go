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

func GetJoinRequests(c *gin.Context) {
	var requests []models.MinistryJoinRequest
	err := initializers.DB.From("ministry_join_request").
		Order(goqu.I("datetime_create").Desc()).
		ScanStructs(&requests)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch join requests"})
		return
	}

	shaped := make([]models.MinistryJoinRequestResponse, 0, len(requests))
	for _, r := range requests {
		shaped = append(shaped, r.Shape())
	}

	c.JSON(http.StatusOK, shaped)
}

func GetJoinRequest(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid join request ID"})
		return
	}

	var request models.MinistryJoinRequest
	found, err := initializers.DB.From("ministry_join_request").
		Where(goqu.C("join_request_id").Eq(requestID)).
		ScanStruct(&request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch join request"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Join request not found"})
		return
	}

	c.JSON(http.StatusOK, request.Shape())
}

func CreateJoinRequest(c *gin.Context) {
	var req models.MinistryJoinRequestCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ministryID := int(req.Ministry_ID)
	if ministryID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ministry ID"})
		return
	}
	if req.Name == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and email are required"})
		return
	}

	var ministry models.Ministry
	found, err := initializers.DB.From("ministry").
		Where(goqu.C("ministry_id").Eq(ministryID)).
		ScanStruct(&ministry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify ministry"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ministry not found"})
		return
	}

	now := time.Now()
	request := models.MinistryJoinRequest{
		Ministry_ID:     ministryID,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Message:         req.Message,
		Status:          models.JoinRequestStatusPending,
		Datetime_Create: now,
		Datetime_Update: now,
	}

	var insertedID int
	_, err = initializers.DB.Insert("ministry_join_request").
		Rows(request).
		Returning("join_request_id").
		Executor().ScanVal(&insertedID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create join request"})
		return
	}

	request.Join_Request_ID = insertedID
	c.JSON(http.StatusCreated, request.Shape())
}

func UpdateJoinRequestStatus(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid join request ID"})
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidJoinRequestStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	result, err := initializers.DB.Update("ministry_join_request").
		Set(goqu.Record{
			"status":          req.Status,
			"datetime_update": time.Now(),
		}).
		Where(goqu.C("join_request_id").Eq(requestID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Join request not found"})
		return
	}

	var request models.MinistryJoinRequest
	found, err := initializers.DB.From("ministry_join_request").
		Where(goqu.C("join_request_id").Eq(requestID)).
		ScanStruct(&request)
	if err != nil || !found {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated join request"})
		return
	}

	c.JSON(http.StatusOK, request.Shape())
}

func DeleteJoinRequest(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid join request ID"})
		return
	}

	result, err := initializers.DB.Delete("ministry_join_request").
		Where(goqu.C("join_request_id").Eq(requestID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete join request"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Join request not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
