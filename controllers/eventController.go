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

func GetEvents(c *gin.Context) {
	var events []models.Event
	err := initializers.DB.From("event").
		Order(goqu.I("event_date").Desc().NullsLast()).
		ScanStructs(&events)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	shaped := make([]models.EventResponse, 0, len(events))
	for _, e := range events {
		shaped = append(shaped, e.Shape())
	}

	c.JSON(http.StatusOK, shaped)
}

func GetEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var event models.Event
	found, err := initializers.DB.From("event").
		Where(goqu.C("event_id").Eq(eventID)).
		ScanStruct(&event)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, event.Shape())
}

func CreateEvent(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var req models.EventCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	now := time.Now()
	event := models.Event{
		Title:           req.Title,
		Description:     req.Description,
		Event_Date:      req.Event_Date.OrNil(),
		Location:        req.Location,
		Image_URL:       req.Image_URL,
		Media_URLs:      pq.StringArray(req.Media_URLs),
		Category:        req.Category,
		Created_By:      user.User_Profile_ID,
		Author_Name:     user.DisplayName(),
		Datetime_Create: now,
		Updated_By:      user.User_Profile_ID,
		Datetime_Update: now,
	}

	var insertedID int
	_, err := initializers.DB.Insert("event").
		Rows(event).
		Returning("event_id").
		Executor().ScanVal(&insertedID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	event.Event_ID = insertedID
	c.JSON(http.StatusCreated, event.Shape())
}

func UpdateEvent(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var req models.EventUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := req.Record()
	record["updated_by"] = user.User_Profile_ID
	record["datetime_update"] = time.Now()

	result, err := initializers.DB.Update("event").
		Set(record).
		Where(goqu.C("event_id").Eq(eventID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var event models.Event
	found, err := initializers.DB.From("event").
		Where(goqu.C("event_id").Eq(eventID)).
		ScanStruct(&event)
	if err != nil || !found {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated event"})
		return
	}

	c.JSON(http.StatusOK, event.Shape())
}

func DeleteEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	result, err := initializers.DB.Delete("event").
		Where(goqu.C("event_id").Eq(eventID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
