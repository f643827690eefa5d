package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/ChurchCMS/initializers"
	"github.com/ChurchCMS/models"
	"github.com/ChurchCMS/services"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
)

func GetContactMessages(c *gin.Context) {
	var messages []models.ContactMessage
	err := initializers.DB.From("contact_message").
		Order(goqu.I("datetime_create").Desc()).
		ScanStructs(&messages)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contact messages"})
		return
	}

	shaped := make([]models.ContactMessageResponse, 0, len(messages))
	for _, m := range messages {
		shaped = append(shaped, m.Shape())
	}

	c.JSON(http.StatusOK, shaped)
}

func GetContactMessage(c *gin.Context) {
	messageID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact message ID"})
		return
	}

	var message models.ContactMessage
	found, err := initializers.DB.From("contact_message").
		Where(goqu.C("contact_message_id").Eq(messageID)).
		ScanStruct(&message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contact message"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact message not found"})
		return
	}

	c.JSON(http.StatusOK, message.Shape())
}

// CreateContactMessage persists the message first; the admin notification
// email is best-effort and never fails the request.
func CreateContactMessage(c *gin.Context) {
	var req models.ContactMessageCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email and message are required"})
		return
	}

	now := time.Now()
	message := models.ContactMessage{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Subject:         req.Subject,
		Message:         req.Message,
		Status:          models.ContactStatusNew,
		Datetime_Create: now,
		Datetime_Update: now,
	}

	var insertedID int
	_, err := initializers.DB.Insert("contact_message").
		Rows(message).
		Returning("contact_message_id").
		Executor().ScanVal(&insertedID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save contact message"})
		return
	}

	message.Contact_Message_ID = insertedID

	if err := services.GetEmailService().SendContactNotification(message); err != nil {
		log.Printf("Failed to send contact notification email: %v", err)
	}

	c.JSON(http.StatusCreated, message.Shape())
}

func UpdateContactMessageStatus(c *gin.Context) {
	messageID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact message ID"})
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidContactStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	result, err := initializers.DB.Update("contact_message").
		Set(goqu.Record{
			"status":          req.Status,
			"datetime_update": time.Now(),
		}).
		Where(goqu.C("contact_message_id").Eq(messageID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact message not found"})
		return
	}

	var message models.ContactMessage
	found, err := initializers.DB.From("contact_message").
		Where(goqu.C("contact_message_id").Eq(messageID)).
		ScanStruct(&message)
	if err != nil || !found {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated contact message"})
		return
	}

	c.JSON(http.StatusOK, message.Shape())
}

func DeleteContactMessage(c *gin.Context) {
	messageID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact message ID"})
		return
	}

	result, err := initializers.DB.Delete("contact_message").
		Where(goqu.C("contact_message_id").Eq(messageID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact message"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact message not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
