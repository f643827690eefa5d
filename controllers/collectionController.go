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

func GetCollectionRecords(c *gin.Context) {
	var records []models.CollectionRecord
	err := initializers.DB.From("collection_record").
		Order(goqu.I("collection_date").Desc()).
		ScanStructs(&records)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch collection records"})
		return
	}

	shaped := make([]models.CollectionRecordResponse, 0, len(records))
	for _, r := range records {
		shaped = append(shaped, r.Shape())
	}

	c.JSON(http.StatusOK, shaped)
}

func GetCollectionRecord(c *gin.Context) {
	recordID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid collection record ID"})
		return
	}

	var record models.CollectionRecord
	found, err := initializers.DB.From("collection_record").
		Where(goqu.C("collection_record_id").Eq(recordID)).
		ScanStruct(&record)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch collection record"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Collection record not found"})
		return
	}

	c.JSON(http.StatusOK, record.Shape())
}

func CreateCollectionRecord(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var req models.CollectionRecordCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	now := time.Now()
	record := models.CollectionRecord{
		Collection_Date: req.Collection_Date.OrNow(),
		Amount:          float64(req.Amount),
		Currency:        currency,
		Fund:            req.Fund,
		Notes:           req.Notes,
		Created_By:      user.User_Profile_ID,
		Author_Name:     user.DisplayName(),
		Datetime_Create: now,
		Updated_By:      user.User_Profile_ID,
		Datetime_Update: now,
	}

	var insertedID int
	_, err := initializers.DB.Insert("collection_record").
		Rows(record).
		Returning("collection_record_id").
		Executor().ScanVal(&insertedID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create collection record"})
		return
	}

	record.Collection_Record_ID = insertedID
	c.JSON(http.StatusCreated, record.Shape())
}

func UpdateCollectionRecord(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	recordID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid collection record ID"})
		return
	}

	var req models.CollectionRecordUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updateRecord := req.Record()
	updateRecord["updated_by"] = user.User_Profile_ID
	updateRecord["datetime_update"] = time.Now()

	result, err := initializers.DB.Update("collection_record").
		Set(updateRecord).
		Where(goqu.C("collection_record_id").Eq(recordID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update collection record"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Collection record not found"})
		return
	}

	var record models.CollectionRecord
	found, err := initializers.DB.From("collection_record").
		Where(goqu.C("collection_record_id").Eq(recordID)).
		ScanStruct(&record)
	if err != nil || !found {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated collection record"})
		return
	}

	c.JSON(http.StatusOK, record.Shape())
}

func DeleteCollectionRecord(c *gin.Context) {
	recordID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid collection record ID"})
		return
	}

	result, err := initializers.DB.Delete("collection_record").
		Where(goqu.C("collection_record_id").Eq(recordID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete collection record"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Collection record not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
