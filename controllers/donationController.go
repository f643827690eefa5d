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

func GetDonations(c *gin.Context) {
	var donations []models.Donation
	err := initializers.DB.From("donation").
		Order(goqu.I("donation_date").Desc()).
		ScanStructs(&donations)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch donations"})
		return
	}

	shaped := make([]models.DonationResponse, 0, len(donations))
	for _, d := range donations {
		shaped = append(shaped, d.Shape())
	}

	c.JSON(http.StatusOK, shaped)
}

func GetDonation(c *gin.Context) {
	donationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid donation ID"})
		return
	}

	var donation models.Donation
	found, err := initializers.DB.From("donation").
		Where(goqu.C("donation_id").Eq(donationID)).
		ScanStruct(&donation)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch donation"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		return
	}

	c.JSON(http.StatusOK, donation.Shape())
}

func CreateDonation(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var req models.DonationCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Donor_Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Donor name is required"})
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	now := time.Now()
	donation := models.Donation{
		Donor_Name:      req.Donor_Name,
		Amount:          float64(req.Amount),
		Currency:        currency,
		Method:          req.Method,
		Fund:            req.Fund,
		Reference:       req.Reference,
		Donation_Date:   req.Donation_Date.OrNow(),
		Created_By:      user.User_Profile_ID,
		Author_Name:     user.DisplayName(),
		Datetime_Create: now,
		Updated_By:      user.User_Profile_ID,
		Datetime_Update: now,
	}

	var insertedID int
	_, err := initializers.DB.Insert("donation").
		Rows(donation).
		Returning("donation_id").
		Executor().ScanVal(&insertedID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create donation"})
		return
	}

	donation.Donation_ID = insertedID
	c.JSON(http.StatusCreated, donation.Shape())
}

func UpdateDonation(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	donationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid donation ID"})
		return
	}

	var req models.DonationUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := req.Record()
	record["updated_by"] = user.User_Profile_ID
	record["datetime_update"] = time.Now()

	result, err := initializers.DB.Update("donation").
		Set(record).
		Where(goqu.C("donation_id").Eq(donationID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update donation"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		return
	}

	var donation models.Donation
	found, err := initializers.DB.From("donation").
		Where(goqu.C("donation_id").Eq(donationID)).
		ScanStruct(&donation)
	if err != nil || !found {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated donation"})
		return
	}

	c.JSON(http.StatusOK, donation.Shape())
}

func DeleteDonation(c *gin.Context) {
	donationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid donation ID"})
		return
	}

	result, err := initializers.DB.Delete("donation").
		Where(goqu.C("donation_id").Eq(donationID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete donation"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
