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

func GetBranchChurches(c *gin.Context) {
	var branches []models.BranchChurch
	err := initializers.DB.From("branch_church").
		Order(goqu.I("name").Asc()).
		ScanStructs(&branches)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch branches"})
		return
	}

	shaped := make([]models.BranchChurchResponse, 0, len(branches))
	for _, b := range branches {
		shaped = append(shaped, b.Shape())
	}

	c.JSON(http.StatusOK, shaped)
}

func GetBranchChurch(c *gin.Context) {
	branchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid branch ID"})
		return
	}

	var branch models.BranchChurch
	found, err := initializers.DB.From("branch_church").
		Where(goqu.C("branch_church_id").Eq(branchID)).
		ScanStruct(&branch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch branch"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Branch not found"})
		return
	}

	c.JSON(http.StatusOK, branch.Shape())
}

func CreateBranchChurch(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var req models.BranchChurchCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	now := time.Now()
	branch := models.BranchChurch{
		Name:            req.Name,
		Address:         req.Address,
		City:            req.City,
		Pastor_Name:     req.Pastor_Name,
		Phone:           req.Phone,
		Email:           req.Email,
		Service_Times:   req.Service_Times,
		Image_URL:       req.Image_URL,
		Created_By:      user.User_Profile_ID,
		Author_Name:     user.DisplayName(),
		Datetime_Create: now,
		Updated_By:      user.User_Profile_ID,
		Datetime_Update: now,
	}

	var insertedID int
	_, err := initializers.DB.Insert("branch_church").
		Rows(branch).
		Returning("branch_church_id").
		Executor().ScanVal(&insertedID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create branch"})
		return
	}

	branch.Branch_Church_ID = insertedID
	c.JSON(http.StatusCreated, branch.Shape())
}

func UpdateBranchChurch(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	branchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid branch ID"})
		return
	}

	var req models.BranchChurchUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := req.Record()
	record["updated_by"] = user.User_Profile_ID
	record["datetime_update"] = time.Now()

	result, err := initializers.DB.Update("branch_church").
		Set(record).
		Where(goqu.C("branch_church_id").Eq(branchID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update branch"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Branch not found"})
		return
	}

	var branch models.BranchChurch
	found, err := initializers.DB.From("branch_church").
		Where(goqu.C("branch_church_id").Eq(branchID)).
		ScanStruct(&branch)
	if err != nil || !found {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated branch"})
		return
	}

	c.JSON(http.StatusOK, branch.Shape())
}

func DeleteBranchChurch(c *gin.Context) {
	branchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid branch ID"})
		return
	}

	result, err := initializers.DB.Delete("branch_church").
		Where(goqu.C("branch_church_id").Eq(branchID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete branch"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Branch not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
