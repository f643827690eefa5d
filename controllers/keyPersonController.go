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

func GetKeyPeople(c *gin.Context) {
	var people []models.KeyPerson
	err := initializers.DB.From("key_person").
		Order(goqu.I("name").Asc()).
		ScanStructs(&people)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch key people"})
		return
	}

	shaped := make([]models.KeyPersonResponse, 0, len(people))
	for _, p := range people {
		shaped = append(shaped, p.Shape())
	}

	c.JSON(http.StatusOK, shaped)
}

func GetKeyPerson(c *gin.Context) {
	personID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid key person ID"})
		return
	}

	var person models.KeyPerson
	found, err := initializers.DB.From("key_person").
		Where(goqu.C("key_person_id").Eq(personID)).
		ScanStruct(&person)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch key person"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Key person not found"})
		return
	}

	c.JSON(http.StatusOK, person.Shape())
}

func CreateKeyPerson(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var req models.KeyPersonCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	now := time.Now()
	person := models.KeyPerson{
		Name:            req.Name,
		Role:            req.Role,
		Bio:             req.Bio,
		Photo_URL:       req.Photo_URL,
		Contact_Email:   req.Contact_Email,
		Created_By:      user.User_Profile_ID,
		Author_Name:     user.DisplayName(),
		Datetime_Create: now,
		Updated_By:      user.User_Profile_ID,
		Datetime_Update: now,
	}

	var insertedID int
	_, err := initializers.DB.Insert("key_person").
		Rows(person).
		Returning("key_person_id").
		Executor().ScanVal(&insertedID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create key person"})
		return
	}

	person.Key_Person_ID = insertedID
	c.JSON(http.StatusCreated, person.Shape())
}

func UpdateKeyPerson(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	personID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid key person ID"})
		return
	}

	var req models.KeyPersonUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := req.Record()
	record["updated_by"] = user.User_Profile_ID
	record["datetime_update"] = time.Now()

	result, err := initializers.DB.Update("key_person").
		Set(record).
		Where(goqu.C("key_person_id").Eq(personID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update key person"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Key person not found"})
		return
	}

	var person models.KeyPerson
	found, err := initializers.DB.From("key_person").
		Where(goqu.C("key_person_id").Eq(personID)).
		ScanStruct(&person)
	if err != nil || !found {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated key person"})
		return
	}

	c.JSON(http.StatusOK, person.Shape())
}

func DeleteKeyPerson(c *gin.Context) {
	personID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid key person ID"})
		return
	}

	result, err := initializers.DB.Delete("key_person").
		Where(goqu.C("key_person_id").Eq(personID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete key person"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Key person not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
