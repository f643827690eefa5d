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

func GetHistoryMilestones(c *gin.Context) {
	var milestones []models.HistoryMilestone
	err := initializers.DB.From("history_milestone").
		Order(goqu.I("year").Asc()).
		ScanStructs(&milestones)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch milestones"})
		return
	}

	shaped := make([]models.HistoryMilestoneResponse, 0, len(milestones))
	for _, m := range milestones {
		shaped = append(shaped, m.Shape())
	}

	c.JSON(http.StatusOK, shaped)
}

func GetHistoryMilestone(c *gin.Context) {
	milestoneID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid milestone ID"})
		return
	}

	var milestone models.HistoryMilestone
	found, err := initializers.DB.From("history_milestone").
		Where(goqu.C("history_milestone_id").Eq(milestoneID)).
		ScanStruct(&milestone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch milestone"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Milestone not found"})
		return
	}

	c.JSON(http.StatusOK, milestone.Shape())
}

func CreateHistoryMilestone(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var req models.HistoryMilestoneCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	now := time.Now()
	milestone := models.HistoryMilestone{
		Year:            int(req.Year),
		Title:           req.Title,
		Description:     req.Description,
		Image_URL:       req.Image_URL,
		Created_By:      user.User_Profile_ID,
		Author_Name:     user.DisplayName(),
		Datetime_Create: now,
		Updated_By:      user.User_Profile_ID,
		Datetime_Update: now,
	}

	var insertedID int
	_, err := initializers.DB.Insert("history_milestone").
		Rows(milestone).
		Returning("history_milestone_id").
		Executor().ScanVal(&insertedID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create milestone"})
		return
	}

	milestone.History_Milestone_ID = insertedID
	c.JSON(http.StatusCreated, milestone.Shape())
}

func UpdateHistoryMilestone(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	milestoneID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid milestone ID"})
		return
	}

	var req models.HistoryMilestoneUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := req.Record()
	record["updated_by"] = user.User_Profile_ID
	record["datetime_update"] = time.Now()

	result, err := initializers.DB.Update("history_milestone").
		Set(record).
		Where(goqu.C("history_milestone_id").Eq(milestoneID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update milestone"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Milestone not found"})
		return
	}

	var milestone models.HistoryMilestone
	found, err := initializers.DB.From("history_milestone").
		Where(goqu.C("history_milestone_id").Eq(milestoneID)).
		ScanStruct(&milestone)
	if err != nil || !found {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated milestone"})
		return
	}

	c.JSON(http.StatusOK, milestone.Shape())
}

func DeleteHistoryMilestone(c *gin.Context) {
	milestoneID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid milestone ID"})
		return
	}

	result, err := initializers.DB.Delete("history_milestone").
		Where(goqu.C("history_milestone_id").Eq(milestoneID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete milestone"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Milestone not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

func GetHistoryChapters(c *gin.Context) {
	var chapters []models.HistoryChapter
	err := initializers.DB.From("history_chapter").
		Order(goqu.I("chapter_order").Asc()).
		ScanStructs(&chapters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chapters"})
		return
	}

	shaped := make([]models.HistoryChapterResponse, 0, len(chapters))
	for _, ch := range chapters {
		shaped = append(shaped, ch.Shape())
	}

	c.JSON(http.StatusOK, shaped)
}

func GetHistoryChapter(c *gin.Context) {
	chapterID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chapter ID"})
		return
	}

	var chapter models.HistoryChapter
	found, err := initializers.DB.From("history_chapter").
		Where(goqu.C("history_chapter_id").Eq(chapterID)).
		ScanStruct(&chapter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chapter"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chapter not found"})
		return
	}

	c.JSON(http.StatusOK, chapter.Shape())
}

func CreateHistoryChapter(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var req models.HistoryChapterCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	now := time.Now()
	chapter := models.HistoryChapter{
		Title:           req.Title,
		Body:            req.Body,
		Chapter_Order:   int(req.Chapter_Order),
		Image_URL:       req.Image_URL,
		Created_By:      user.User_Profile_ID,
		Author_Name:     user.DisplayName(),
		Datetime_Create: now,
		Updated_By:      user.User_Profile_ID,
		Datetime_Update: now,
	}

	var insertedID int
	_, err := initializers.DB.Insert("history_chapter").
		Rows(chapter).
		Returning("history_chapter_id").
		Executor().ScanVal(&insertedID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create chapter"})
		return
	}

	chapter.History_Chapter_ID = insertedID
	c.JSON(http.StatusCreated, chapter.Shape())
}

func UpdateHistoryChapter(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	chapterID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chapter ID"})
		return
	}

	var req models.HistoryChapterUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := req.Record()
	record["updated_by"] = user.User_Profile_ID
	record["datetime_update"] = time.Now()

	result, err := initializers.DB.Update("history_chapter").
		Set(record).
		Where(goqu.C("history_chapter_id").Eq(chapterID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update chapter"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chapter not found"})
		return
	}

	var chapter models.HistoryChapter
	found, err := initializers.DB.From("history_chapter").
		Where(goqu.C("history_chapter_id").Eq(chapterID)).
		ScanStruct(&chapter)
	if err != nil || !found {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated chapter"})
		return
	}

	c.JSON(http.StatusOK, chapter.Shape())
}

func DeleteHistoryChapter(c *gin.Context) {
	chapterID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chapter ID"})
		return
	}

	result, err := initializers.DB.Delete("history_chapter").
		Where(goqu.C("history_chapter_id").Eq(chapterID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete chapter"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chapter not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
