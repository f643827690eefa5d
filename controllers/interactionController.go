package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/ChurchCMS/initializers"
	"github.com/ChurchCMS/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
)

// likeTarget binds a discriminator to the table carrying a like counter and
// a typed fetch for the shaped response. Unknown discriminators never reach
// the database.
type likeTarget struct {
	table    string
	idColumn string
	fetch    func(id int) (interface{}, bool, error)
}

var likeTargets = map[string]likeTarget{
	"sermon": {"sermon", "sermon_id", func(id int) (interface{}, bool, error) {
		var s models.Sermon
		found, err := initializers.DB.From("sermon").Where(goqu.C("sermon_id").Eq(id)).ScanStruct(&s)
		return s.Shape(), found, err
	}},
	"event": {"event", "event_id", func(id int) (interface{}, bool, error) {
		var e models.Event
		found, err := initializers.DB.From("event").Where(goqu.C("event_id").Eq(id)).ScanStruct(&e)
		return e.Shape(), found, err
	}},
	"blogpost": {"blog_post", "blog_post_id", func(id int) (interface{}, bool, error) {
		var b models.BlogPost
		found, err := initializers.DB.From("blog_post").Where(goqu.C("blog_post_id").Eq(id)).ScanStruct(&b)
		return b.Shape(), found, err
	}},
	"news": {"news_item", "news_item_id", func(id int) (interface{}, bool, error) {
		var n models.NewsItem
		found, err := initializers.DB.From("news_item").Where(goqu.C("news_item_id").Eq(id)).ScanStruct(&n)
		return n.Shape(), found, err
	}},
	"testimonial": {"testimonial", "testimonial_id", func(id int) (interface{}, bool, error) {
		var t models.Testimonial
		found, err := initializers.DB.From("testimonial").Where(goqu.C("testimonial_id").Eq(id)).ScanStruct(&t)
		return t.Shape(), found, err
	}},
}

// ToggleLike increments or decrements the like counter for the target
// record. Likes are anonymous; the counter never goes below zero.
func ToggleLike(c *gin.Context) {
	target, ok := likeTargets[c.Param("entityType")]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown entity type"})
		return
	}

	entityID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entity ID"})
		return
	}

	var req struct {
		Action string `json:"action"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var delta goqu.Expression
	switch req.Action {
	case "like":
		delta = goqu.L("likes + 1")
	case "unlike":
		delta = goqu.L("likes - 1")
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Action must be 'like' or 'unlike'"})
		return
	}

	var likes int
	found, err := initializers.DB.Update(target.table).
		Set(goqu.Record{"likes": delta}).
		Where(goqu.C(target.idColumn).Eq(entityID)).
		Returning("likes").
		Executor().ScanVal(&likes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update likes"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	// Corrective write; a second round-trip is fine here.
	if likes < 0 {
		log.Printf("Like counter for %s %d went negative, resetting to 0", target.table, entityID)
		_, err = initializers.DB.Update(target.table).
			Set(goqu.Record{"likes": 0}).
			Where(goqu.C(target.idColumn).Eq(entityID)).
			Executor().Exec()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update likes"})
			return
		}
	}

	shaped, found, err := target.fetch(entityID)
	if err != nil || !found {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated record"})
		return
	}

	c.JSON(http.StatusOK, shaped)
}
