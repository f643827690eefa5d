package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/ChurchCMS/initializers"
	"github.com/ChurchCMS/models"
	"github.com/ChurchCMS/services"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
)

const chatbotPersona = "You are a friendly assistant for our church's website. " +
	"Answer questions about services, sermons, events and ministries warmly and briefly. " +
	"If you don't know something, say so and suggest contacting the church office."

const chatbotPrivacyDirective = "Never reveal private records such as membership lists, " +
	"personal contact details, donation amounts or any financial figures. " +
	"If asked for any of these, reply exactly: " +
	"\"I'm sorry, I can't share private church records. Please contact the church office.\""

const chatbotStaticFacts = "Sunday services are held at 9:00 and 11:00. " +
	"Midweek prayer meeting is Wednesday at 19:00. " +
	"Visitors are always welcome."

const chatContextSermons = 5

// GenerateAdCopy asks the AI service for a name and alt-text for an image URL.
func GenerateAdCopy(c *gin.Context) {
	var req struct {
		URL string `json:"url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL is required"})
		return
	}

	copy, raw, err := services.GetAIService().GenerateAdCopy(c.Request.Context(), req.URL)
	if err != nil {
		if raw != "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "AI returned invalid JSON", "details": raw})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI assistant unavailable"})
		return
	}

	c.JSON(http.StatusOK, copy)
}

// ChatbotQuery forwards a visitor question to the AI service with a context
// digest of recent sermons and fixed institutional facts.
func ChatbotQuery(c *gin.Context) {
	var req struct {
		Question string `json:"question"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question is required"})
		return
	}

	answer, err := services.GetAIService().Chat(c.Request.Context(), req.Question, buildChatContext())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI assistant unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

// buildChatContext assembles the system instruction. A digest failure falls
// back to the static facts rather than failing the request.
func buildChatContext() string {
	parts := []string{chatbotPersona, chatbotPrivacyDirective, chatbotStaticFacts}

	var sermons []models.Sermon
	err := initializers.DB.From("sermon").
		Order(goqu.I("date").Desc().NullsLast()).
		Limit(chatContextSermons).
		ScanStructs(&sermons)
	if err != nil {
		log.Printf("Failed to build sermon digest for chatbot: %v", err)
		return strings.Join(parts, "\n\n")
	}

	if len(sermons) > 0 {
		var digest strings.Builder
		digest.WriteString("Recent sermons:")
		for _, s := range sermons {
			digest.WriteString(fmt.Sprintf("\n- %q by %s", s.Title, s.Speaker))
			if s.Date != nil {
				digest.WriteString(" (" + s.Date.Format("2006-01-02") + ")")
			}
		}
		parts = append(parts, digest.String())
	}

	return strings.Join(parts, "\n\n")
}
