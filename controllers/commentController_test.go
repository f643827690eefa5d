package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func commentColumns() []string {
	return []string{
		"comment_id", "sermon_id", "event_id", "blog_post_id", "news_item_id",
		"history_chapter_id", "prayer_request_id", "author_name", "comment_text",
		"created_by", "datetime_create", "updated_by", "datetime_update",
	}
}

func TestGetComments(t *testing.T) {
	t.Run("comments for a sermon", func(t *testing.T) {
		_, mock, cleanup := SetupTestDB(t)
		defer cleanup()

		now := time.Now()
		rows := sqlmock.NewRows(commentColumns()).
			AddRow(1, 4, nil, nil, nil, nil, nil, "Test User", "Amen!", 2, now, 2, now)
		mock.ExpectQuery("SELECT").WillReturnRows(rows)

		c, w := SetupTestContext()
		c.Params = gin.Params{
			{Key: "parentType", Value: "sermon"},
			{Key: "parentId", Value: "4"},
		}
		c.Request = httptest.NewRequest("GET", "/comments/sermon/4", nil)

		GetComments(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response []map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response, 1)
		assert.Equal(t, "sermon", response[0]["parentType"])
		assert.Equal(t, float64(4), response[0]["parentId"])
	})

	t.Run("unknown parent type", func(t *testing.T) {
		_, _, cleanup := SetupTestDB(t)
		defer cleanup()

		c, w := SetupTestContext()
		c.Params = gin.Params{
			{Key: "parentType", Value: "donation"},
			{Key: "parentId", Value: "4"},
		}
		c.Request = httptest.NewRequest("GET", "/comments/donation/4", nil)

		GetComments(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateComment(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
	}{
		{
			name: "comment on a blog post",
			requestBody: map[string]interface{}{
				"parentType":  "blogpost",
				"parentId":    7,
				"commentText": "Great post",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "string parent id is coerced",
			requestBody: map[string]interface{}{
				"parentType":  "blogpost",
				"parentId":    "7",
				"commentText": "Great post",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "unknown parent type",
			requestBody: map[string]interface{}{
				"parentType":  "ministry",
				"parentId":    7,
				"commentText": "Great post",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing comment text",
			requestBody: map[string]interface{}{
				"parentType": "blogpost",
				"parentId":   7,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "non-numeric parent id coerces to zero",
			requestBody: map[string]interface{}{
				"parentType":  "blogpost",
				"parentId":    "abc",
				"commentText": "Great post",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.expectedStatus == http.StatusCreated {
				now := time.Now()
				mock.ExpectQuery("INSERT INTO \"comment\"").
					WillReturnRows(sqlmock.NewRows([]string{"comment_id"}).AddRow(3))
				mock.ExpectQuery("SELECT").WillReturnRows(
					sqlmock.NewRows(commentColumns()).
						AddRow(3, nil, nil, 7, nil, nil, nil, "Test User", "Great post", 2, now, 2, now))
			}

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, testUser(2, "member"), false)

			jsonData, _ := json.Marshal(tt.requestBody)
			c.Request = httptest.NewRequest("POST", "/comments", bytes.NewBuffer(jsonData))
			c.Request.Header.Set("Content-Type", "application/json")

			CreateComment(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var response map[string]interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, "blogpost", response["parentType"])
				assert.Equal(t, float64(7), response["parentId"])
				assert.Equal(t, "Test User", response["authorName"])
			}
		})
	}
}
