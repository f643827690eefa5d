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

func sermonColumns() []string {
	return []string{
		"sermon_id", "title", "speaker", "description", "scripture", "date",
		"video_url", "audio_url", "media_urls", "category", "likes",
		"created_by", "author_name", "datetime_create", "updated_by", "datetime_update",
	}
}

func TestGetSermons(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	date := now.Add(-24 * time.Hour)
	rows := sqlmock.NewRows(sermonColumns()).
		AddRow(1, "Walking by Faith", "Pastor John", "desc", "Heb 11", date,
			"", "", nil, "faith", 3, 1, "Pastor John", now, 1, now).
		AddRow(2, "Grace Alone", "Pastor John", "", "Eph 2", nil,
			"", "", nil, "", 0, 1, "Pastor John", now, 1, now)
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	c, w := SetupTestContext()
	c.Request = httptest.NewRequest("GET", "/sermons", nil)

	GetSermons(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 2)
	assert.Equal(t, "/sermons/1", response[0]["linkPath"])
	assert.Equal(t, float64(3), response[0]["likes"])
	// nil media_urls still serializes as an empty array
	assert.Equal(t, []interface{}{}, response[0]["mediaUrls"])
	assert.Nil(t, response[1]["date"])
}

func TestCreateSermon(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		insertFails    bool
		expectedStatus int
		expectDateNil  bool
	}{
		{
			name: "successful create",
			requestBody: map[string]interface{}{
				"title":   "Walking by Faith",
				"speaker": "Pastor John",
				"date":    "2025-03-09",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "invalid date becomes null",
			requestBody: map[string]interface{}{
				"title": "Walking by Faith",
				"date":  "not-a-date",
			},
			expectedStatus: http.StatusCreated,
			expectDateNil:  true,
		},
		{
			name:           "missing title",
			requestBody:    map[string]interface{}{"speaker": "Pastor John"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			requestBody:    "{invalid json}",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "database insert fails",
			requestBody: map[string]interface{}{
				"title": "Walking by Faith",
			},
			insertFails:    true,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.expectedStatus == http.StatusCreated {
				mock.ExpectQuery("INSERT INTO \"sermon\"").
					WillReturnRows(sqlmock.NewRows([]string{"sermon_id"}).AddRow(5))
			} else if tt.insertFails {
				mock.ExpectQuery("INSERT INTO \"sermon\"").
					WillReturnError(sqlmock.ErrCancelled)
			}

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, testUser(1, "admin"), true)

			var jsonData []byte
			if str, ok := tt.requestBody.(string); ok {
				jsonData = []byte(str)
			} else {
				jsonData, _ = json.Marshal(tt.requestBody)
			}

			c.Request = httptest.NewRequest("POST", "/sermons", bytes.NewBuffer(jsonData))
			c.Request.Header.Set("Content-Type", "application/json")

			CreateSermon(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var response map[string]interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, float64(5), response["id"])
				assert.Equal(t, "/sermons/5", response["linkPath"])
				assert.Equal(t, []interface{}{}, response["comments"])
				assert.Equal(t, "Test User", response["authorName"])
				if tt.expectDateNil {
					assert.Nil(t, response["date"])
				}
			}
		})
	}
}

func TestUpdateSermon(t *testing.T) {
	tests := []struct {
		name           string
		sermonID       string
		requestBody    interface{}
		rowsAffected   int64
		expectedStatus int
	}{
		{
			name:           "successful update",
			sermonID:       "1",
			requestBody:    map[string]interface{}{"title": "New Title"},
			rowsAffected:   1,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "sermon not found",
			sermonID:       "99",
			requestBody:    map[string]interface{}{"title": "New Title"},
			rowsAffected:   0,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid ID",
			sermonID:       "abc",
			requestBody:    map[string]interface{}{"title": "New Title"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.expectedStatus != http.StatusBadRequest {
				mock.ExpectExec("UPDATE \"sermon\"").
					WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
				if tt.rowsAffected > 0 {
					now := time.Now()
					mock.ExpectQuery("SELECT").WillReturnRows(
						sqlmock.NewRows(sermonColumns()).
							AddRow(1, "New Title", "Pastor John", "", "", nil,
								"", "", nil, "", 0, 1, "Pastor John", now, 1, now))
				}
			}

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, testUser(1, "admin"), true)
			c.Params = gin.Params{{Key: "id", Value: tt.sermonID}}

			jsonData, _ := json.Marshal(tt.requestBody)
			c.Request = httptest.NewRequest("PUT", "/sermons/"+tt.sermonID, bytes.NewBuffer(jsonData))
			c.Request.Header.Set("Content-Type", "application/json")

			UpdateSermon(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var response map[string]interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, "New Title", response["title"])
				assert.Equal(t, "/sermons/1", response["linkPath"])
			}
		})
	}
}

func TestDeleteSermon(t *testing.T) {
	tests := []struct {
		name           string
		sermonID       string
		rowsAffected   int64
		expectedStatus int
	}{
		{
			name:           "successful delete",
			sermonID:       "1",
			rowsAffected:   1,
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "sermon not found",
			sermonID:       "99",
			rowsAffected:   0,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid ID",
			sermonID:       "abc",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.expectedStatus != http.StatusBadRequest {
				mock.ExpectExec("DELETE FROM \"sermon\"").
					WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
			}

			c, w := SetupTestContext()
			c.Params = gin.Params{{Key: "id", Value: tt.sermonID}}
			c.Request = httptest.NewRequest("DELETE", "/sermons/"+tt.sermonID, nil)

			DeleteSermon(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusNoContent {
				assert.Empty(t, w.Body.String())
			}
		})
	}
}
