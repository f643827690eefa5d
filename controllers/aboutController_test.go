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

func aboutSectionRow(id int, title string, displayOrder int, isCore bool) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"about_section_id", "title", "body", "image_url", "display_order", "is_core",
		"created_by", "author_name", "datetime_create", "updated_by", "datetime_update",
	}).AddRow(id, title, "body", "", displayOrder, isCore, 1, "Test User", now, 1, now)
}

func TestUpdateAboutSection(t *testing.T) {
	tests := []struct {
		name          string
		storedCore    bool
		requestBody   map[string]interface{}
		expectedOrder int
	}{
		{
			name:          "regular section accepts display order",
			storedCore:    false,
			requestBody:   map[string]interface{}{"title": "Our Mission", "displayOrder": 7},
			expectedOrder: 7,
		},
		{
			name:          "core section keeps stored display order",
			storedCore:    true,
			requestBody:   map[string]interface{}{"title": "Our Mission", "displayOrder": 7},
			expectedOrder: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			mock.ExpectQuery("SELECT").
				WillReturnRows(aboutSectionRow(1, "About Us", 2, tt.storedCore))
			mock.ExpectExec("UPDATE \"about_section\"").
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectQuery("SELECT").
				WillReturnRows(aboutSectionRow(1, "Our Mission", tt.expectedOrder, tt.storedCore))

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, testUser(1, "admin"), true)
			c.Params = gin.Params{{Key: "id", Value: "1"}}

			jsonData, _ := json.Marshal(tt.requestBody)
			c.Request = httptest.NewRequest("PUT", "/aboutsections/1", bytes.NewBuffer(jsonData))
			c.Request.Header.Set("Content-Type", "application/json")

			UpdateAboutSection(c)

			assert.Equal(t, http.StatusOK, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, float64(tt.expectedOrder), response["displayOrder"])
		})
	}
}

func TestDeleteAboutSection(t *testing.T) {
	tests := []struct {
		name           string
		sectionExists  bool
		isCore         bool
		expectedStatus int
	}{
		{
			name:           "regular section deletes",
			sectionExists:  true,
			isCore:         false,
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "core section is protected",
			sectionExists:  true,
			isCore:         true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "section not found",
			sectionExists:  false,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.sectionExists {
				mock.ExpectQuery("SELECT").
					WillReturnRows(aboutSectionRow(1, "About Us", 1, tt.isCore))
				if !tt.isCore {
					mock.ExpectExec("DELETE FROM \"about_section\"").
						WillReturnResult(sqlmock.NewResult(0, 1))
				}
			} else {
				mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{
					"about_section_id", "title", "body", "image_url", "display_order", "is_core",
					"created_by", "author_name", "datetime_create", "updated_by", "datetime_update",
				}))
			}

			c, w := SetupTestContext()
			c.Params = gin.Params{{Key: "id", Value: "1"}}
			c.Request = httptest.NewRequest("DELETE", "/aboutsections/1", nil)

			DeleteAboutSection(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
