package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func userProfileColumns() []string {
	return []string{
		"user_profile_id", "email", "password", "first_name", "last_name",
		"role", "datetime_create", "datetime_update",
	}
}

func TestRegister(t *testing.T) {
	t.Setenv("SECRET", "test-secret")

	tests := []struct {
		name           string
		requestBody    interface{}
		emailTaken     bool
		insertFails    bool
		expectedStatus int
	}{
		{
			name: "successful registration",
			requestBody: map[string]string{
				"email":     "new@example.com",
				"password":  "password123",
				"firstName": "New",
				"lastName":  "Member",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "duplicate email",
			requestBody: map[string]string{
				"email":    "taken@example.com",
				"password": "password123",
			},
			emailTaken:     true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing password",
			requestBody:    map[string]string{"email": "new@example.com"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			requestBody:    "{invalid json}",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "database insert fails",
			requestBody: map[string]string{
				"email":    "new@example.com",
				"password": "password123",
			},
			insertFails:    true,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			switch {
			case tt.emailTaken:
				mock.ExpectQuery("SELECT COUNT").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			case tt.expectedStatus == http.StatusCreated:
				mock.ExpectQuery("SELECT COUNT").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectQuery("INSERT INTO \"user_profile\"").
					WillReturnRows(sqlmock.NewRows([]string{"user_profile_id"}).AddRow(7))
			case tt.insertFails:
				mock.ExpectQuery("SELECT COUNT").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectQuery("INSERT INTO \"user_profile\"").
					WillReturnError(sqlmock.ErrCancelled)
			}

			c, w := SetupTestContext()

			var jsonData []byte
			if str, ok := tt.requestBody.(string); ok {
				jsonData = []byte(str)
			} else {
				jsonData, _ = json.Marshal(tt.requestBody)
			}

			c.Request = httptest.NewRequest("POST", "/auth/register", bytes.NewBuffer(jsonData))
			c.Request.Header.Set("Content-Type", "application/json")

			Register(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			_ = json.Unmarshal(w.Body.Bytes(), &response)

			if tt.expectedStatus == http.StatusCreated {
				assert.NotEmpty(t, response["token"])
				user := response["user"].(map[string]interface{})
				assert.Equal(t, float64(7), user["id"])
				assert.Equal(t, "member", user["role"])
				assert.Nil(t, user["password"])
			} else {
				assert.NotNil(t, response["error"])
				assert.Nil(t, response["token"])
			}
		})
	}
}

func TestLogin(t *testing.T) {
	t.Setenv("SECRET", "test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	assert.NoError(t, err)

	tests := []struct {
		name           string
		requestBody    interface{}
		userExists     bool
		expectedStatus int
	}{
		{
			name: "successful login",
			requestBody: map[string]string{
				"email":    "test@example.com",
				"password": "password123",
			},
			userExists:     true,
			expectedStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			requestBody: map[string]string{
				"email":    "test@example.com",
				"password": "wrongpassword",
			},
			userExists:     true,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown email",
			requestBody: map[string]string{
				"email":    "nobody@example.com",
				"password": "password123",
			},
			userExists:     false,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid JSON",
			requestBody:    "{invalid json}",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.userExists {
				now := time.Now()
				mock.ExpectQuery("SELECT").WillReturnRows(
					sqlmock.NewRows(userProfileColumns()).
						AddRow(1, "test@example.com", string(hash), "Test", "User", "member", now, now))
			} else if tt.expectedStatus != http.StatusBadRequest {
				mock.ExpectQuery("SELECT").
					WillReturnRows(sqlmock.NewRows(userProfileColumns()))
			}

			c, w := SetupTestContext()

			var jsonData []byte
			if str, ok := tt.requestBody.(string); ok {
				jsonData = []byte(str)
			} else {
				jsonData, _ = json.Marshal(tt.requestBody)
			}

			c.Request = httptest.NewRequest("POST", "/auth/login", bytes.NewBuffer(jsonData))
			c.Request.Header.Set("Content-Type", "application/json")

			Login(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			_ = json.Unmarshal(w.Body.Bytes(), &response)

			if tt.expectedStatus == http.StatusOK {
				assert.NotEmpty(t, response["token"])
			} else {
				assert.Nil(t, response["token"])
			}
		})
	}
}

func TestGetCurrentUser(t *testing.T) {
	c, w := SetupTestContext()
	SetAuthenticatedUser(c, testUser(3, "admin"), true)
	c.Request = httptest.NewRequest("GET", "/auth/me", nil)

	GetCurrentUser(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["admin"])
	user := response["user"].(map[string]interface{})
	assert.Equal(t, float64(3), user["id"])
}
