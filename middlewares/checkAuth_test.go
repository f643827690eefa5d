package middlewares

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ChurchCMS/initializers"
	"github.com/ChurchCMS/models"
	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func generateValidToken(userID int, role string, expiresIn time.Duration) string {
	secret := os.Getenv("SECRET")
	if secret == "" {
		secret = "test-secret-key"
		os.Setenv("SECRET", secret)
	}

	claims := jwt.MapClaims{
		"id":   float64(userID),
		"exp":  float64(time.Now().Add(expiresIn).Unix()),
		"role": role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte(secret))
	return tokenString
}

func generateExpiredToken(userID int) string {
	return generateValidToken(userID, "member", -1*time.Hour)
}

func generateInvalidSignatureToken(userID int) string {
	claims := jwt.MapClaims{
		"id":   float64(userID),
		"exp":  float64(time.Now().Add(24 * time.Hour).Unix()),
		"role": "member",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte("wrong-secret-key"))
	return tokenString
}

func setupTestDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock database: %v", err)
	}

	goquDB := goqu.New("postgres", db)

	oldDB := initializers.DB
	initializers.DB = goquDB

	cleanup := func() {
		db.Close()
		initializers.DB = oldDB
	}

	return mock, cleanup
}

func setupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/test", nil)
	return c, w
}

func userProfileRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"user_profile_id", "email", "password", "first_name", "last_name",
		"role", "datetime_create", "datetime_update",
	})
}

func TestCheckAuth(t *testing.T) {
	tests := []struct {
		name              string
		authHeader        string
		mockUserLookup    bool
		userExists        bool
		expectedStatus    int
		expectAbort       bool
		expectCurrentUser bool
		adminRole         bool
	}{
		{
			name:           "missing authorization header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectAbort:    true,
		},
		{
			name:           "invalid token format - no Bearer prefix",
			authHeader:     "InvalidToken123",
			expectedStatus: http.StatusUnauthorized,
			expectAbort:    true,
		},
		{
			name:           "invalid token format - wrong prefix",
			authHeader:     "Basic " + generateValidToken(1, "member", 24*time.Hour),
			expectedStatus: http.StatusUnauthorized,
			expectAbort:    true,
		},
		{
			name:           "invalid JWT signature",
			authHeader:     "Bearer " + generateInvalidSignatureToken(1),
			expectedStatus: http.StatusUnauthorized,
			expectAbort:    true,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer " + generateExpiredToken(1),
			expectedStatus: http.StatusUnauthorized,
			expectAbort:    true,
		},
		{
			name:           "valid token - user not found in database",
			authHeader:     "Bearer " + generateValidToken(999, "member", 24*time.Hour),
			mockUserLookup: true,
			expectedStatus: http.StatusUnauthorized,
			expectAbort:    true,
		},
		{
			name:              "valid token - regular member",
			authHeader:        "Bearer " + generateValidToken(1, "member", 24*time.Hour),
			mockUserLookup:    true,
			userExists:        true,
			expectedStatus:    http.StatusOK,
			expectCurrentUser: true,
		},
		{
			name:              "valid token - admin",
			authHeader:        "Bearer " + generateValidToken(2, "admin", 24*time.Hour),
			mockUserLookup:    true,
			userExists:        true,
			expectedStatus:    http.StatusOK,
			expectCurrentUser: true,
			adminRole:         true,
		},
		{
			name:              "valid token - owner counts as admin",
			authHeader:        "Bearer " + generateValidToken(2, "owner", 24*time.Hour),
			mockUserLookup:    true,
			userExists:        true,
			expectedStatus:    http.StatusOK,
			expectCurrentUser: true,
			adminRole:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, cleanup := setupTestDB(t)
			defer cleanup()

			if tt.mockUserLookup {
				now := time.Now()
				rows := userProfileRows()
				if tt.userExists {
					if tt.adminRole {
						rows.AddRow(2, "admin@example.com", "hashedpassword", "Admin", "User", "admin", now, now)
					} else {
						rows.AddRow(1, "test@example.com", "hashedpassword", "Test", "User", "member", now, now)
					}
				}
				mock.ExpectQuery("SELECT").WillReturnRows(rows)
			}

			c, w := setupTestContext()

			if tt.authHeader != "" {
				c.Request.Header.Set("Authorization", tt.authHeader)
			}

			CheckAuth(c)

			if tt.expectAbort {
				assert.True(t, c.IsAborted(), "Expected request to be aborted")
				assert.Equal(t, tt.expectedStatus, w.Code)
			} else {
				assert.False(t, c.IsAborted(), "Expected request not to be aborted")
			}

			if tt.expectCurrentUser {
				user, exists := c.Get("currentUser")
				assert.True(t, exists, "Expected currentUser to be set")
				assert.NotNil(t, user)

				admin, exists := c.Get("admin")
				assert.True(t, exists, "Expected admin to be set")
				assert.Equal(t, tt.adminRole, admin.(bool))

				profile := user.(models.UserProfile)
				if tt.adminRole {
					assert.Equal(t, 2, profile.User_Profile_ID)
				} else {
					assert.Equal(t, 1, profile.User_Profile_ID)
				}
			} else {
				_, exists := c.Get("currentUser")
				assert.False(t, exists, "Expected currentUser not to be set")
			}
		})
	}
}

func TestCheckAdmin(t *testing.T) {
	t.Run("admin passes through", func(t *testing.T) {
		c, _ := setupTestContext()
		c.Set("admin", true)

		CheckAdmin(c)

		assert.False(t, c.IsAborted())
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		c, w := setupTestContext()
		c.Set("admin", false)

		CheckAdmin(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
