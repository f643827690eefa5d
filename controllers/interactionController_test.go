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

func toggleLikeRequest(entityType, id, action string) (*gin.Context, *httptest.ResponseRecorder) {
	c, w := SetupTestContext()
	c.Params = gin.Params{
		{Key: "entityType", Value: entityType},
		{Key: "id", Value: id},
	}
	jsonData, _ := json.Marshal(map[string]string{"action": action})
	c.Request = httptest.NewRequest("POST", "/interactions/toggle-like/"+entityType+"/"+id, bytes.NewBuffer(jsonData))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestToggleLike(t *testing.T) {
	now := time.Now()

	sermonRows := func(likes int) *sqlmock.Rows {
		return sqlmock.NewRows(sermonColumns()).
			AddRow(1, "Walking by Faith", "Pastor John", "", "", nil,
				"", "", nil, "", likes, 1, "Pastor John", now, 1, now)
	}

	t.Run("like increments counter", func(t *testing.T) {
		_, mock, cleanup := SetupTestDB(t)
		defer cleanup()

		mock.ExpectQuery("UPDATE \"sermon\"").
			WillReturnRows(sqlmock.NewRows([]string{"likes"}).AddRow(4))
		mock.ExpectQuery("SELECT").WillReturnRows(sermonRows(4))

		c, w := toggleLikeRequest("sermon", "1", "like")
		ToggleLike(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, float64(4), response["likes"])
	})

	t.Run("unlike at zero clamps to zero", func(t *testing.T) {
		_, mock, cleanup := SetupTestDB(t)
		defer cleanup()

		mock.ExpectQuery("UPDATE \"sermon\"").
			WillReturnRows(sqlmock.NewRows([]string{"likes"}).AddRow(-1))
		mock.ExpectExec("UPDATE \"sermon\"").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("SELECT").WillReturnRows(sermonRows(0))

		c, w := toggleLikeRequest("sermon", "1", "unlike")
		ToggleLike(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, float64(0), response["likes"])
	})

	t.Run("unknown entity type", func(t *testing.T) {
		_, _, cleanup := SetupTestDB(t)
		defer cleanup()

		c, w := toggleLikeRequest("ministry", "1", "like")
		ToggleLike(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown action", func(t *testing.T) {
		_, _, cleanup := SetupTestDB(t)
		defer cleanup()

		c, w := toggleLikeRequest("sermon", "1", "boost")
		ToggleLike(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("record not found", func(t *testing.T) {
		_, mock, cleanup := SetupTestDB(t)
		defer cleanup()

		mock.ExpectQuery("UPDATE \"sermon\"").
			WillReturnRows(sqlmock.NewRows([]string{"likes"}))

		c, w := toggleLikeRequest("sermon", "99", "like")
		ToggleLike(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
