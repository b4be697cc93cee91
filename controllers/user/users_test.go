package userControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/awais-ur-rehman/Farhat-Rena-backend/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.CartItem{}))
	return db
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func userRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/register", Register(db))
	r.POST("/login", Login(db))
	r.POST("/getuser", GetUser(db))
	return r
}

func TestRegisterAndLogin(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	db := openTestDB(t)
	r := userRouter(db)

	w := postJSON(r, "/register", gin.H{
		"username": "A", "email": "a@x.com", "password": "pw123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Same email again is a conflict.
	w = postJSON(r, "/register", gin.H{
		"username": "A2", "email": "a@x.com", "password": "other",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}

	w = postJSON(r, "/login", gin.H{"email": "a@x.com", "password": "pw123"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)

	w = postJSON(r, "/login", gin.H{"email": "a@x.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUser(t *testing.T) {
	db := openTestDB(t)
	r := userRouter(db)

	w := postJSON(r, "/register", gin.H{
		"username": "A", "email": "a@x.com", "password": "pw123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Name    string `json:"name"`
	}
	w = postJSON(r, "/getuser", gin.H{"email": "a@x.com"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "A", resp.Name)

	w = postJSON(r, "/getuser", gin.H{"email": "ghost@x.com"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
