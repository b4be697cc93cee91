package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awais-ur-rehman/Farhat-Rena-backend/auth"
)

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireUser, func(c *gin.Context) {
		email, _ := CallerEmail(c)
		c.JSON(http.StatusOK, gin.H{"email": email})
	})
	return r
}

func TestRequireUser(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")

	token, err := auth.IssueToken(7, "a@x.com")
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 7,
		"email":   "a@x.com",
		"exp":     time.Now().Add(-time.Minute).Unix(),
	})
	expiredToken, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 7,
		"email":   "a@x.com",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	forgedToken, err := forged.SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	tests := []struct {
		name       string
		token      string
		email      string
		wantStatus int
	}{
		{"valid token and email", token, "a@x.com", http.StatusOK},
		{"missing token", "", "a@x.com", http.StatusUnauthorized},
		{"missing email header", token, "", http.StatusUnauthorized},
		{"garbage token", "not-a-jwt", "a@x.com", http.StatusUnauthorized},
		{"expired token", expiredToken, "a@x.com", http.StatusUnauthorized},
		{"wrong signing key", forgedToken, "a@x.com", http.StatusUnauthorized},
		// The claimed email is trusted once the token itself verifies; the
		// verifier does not cross-check it against the token's subject.
		{"valid token, different claimed email", token, "b@x.com", http.StatusOK},
	}

	r := protectedRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.token != "" {
				req.Header.Set("auth-token", tt.token)
			}
			if tt.email != "" {
				req.Header.Set("user-email", tt.email)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestValidateAPIKey(t *testing.T) {
	os.Setenv("ADMIN_API_KEY", "admin-key")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", ValidateAPIKey, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name       string
		key        string
		wantStatus int
	}{
		{"valid key", "admin-key", http.StatusOK},
		{"missing key", "", http.StatusUnauthorized},
		{"wrong key", "nope", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.key != "" {
				req.Header.Set("X-API-KEY", tt.key)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
