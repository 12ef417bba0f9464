package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthcare-portal/internal/models"
	"healthcare-portal/internal/utils"
)

const secret = "test-secret"

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/doctor", AuthMiddleware(secret), RoleAuthMiddleware(models.RoleDoctor), func(c *gin.Context) {
		identity, _ := GetIdentityFromContext(c)
		c.String(http.StatusOK, identity)
	})
	return r
}

func call(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/doctor", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter()

	doctorToken, err := utils.GenerateToken("dr.smith", models.RoleDoctor, secret, time.Hour)
	require.NoError(t, err)
	patientToken, err := utils.GenerateToken("jane@example.com", models.RolePatient, secret, time.Hour)
	require.NoError(t, err)
	foreignToken, err := utils.GenerateToken("dr.smith", models.RoleDoctor, "other", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"bad signature", "Bearer " + foreignToken, http.StatusUnauthorized},
		{"wrong role", "Bearer " + patientToken, http.StatusForbidden},
		{"doctor", "Bearer " + doctorToken, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := call(r, tt.header)
			assert.Equal(t, tt.status, w.Code)
		})
	}

	w := call(r, "Bearer "+doctorToken)
	assert.Equal(t, "dr.smith", w.Body.String())
}

func TestRoleAuthWithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/doctor", RoleAuthMiddleware(models.RoleDoctor), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := call(r, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
