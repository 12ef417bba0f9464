package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthcare-portal/internal/models"
	"healthcare-portal/internal/utils"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)

	tests := []struct {
		name   string
		err    error
		status int
		fields map[string]string
	}{
		{
			name:   "validation",
			err:    models.FieldError("email", "Email already exists", models.ErrDuplicateKey),
			status: http.StatusBadRequest,
			fields: map[string]string{"email": "Email already exists"},
		},
		{
			name:   "wrapped validation",
			err:    fmt.Errorf("register: %w", models.FieldError("age", "Please enter a valid age (1-150)", nil)),
			status: http.StatusBadRequest,
			fields: map[string]string{"age": "Please enter a valid age (1-150)"},
		},
		{name: "credentials", err: models.ErrInvalidCredentials, status: http.StatusUnauthorized},
		{name: "not found", err: fmt.Errorf("load: %w", models.ErrNotFound), status: http.StatusNotFound},
		{name: "infrastructure", err: errors.New("connection refused"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, log, "TestRespondError", tt.err)

			assert.Equal(t, tt.status, w.Code)
			var resp utils.ResponseData
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.fields, resp.Fields)
			assert.NotContains(t, resp.Error, "connection refused")
		})
	}
}
