package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func respond(t *testing.T, err error) (int, HTTPError) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Respond(c, err)

	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestRespond(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", ErrValidation("missing_fields", "All fields are required"), http.StatusBadRequest, "missing_fields"},
		{"conflict is 400", ErrConflict("already_booked", "You already booked this class"), http.StatusBadRequest, "already_booked"},
		{"unauthenticated", ErrUnauthenticated("invalid_password", "Invalid password"), http.StatusUnauthorized, "invalid_password"},
		{"forbidden", ErrForbidden("forbidden", "Access denied"), http.StatusForbidden, "forbidden"},
		{"not found", ErrNotFound("booking_not_found", "Booking not found"), http.StatusNotFound, "booking_not_found"},
		{"upload", ErrUpload(errors.New("s3 down")), http.StatusInternalServerError, "upload_failed"},
		{"wrapped", fmt.Errorf("ctx: %w", ErrNotFound("user_not_found", "User not found")), http.StatusNotFound, "user_not_found"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := respond(t, tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestRespond_HidesInternalDetails(t *testing.T) {
	_, body := respond(t, errors.New("pq: password authentication failed"))
	assert.Equal(t, "Internal server error", body.Message)

	_, body = respond(t, ErrUpload(errors.New("AccessDenied: bucket policy")))
	assert.Equal(t, "Upload failed", body.Message)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(gorm.ErrRecordNotFound))
	assert.False(t, IsUniqueViolation(nil))
}
