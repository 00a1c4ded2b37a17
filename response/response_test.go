package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/anna02272/Accommodation-Booking-Platform-Gobnb/errors"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(err error) (*httptest.ResponseRecorder, Response) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	FromError(c, err)

	var body Response
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		mess   string
	}{
		{
			name:   "validation",
			err:    apperrors.NewAppError(apperrors.ErrCodeInvalidGuests, "Number of guests must be at least 1", nil),
			status: http.StatusBadRequest,
			mess:   "Number of guests must be at least 1",
		},
		{
			name:   "remote rejection keeps status",
			err:    &apperrors.RemoteError{Status: http.StatusConflict, Message: "Dates are already booked"},
			status: http.StatusConflict,
			mess:   "Dates are already booked",
		},
		{
			name:   "remote server failure",
			err:    &apperrors.RemoteError{Status: http.StatusInternalServerError, Message: "db down"},
			status: http.StatusBadGateway,
			mess:   "db down",
		},
		{
			name:   "transport failure",
			err:    &apperrors.RemoteError{Unavailable: true},
			status: http.StatusServiceUnavailable,
			mess:   apperrors.ServiceUnavailableMessage,
		},
		{
			name:   "missing token",
			err:    apperrors.NewAppError(apperrors.ErrCodeMissingToken, "missing token", nil),
			status: http.StatusUnauthorized,
			mess:   "Unauthenticated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := run(tt.err)
			require.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.mess, body.Mess)
			assert.Equal(t, 0, body.Code)
		})
	}
}
