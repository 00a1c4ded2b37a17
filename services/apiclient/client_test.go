package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/errors"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetDecodesAndSendsToken(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Villa"}`))
	}))
	defer srv.Close()

	ctx := session.WithSession(context.Background(), &session.Session{Token: "tok"})
	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, New().Get(ctx, srv.URL+"/acc", &out))

	assert.Equal(t, "Villa", out.Name)
	assert.Equal(t, "Bearer tok", auth)
}

func TestClient_PostSendsJSONAndHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "yes", r.Header.Get("X-Test"))
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	err := New().Post(context.Background(), srv.URL, map[string]string{"a": "b"}, nil, Header{Key: "X-Test", Value: "yes"})
	assert.NoError(t, err)
}

func TestClient_RemoteErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"error field", `{"error":"Dates are not available","message":"ignored"}`, "Dates are not available"},
		{"message field", `{"message":"Accommodation not found"}`, "Accommodation not found"},
		{"raw body", "plain failure\n", "plain failure"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := New().Get(context.Background(), srv.URL, nil)
			remoteErr := errors.GetRemoteError(err)
			require.NotNil(t, remoteErr)
			assert.Equal(t, http.StatusBadRequest, remoteErr.Status)
			assert.Equal(t, tt.want, remoteErr.Message)
			assert.False(t, remoteErr.Unavailable)
		})
	}
}

func TestClient_TransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	err := New().Get(context.Background(), addr, nil)

	assert.True(t, errors.IsUnavailable(err))
	assert.Equal(t, errors.ServiceUnavailableMessage, errors.UserMessage(err))
}

func TestClient_BreakerOpensOnServerErrors(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(WithBreakerSettings(BreakerSettings{MaxFailures: 2, OpenTimeout: time.Minute}))
	for i := 0; i < 2; i++ {
		err := c.Get(context.Background(), srv.URL, nil)
		require.NotNil(t, errors.GetRemoteError(err))
	}

	err := c.Get(context.Background(), srv.URL, nil)

	assert.True(t, errors.IsUnavailable(err))
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestClient_ClientErrorsDoNotTripBreaker(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(WithBreakerSettings(BreakerSettings{MaxFailures: 1, OpenTimeout: time.Minute}))
	for i := 0; i < 3; i++ {
		err := c.Get(context.Background(), srv.URL, nil)
		remoteErr := errors.GetRemoteError(err)
		require.NotNil(t, remoteErr)
		assert.Equal(t, http.StatusNotFound, remoteErr.Status)
	}
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestClient_AbandonedRequestsDoNotTripBreaker(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.URL.Path == "/slow" {
			select {
			case <-r.Context().Done():
			case <-time.After(300 * time.Millisecond):
			}
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(WithBreakerSettings(BreakerSettings{MaxFailures: 2, OpenTimeout: time.Minute}))
	for i := 0; i < 3; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		err := c.Get(ctx, srv.URL+"/slow", nil)
		cancel()

		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.False(t, errors.IsUnavailable(err))
	}

	before := atomic.LoadInt32(&hits)
	require.NoError(t, c.Get(context.Background(), srv.URL+"/fast", nil))
	assert.Equal(t, before+1, atomic.LoadInt32(&hits))
}
