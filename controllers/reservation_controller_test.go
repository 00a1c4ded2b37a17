package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/config"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/middleware"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/response"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/apiclient"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backend struct {
	hits    int32
	handler http.HandlerFunc
}

func newBackend(t *testing.T, handler http.HandlerFunc) (*backend, config.Endpoints) {
	b := &backend{handler: handler}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&b.hits, 1)
		if b.handler != nil {
			b.handler(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return b, config.SingleHost(srv.URL)
}

func newReservationRouter(endpoints config.Endpoints) *gin.Engine {
	gin.SetMode(gin.TestMode)

	opts := services.ServiceOptions{API: apiclient.New(), Endpoints: endpoints}
	reservations := services.NewReservationService(opts)
	accommodations := services.NewAccommodationService(opts)
	ratings := services.NewRatingService(opts)
	feasibility := services.NewFeasibilityChecker(reservations, nil, 2)
	featured := services.NewFeaturedService(opts, reservations, ratings, nil, nil)
	booking := services.NewBookingFacade(opts, reservations, accommodations, ratings, feasibility, featured, nil)
	ctl := NewReservationController(booking, reservations, feasibility)

	r := gin.New()
	r.POST("/reservations", middleware.AuthMiddleware("Guest"), ctl.Create)
	r.POST("/reservations/availability/:accId", ctl.CheckAvailability)
	return r
}

func guestToken(t *testing.T) string {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": "g1", "userRole": "Guest"}).SignedString([]byte("test"))
	require.NoError(t, err)
	return "Bearer " + signed
}

func postJSON(t *testing.T, r http.Handler, path, token string, body interface{}) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	var res response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestCreateReservation_ZeroGuestsNeverReachesBackend(t *testing.T) {
	b, endpoints := newBackend(t, nil)
	r := newReservationRouter(endpoints)

	w := postJSON(t, r, "/reservations", guestToken(t), map[string]interface{}{
		"accommodation_id": "acc1",
		"check_in_date":    "2024-06-01",
		"check_out_date":   "2024-06-05",
		"check_in_time":    14,
		"number_of_guests": 0,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Number of guests must be at least 1", decode(t, w).Mess)
	assert.Equal(t, int32(0), atomic.LoadInt32(&b.hits))
}

func TestCreateReservation_Unauthenticated(t *testing.T) {
	b, endpoints := newBackend(t, nil)
	r := newReservationRouter(endpoints)

	w := postJSON(t, r, "/reservations", "", map[string]interface{}{"accommodation_id": "acc1"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, int32(0), atomic.LoadInt32(&b.hits))
}

func TestCreateReservation_DatesTaken(t *testing.T) {
	_, endpoints := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/reservations/availability/acc1" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"Accommodation is not available"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	r := newReservationRouter(endpoints)

	w := postJSON(t, r, "/reservations", guestToken(t), map[string]interface{}{
		"accommodation_id": "acc1",
		"check_in_date":    "2024-06-01",
		"check_out_date":   "2024-06-05",
		"check_in_time":    14,
		"number_of_guests": 2,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Accommodation is not available", decode(t, w).Mess)
}

func TestCheckAvailability_BackendDown(t *testing.T) {
	r := newReservationRouter(config.SingleHost("http://127.0.0.1:1"))

	w := postJSON(t, r, "/reservations/availability/acc1", "", map[string]string{
		"check_in_date":  "2024-06-01",
		"check_out_date": "2024-06-05",
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCheckAvailability_CheckOutBeforeCheckIn(t *testing.T) {
	b, endpoints := newBackend(t, nil)
	r := newReservationRouter(endpoints)

	w := postJSON(t, r, "/reservations/availability/acc1", "", map[string]string{
		"check_in_date":  "2024-06-05",
		"check_out_date": "2024-06-01",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int32(0), atomic.LoadInt32(&b.hits))
}
