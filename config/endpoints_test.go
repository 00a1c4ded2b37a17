package config

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEndpoints_Overrides(t *testing.T) {
	t.Setenv("RES_API_URL", "http://reservations:9000/api/")

	e := LoadEndpoints()

	assert.Equal(t, "http://reservations:9000/api/reservations/availability/acc-1", e.CheckAvailability("acc-1"))
	assert.Equal(t, "http://localhost:8080/api/auth/login", e.Login())
}

func TestEndpoints_EscapesSegments(t *testing.T) {
	e := SingleHost("http://api")

	assert.Equal(t, "http://api/reservations/cancel/a%2Fb", e.CancelReservation("a/b"))
	assert.Equal(t, "http://api/reservations/host/h1/cancel-rate", e.HostCancelRate("h1"))
	assert.Equal(t, "http://api/rating/host/h1/average", e.HostAverageRating("h1"))
}

func TestEndpoints_Search(t *testing.T) {
	q := url.Values{}
	q.Set("location", "Novi Sad")
	q.Set("guests", "2")

	assert.Equal(t, "http://api/accommodations/get?guests=2&location=Novi+Sad", SingleHost("http://api").SearchAccommodations(q))
}
