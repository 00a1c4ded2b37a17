package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/constants"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/dto"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/models"

	"github.com/go-redis/redismock/v9"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccommodations_ServedFromCache(t *testing.T) {
	cached := []models.Accommodation{{ID: "a", Location: "Budva"}}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	db, mock := redismock.NewClientMock()
	mock.ExpectGet(constants.CacheKeyAccommodations).SetVal(string(payload))

	api := newFakeAPI()
	svc := NewAccommodationService(ServiceOptions{API: api, Endpoints: testEndpoints(), Redis: db})

	got, err := svc.GetAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(got))
	assert.Empty(t, api.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccommodations_MissRefreshes(t *testing.T) {
	e := testEndpoints()
	list := []models.Accommodation{{ID: "a"}, {ID: "b"}}
	payload, err := json.Marshal(list)
	require.NoError(t, err)

	db, mock := redismock.NewClientMock()
	mock.ExpectGet(constants.CacheKeyAccommodations).RedisNil()
	mock.ExpectSet(constants.CacheKeyAccommodations, payload, constants.AccommodationsTTL).SetVal("OK")

	api := newFakeAPI().on(http.MethodGet, e.Accommodations(), list)
	svc := NewAccommodationService(ServiceOptions{API: api, Endpoints: e, Redis: db})

	got, err := svc.GetAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccommodations_CreateInvalidatesCache(t *testing.T) {
	e := testEndpoints()
	db, mock := redismock.NewClientMock()
	mock.ExpectDel(constants.CacheKeyAccommodations).SetVal(1)

	api := newFakeAPI().on(http.MethodPost, e.CreateAccommodation(), models.Accommodation{ID: "new"})
	svc := NewAccommodationService(ServiceOptions{API: api, Endpoints: e, Redis: db})

	acc, err := svc.Create(context.Background(), &dto.AccommodationRequest{Name: "Loft", Location: "Kotor", MinGuests: 1, MaxGuests: 2})

	require.NoError(t, err)
	assert.Equal(t, "new", acc.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchQueryValues(t *testing.T) {
	tv := true
	guests := 3
	q := SearchQueryValues(&dto.SearchFilters{Location: "Budva", Guests: &guests, TV: &tv})

	assert.Equal(t, "Budva", q.Get("location"))
	assert.Equal(t, "3", q.Get("guests"))
	assert.Equal(t, "true", q.Get("tv"))
	assert.Equal(t, "false", q.Get("wifi"))
	assert.Equal(t, "false", q.Get("ac"))

	start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2030, 1, 3, 0, 0, 0, 0, time.UTC)
	minPrice, maxPrice := 50.0, 150.5
	q = SearchQueryValues(&dto.SearchFilters{
		Location:  "Novi Sad",
		StartDate: &start,
		EndDate:   &end,
		MinPrice:  &minPrice,
		MaxPrice:  &maxPrice,
	})
	assert.Equal(t, "end_date=2030-01-03&location=Novi+Sad&max_price=150.5&min_price=50&start_date=2030-01-01", q.Encode())

	assert.Empty(t, SearchQueryValues(&dto.SearchFilters{}))
	assert.Empty(t, SearchQueryValues(nil))
}

func TestHostID(t *testing.T) {
	e := testEndpoints()
	api := newFakeAPI().on(http.MethodGet, e.HostIDByAccommodation("acc1"), map[string]string{"hostId": "h1"})
	svc := NewAccommodationService(ServiceOptions{API: api, Endpoints: e})

	hostID, err := svc.HostID(context.Background(), "acc1")

	require.NoError(t, err)
	assert.Equal(t, "h1", hostID)
}
