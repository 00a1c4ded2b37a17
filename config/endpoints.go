package config

import (
	"net/url"
	"strings"
)

// Endpoints is the URL table of the backend services.
type Endpoints struct {
	AuthAPI           string
	ReservationsAPI   string
	AccommodationAPI  string
	ProfileAPI        string
	RecommendationAPI string
	NotificationAPI   string
	RatingAPI         string
}

// DefaultEndpoints mirrors the local docker-compose ports.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		AuthAPI:           "http://localhost:8080/api",
		ReservationsAPI:   "http://localhost:8082/api",
		AccommodationAPI:  "http://localhost:8083/api",
		ProfileAPI:        "http://localhost:8084/api",
		RecommendationAPI: "http://localhost:8085/api",
		NotificationAPI:   "http://localhost:8086/api",
		RatingAPI:         "http://localhost:8087/api",
	}
}

// LoadEndpoints applies *_API_URL overrides on top of the defaults
func LoadEndpoints() Endpoints {
	d := DefaultEndpoints()
	return Endpoints{
		AuthAPI:           trim(GetEnvDefault("AUTH_API_URL", d.AuthAPI)),
		ReservationsAPI:   trim(GetEnvDefault("RES_API_URL", d.ReservationsAPI)),
		AccommodationAPI:  trim(GetEnvDefault("ACC_API_URL", d.AccommodationAPI)),
		ProfileAPI:        trim(GetEnvDefault("PROFILE_API_URL", d.ProfileAPI)),
		RecommendationAPI: trim(GetEnvDefault("REC_API_URL", d.RecommendationAPI)),
		NotificationAPI:   trim(GetEnvDefault("NOTIF_API_URL", d.NotificationAPI)),
		RatingAPI:         trim(GetEnvDefault("RATING_API_URL", d.RatingAPI)),
	}
}

// SingleHost points every service at base. Used in tests against one fake API.
func SingleHost(base string) Endpoints {
	base = trim(base)
	return Endpoints{
		AuthAPI:           base,
		ReservationsAPI:   base,
		AccommodationAPI:  base,
		ProfileAPI:        base,
		RecommendationAPI: base,
		NotificationAPI:   base,
		RatingAPI:         base,
	}
}

func trim(s string) string {
	return strings.TrimRight(s, "/")
}

func join(base string, parts ...string) string {
	escaped := make([]string, 0, len(parts)+1)
	escaped = append(escaped, base)
	for _, p := range parts {
		escaped = append(escaped, url.PathEscape(p))
	}
	return strings.Join(escaped, "/")
}

// auth
func (e Endpoints) Login() string    { return e.AuthAPI + "/auth/login" }
func (e Endpoints) Register() string { return e.AuthAPI + "/auth/register" }
func (e Endpoints) VerifyEmail(code string) string {
	return join(e.AuthAPI+"/auth/verifyEmail", code)
}
func (e Endpoints) ResendVerification(email string) string {
	return join(e.AuthAPI+"/auth/resendVerification", email)
}
func (e Endpoints) ForgotPassword() string { return e.AuthAPI + "/auth/forgotPassword" }
func (e Endpoints) ResetPassword(token string) string {
	return join(e.AuthAPI+"/auth/resetPassword", token)
}
func (e Endpoints) CurrentUser() string    { return e.AuthAPI + "/users/currentUser" }
func (e Endpoints) ChangePassword() string { return e.AuthAPI + "/users/changePassword" }

// profile
func (e Endpoints) CurrentProfile() string { return e.ProfileAPI + "/profile/getUser" }
func (e Endpoints) UpdateProfile() string  { return e.ProfileAPI + "/profile/updateUser" }
func (e Endpoints) DeleteProfile() string  { return e.ProfileAPI + "/profile/delete" }
func (e Endpoints) Featured(hostID string) string {
	return join(e.ProfileAPI+"/profile/featured", hostID)
}
func (e Endpoints) SetFeatured(hostID string) string {
	return join(e.ProfileAPI+"/profile/setFeatured", hostID)
}
func (e Endpoints) UnsetFeatured(hostID string) string {
	return join(e.ProfileAPI+"/profile/unsetFeatured", hostID)
}

// accommodations
func (e Endpoints) Accommodations() string { return e.AccommodationAPI + "/accommodations/get" }
func (e Endpoints) Accommodation(id string) string {
	return join(e.AccommodationAPI+"/accommodations/get", id)
}
func (e Endpoints) AccommodationsByHost(hostID string) string {
	return join(e.AccommodationAPI+"/accommodations/get/host", hostID)
}
func (e Endpoints) SearchAccommodations(query url.Values) string {
	return e.AccommodationAPI + "/accommodations/get?" + query.Encode()
}
func (e Endpoints) HostIDByAccommodation(accID string) string {
	return join(e.AccommodationAPI+"/accommodations/get/hostid", accID)
}
func (e Endpoints) CreateAccommodation() string { return e.AccommodationAPI + "/accommodations/create" }
func (e Endpoints) DeleteAccommodation(id string) string {
	return join(e.AccommodationAPI+"/accommodations/delete", id)
}
func (e Endpoints) Recommendations(guestID string) string {
	return join(e.RecommendationAPI+"/recommendations", guestID)
}

// reservations
func (e Endpoints) CreateReservation() string { return e.ReservationsAPI + "/reservations/create" }
func (e Endpoints) Reservations() string      { return e.ReservationsAPI + "/reservations/getAll" }
func (e Endpoints) CancelReservation(id string) string {
	return join(e.ReservationsAPI+"/reservations/cancel", id)
}
func (e Endpoints) CheckAvailability(accID string) string {
	return join(e.ReservationsAPI+"/reservations/availability", accID)
}
func (e Endpoints) Prices(accID string) string {
	return join(e.ReservationsAPI+"/reservations/prices", accID)
}
func (e Endpoints) HostCancelRate(hostID string) string {
	return join(e.ReservationsAPI+"/reservations/host", hostID, "cancel-rate")
}
func (e Endpoints) HostTotal(hostID string) string {
	return join(e.ReservationsAPI+"/reservations/host", hostID, "total")
}
func (e Endpoints) HostDuration(hostID string) string {
	return join(e.ReservationsAPI+"/reservations/host", hostID, "duration")
}

// availability
func (e Endpoints) CreateAvailability(accID string) string {
	return join(e.ReservationsAPI+"/availability/create", accID)
}
func (e Endpoints) Availability(accID string) string {
	return join(e.ReservationsAPI+"/availability/get", accID)
}

// reports
func (e Endpoints) DailyReport(accID string) string {
	return join(e.ReservationsAPI+"/report/daily", accID)
}
func (e Endpoints) MonthlyReport(accID string) string {
	return join(e.ReservationsAPI+"/report/monthly", accID)
}

// ratings
func (e Endpoints) Ratings() string { return e.RatingAPI + "/rating/getAll" }
func (e Endpoints) RateHost(hostID string) string {
	return join(e.RatingAPI+"/rating/rateHost", hostID)
}
func (e Endpoints) RateAccommodation(accID string) string {
	return join(e.RatingAPI+"/rating/rateAccommodation", accID)
}
func (e Endpoints) DeleteRating(hostID string) string {
	return join(e.RatingAPI+"/rating/deleteRating", hostID)
}
func (e Endpoints) RatingByHostAndGuest(hostID string) string {
	return join(e.RatingAPI+"/rating/get", hostID)
}
func (e Endpoints) HostAverageRating(hostID string) string {
	return join(e.RatingAPI+"/rating/host", hostID, "average")
}

// notifications
func (e Endpoints) Notifications() string { return e.NotificationAPI + "/notifications/host" }
