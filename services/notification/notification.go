package notification

import (
	"fmt"
	"time"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/models"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// SessionUserKey is the melody session key holding the connected user id
const SessionUserKey = "userID"

// Service pushes notification banners to connected browsers
type Service interface {
	Send(n models.Notification) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

// Send pushes n as JSON to the sockets of its user, or to every socket
// when n has no user
func (s *MelodyService) Send(n models.Notification) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	if n.UserID == "" {
		return s.m.Broadcast(payload)
	}
	return s.m.BroadcastFilter(payload, func(sess *melody.Session) bool {
		return IsRecipient(sess, n.UserID)
	})
}

// IsRecipient reports whether the socket was opened by userID. Keys are
// only written when the socket connects.
func IsRecipient(sess *melody.Session, userID string) bool {
	id, _ := sess.Keys[SessionUserKey].(string)
	return id != "" && id == userID
}

// Nop drops every message
type Nop struct{}

func (Nop) Send(models.Notification) error { return nil }

type MessageBuilder struct {
	userID  string
	message string
	detail  string
}

func NewMessageBuilder(userID string) *MessageBuilder {
	return &MessageBuilder{userID: userID}
}

func (b *MessageBuilder) ReservationCreated(r *models.Reservation) *MessageBuilder {
	b.message = "Reservation created"
	b.detail = fmt.Sprintf("%s, %s to %s", r.AccommodationName,
		r.CheckInDate.Format("2006-01-02"), r.CheckOutDate.Format("2006-01-02"))
	return b
}

func (b *MessageBuilder) ReservationCancelled(r *models.Reservation) *MessageBuilder {
	b.message = "Reservation cancelled"
	b.detail = fmt.Sprintf("%s, %s to %s", r.AccommodationName,
		r.CheckInDate.Format("2006-01-02"), r.CheckOutDate.Format("2006-01-02"))
	return b
}

func (b *MessageBuilder) HostRated(hostID string, rating int) *MessageBuilder {
	b.message = "Host rated"
	b.detail = fmt.Sprintf("host %s received %d stars", hostID, rating)
	return b
}

func (b *MessageBuilder) FeaturedChanged(hostID string, featured bool) *MessageBuilder {
	if featured {
		b.message = "Host is now featured"
	} else {
		b.message = "Host is no longer featured"
	}
	b.detail = "host " + hostID
	return b
}

func (b *MessageBuilder) Build() models.Notification {
	return models.Notification{
		UserID:      b.userID,
		Message:     b.message,
		Description: b.detail,
		CreatedAt:   time.Now().UTC(),
	}
}
