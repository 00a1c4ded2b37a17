package controllers

import (
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/logger"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/notification"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/session"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

type NotificationController struct {
	m      *melody.Melody
	logger logger.Logger
}

func NewNotificationController(m *melody.Melody, log logger.Logger) NotificationController {
	if log == nil {
		log = logger.Nop()
	}
	return NotificationController{m: m, logger: log}
}

// Connect upgrades to the notification socket. Browsers cannot set headers
// on a websocket, so the token may come as ?token=.
func (n NotificationController) Connect(c *gin.Context) {
	keys := map[string]interface{}{}

	token := c.Query("token")
	if token == "" {
		token = c.GetHeader("Authorization")
	}
	if token != "" {
		if sess, err := session.FromToken(token); err == nil {
			keys[notification.SessionUserKey] = sess.UserID
		}
	}

	if err := n.m.HandleRequestWithKeys(c.Writer, c.Request, keys); err != nil {
		n.logger.Error("websocket upgrade failed: %v", err)
	}
}
