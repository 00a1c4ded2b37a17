package session

import (
	"context"
	"strconv"
	"strings"

	apperrors "github.com/anna02272/Accommodation-Booking-Platform-Gobnb/errors"

	"github.com/dgrijalva/jwt-go"
	"github.com/goccy/go-json"
)

// Session is the caller identity for one request. It replaces a
// process wide "current user" and travels in the request context.
type Session struct {
	Token  string
	UserID string
	Email  string
	Role   string
}

type ctxKey struct{}

// WithSession stores s in ctx
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored in ctx, or nil
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s
}

// Require returns the session in ctx or ErrMissingSession
func Require(ctx context.Context) (*Session, error) {
	s := FromContext(ctx)
	if s == nil || s.Token == "" {
		return nil, apperrors.ErrMissingSession
	}
	return s, nil
}

func (s *Session) IsHost() bool {
	return s != nil && strings.EqualFold(s.Role, "Host")
}

func (s *Session) IsGuest() bool {
	return s != nil && strings.EqualFold(s.Role, "Guest")
}

// FromToken decodes the claims of a bearer token. The signature is not
// verified here: the auth service is the authority and rejects forged
// tokens on every forwarded call.
func FromToken(tokenString string) (*Session, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Invalid token", nil)
	}

	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Cannot decode token", err)
	}

	claims := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Cannot parse token", err)
	}

	s := &Session{Token: tokenString}
	s.UserID = claimString(claims, "id", "user_id", "sub")
	s.Email = claimString(claims, "email")
	s.Role = claimString(claims, "userRole", "role", "userType")
	if s.UserID == "" {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Token carries no user", nil)
	}
	return s, nil
}

func claimString(claims jwt.MapClaims, keys ...string) string {
	for _, key := range keys {
		switch v := claims[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}
