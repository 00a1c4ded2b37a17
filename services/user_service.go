package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/config"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/constants"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/dto"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/models"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/apiclient"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/logger"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/session"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/validator"

	"github.com/redis/go-redis/v9"
)

type UserService struct {
	api       apiclient.API
	endpoints config.Endpoints
	rdb       redis.Cmdable
	logger    logger.Logger
}

func NewUserService(opts ServiceOptions) *UserService {
	return &UserService{
		api:       opts.API,
		endpoints: opts.Endpoints,
		rdb:       opts.Redis,
		logger:    opts.logger(),
	}
}

// profileCacheKey never stores the raw token
func profileCacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return constants.CacheKeySessionMe + hex.EncodeToString(sum[:])
}

// GetMyInfo returns the user behind the session token, cached per token
func (s *UserService) GetMyInfo(ctx context.Context) (*models.User, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}
	key := profileCacheKey(sess.Token)

	if s.rdb != nil {
		var cached models.User
		found, err := GetFromRedis(ctx, s.rdb, key, &cached)
		if err != nil {
			s.logger.Error("read profile cache: %v", err)
		} else if found {
			return &cached, nil
		}
	}

	var res dto.CurrentUserResponse
	if err := s.api.Get(ctx, s.endpoints.CurrentUser(), &res); err != nil {
		return nil, err
	}
	if s.rdb != nil {
		if err := SetToRedis(ctx, s.rdb, key, res.User, constants.SessionMeTTL); err != nil {
			s.logger.Error("write profile cache: %v", err)
		}
	}
	return &res.User, nil
}

// Forget drops the cached profile of token
func (s *UserService) Forget(ctx context.Context, token string) error {
	if s.rdb == nil || token == "" {
		return nil
	}
	return DeleteFromRedis(ctx, s.rdb, profileCacheKey(token))
}

func (s *UserService) GetProfile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.api.Get(ctx, s.endpoints.CurrentProfile(), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, update *dto.ProfileUpdate) (*models.User, error) {
	if err := validator.Struct(update); err != nil {
		return nil, err
	}
	var user models.User
	if err := s.api.Patch(ctx, s.endpoints.UpdateProfile(), update, &user); err != nil {
		return nil, err
	}
	s.forgetSession(ctx)
	return &user, nil
}

// ChangePassword checks the confirmation locally before calling the auth service
func (s *UserService) ChangePassword(ctx context.Context, in *dto.ChangePasswordInput) error {
	if err := validator.Struct(in); err != nil {
		return err
	}
	return s.api.Patch(ctx, s.endpoints.ChangePassword(), in, nil)
}

func (s *UserService) DeleteProfile(ctx context.Context) error {
	if err := s.api.Delete(ctx, s.endpoints.DeleteProfile(), nil); err != nil {
		return err
	}
	s.forgetSession(ctx)
	return nil
}

// Notifications lists the host's stored notifications
func (s *UserService) Notifications(ctx context.Context) ([]models.Notification, error) {
	var list []models.Notification
	if err := s.api.Get(ctx, s.endpoints.Notifications(), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *UserService) forgetSession(ctx context.Context) {
	sess := session.FromContext(ctx)
	if sess == nil {
		return
	}
	if err := s.Forget(ctx, sess.Token); err != nil {
		s.logger.Error("drop profile cache: %v", err)
	}
}
