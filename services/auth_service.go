package services

import (
	"context"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/config"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/dto"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/errors"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/apiclient"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/session"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/validator"
)

type AuthService struct {
	api       apiclient.API
	endpoints config.Endpoints
	users     *UserService
}

func NewAuthService(opts ServiceOptions, users *UserService) *AuthService {
	return &AuthService{api: opts.API, endpoints: opts.Endpoints, users: users}
}

var jsonHeaders = []apiclient.Header{
	{Key: "Accept", Value: "application/json"},
	{Key: "Content-Type", Value: "application/json"},
}

// Login exchanges credentials for an access token and loads the user behind it
func (s *AuthService) Login(ctx context.Context, in *dto.LoginInput) (*dto.LoginResponse, error) {
	var token dto.TokenResponse
	if err := s.api.Post(ctx, s.endpoints.Login(), in, &token, jsonHeaders...); err != nil {
		return nil, err
	}
	if token.AccessToken == "" {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Login returned no token", nil)
	}

	sess, err := session.FromToken(token.AccessToken)
	if err != nil {
		sess = &session.Session{Token: token.AccessToken}
	}
	user, err := s.users.GetMyInfo(session.WithSession(ctx, sess))
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{AccessToken: token.AccessToken, User: *user}, nil
}

// Register rejects weak passwords before anything is sent
func (s *AuthService) Register(ctx context.Context, in *dto.RegisterInput) error {
	if err := validator.Struct(in); err != nil {
		return err
	}
	return s.api.Post(ctx, s.endpoints.Register(), in, nil, jsonHeaders...)
}

func (s *AuthService) VerifyEmail(ctx context.Context, code string) error {
	return s.api.Get(ctx, s.endpoints.VerifyEmail(code), nil)
}

func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	return s.api.Get(ctx, s.endpoints.ResendVerification(email), nil)
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	return s.api.Post(ctx, s.endpoints.ForgotPassword(), dto.ForgetPasswordInput{Email: email}, nil)
}

func (s *AuthService) ResetPassword(ctx context.Context, token string, in *dto.ResetPasswordInput) error {
	in.PasswordResetToken = token
	if err := validator.Struct(in); err != nil {
		return err
	}
	return s.api.Patch(ctx, s.endpoints.ResetPassword(token), in, nil)
}

// Logout forgets the cached profile of the session
func (s *AuthService) Logout(ctx context.Context) error {
	sess, err := session.Require(ctx)
	if err != nil {
		return err
	}
	return s.users.Forget(ctx, sess.Token)
}
