// Package auth exchanges identity-provider tokens for an admin session.
// Credentials never pass through this service except on registration,
// where they are forwarded to the café API.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cafe-admin-api/apperr"
	"cafe-admin-api/gateway"
	"cafe-admin-api/logger"
	"cafe-admin-api/models"
	"cafe-admin-api/persist"
	"cafe-admin-api/validation"
)

// Identity is the user half of the remote API
type Identity interface {
	Login(ctx context.Context, req gateway.LoginRequest) (models.SessionUser, error)
	Register(ctx context.Context, req gateway.RegisterRequest) (models.SessionUser, error)
}

type SignupRequest struct {
	Name            string           `json:"name" validate:"required,min=2"`
	Email           string           `json:"email" validate:"required,looseemail"`
	Phone           string           `json:"phone" validate:"required,phone"`
	Password        string           `json:"password" validate:"required,min=6"`
	ConfirmPassword string           `json:"confirmPassword" validate:"eqfield=Password"`
	Tokens          models.TokenPair `json:"tokens"`
}

// Session is returned after a successful login or registration
type Session struct {
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expiresAt"`
	User      models.SessionUser `json:"user"`
}

const invalidCredentials = "Invalid email or password"

// signupMessages maps identity-provider error codes to what the admin sees
var signupMessages = map[string]string{
	"auth/email-already-in-use": "Account already exists. Try again with different Email.",
	"auth/missing-password":     "Please enter valid email or password!!",
	"auth/invalid-email":        "Please enter valid email!!",
}

type Service struct {
	identity Identity
	kv       persist.KV
	tokens   *Tokens
	validate *validation.Validator
	log      *logger.Logger
}

func NewService(identity Identity, kv persist.KV, tokens *Tokens, log *logger.Logger) *Service {
	return &Service{
		identity: identity,
		kv:       kv,
		tokens:   tokens,
		validate: validation.New(),
		log:      log,
	}
}

func (s *Service) Tokens() *Tokens { return s.tokens }

// Login exchanges a token pair for a session. Every failure reads the same.
func (s *Service) Login(ctx context.Context, pair models.TokenPair) (Session, error) {
	const title = "Login Failed"
	if err := s.validate.Struct(title, pair); err != nil {
		return Session{}, err
	}
	user, err := s.identity.Login(ctx, gateway.LoginRequest{IDToken: pair.IDToken, RefreshToken: pair.RefreshToken})
	if err != nil {
		s.log.LogSecurity("LOGIN_FAILED", err.Error())
		return Session{}, apperr.Auth(title, invalidCredentials, err)
	}
	return s.start(ctx, title, user)
}

func (s *Service) Register(ctx context.Context, req SignupRequest) (Session, error) {
	const title = "Signup Failed"
	if err := s.validate.Struct(title, req); err != nil {
		return Session{}, err
	}
	user, err := s.identity.Register(ctx, gateway.RegisterRequest{
		Name:         req.Name,
		Email:        req.Email,
		PhoneNumber:  req.Phone,
		Password:     req.Password,
		IDToken:      req.Tokens.IDToken,
		RefreshToken: req.Tokens.RefreshToken,
	})
	if err != nil {
		s.log.LogSecurity("SIGNUP_FAILED", err.Error())
		return Session{}, apperr.Auth(title, signupMessage(err), err)
	}
	return s.start(ctx, title, user)
}

func signupMessage(err error) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		if m, ok := signupMessages[apiErr.Code]; ok {
			return m
		}
	}
	return "Please enter valid email or password!!"
}

// start persists the session user and issues a token
func (s *Service) start(ctx context.Context, title string, user models.SessionUser) (Session, error) {
	if err := s.kv.Save(ctx, persist.KeyUser, user); err != nil {
		return Session{}, apperr.Storage(title, err)
	}
	token, expires, err := s.tokens.Issue(user)
	if err != nil {
		return Session{}, apperr.As(err)
	}
	s.log.LogSecurity("LOGIN", fmt.Sprintf("%s signed in", user.Email))
	return Session{Token: token, ExpiresAt: expires, User: user}, nil
}

// Profile returns the persisted session user
func (s *Service) Profile(ctx context.Context) (models.SessionUser, error) {
	var user models.SessionUser
	found, err := s.kv.Load(ctx, persist.KeyUser, &user)
	if err != nil {
		return models.SessionUser{}, apperr.Storage("Profile Unavailable", err)
	}
	if !found {
		return models.SessionUser{}, apperr.Auth("Not Signed In", "Please sign in to continue.", nil)
	}
	return user, nil
}

func (s *Service) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, persist.KeyUser); err != nil {
		return apperr.Storage("Logout Failed", err)
	}
	s.log.LogSecurity("LOGOUT", "session user removed")
	return nil
}
