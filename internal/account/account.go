// Package account manages registered users and the current-user slot.
// Users are append-only: no edit or delete lifecycle exists.
package account

import (
	"context"
	"errors"
	"time"

	"github.com/giannis-supplies/storefront/internal/events"
	"github.com/giannis-supplies/storefront/internal/hash"
	"github.com/giannis-supplies/storefront/internal/logging"
	"github.com/giannis-supplies/storefront/internal/models"
	"github.com/giannis-supplies/storefront/internal/store"
)

// ErrInvalidCredentials deliberately does not say whether the username or the
// password was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

type RegisterInput struct {
	FullName    string
	Email       string
	DateOfBirth string
	Username    string
	Password    string
}

type Service struct {
	Store    *store.Store
	Producer *events.Producer
}

func (s *Service) users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if _, err := s.Store.Get(ctx, store.KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ValidateRegistration runs the registration rule table without registering
// anyone. The form handler uses it to report domain errors together with its
// own form-only checks.
func (s *Service) ValidateRegistration(ctx context.Context, in RegisterInput) (ValidationErrors, error) {
	users, err := s.users(ctx)
	if err != nil {
		return nil, err
	}
	return validateRegistration(in, users), nil
}

// Register validates every field of the input and reports all failures at
// once. On success the user is stored with a hashed password and becomes the
// current user.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "account.register")

	users, err := s.users(ctx)
	if err != nil {
		return nil, err
	}

	if errs := validateRegistration(in, users); len(errs) > 0 {
		l.Warn("register_rejected", "fields", errs.Error())
		return nil, errs
	}

	pwHash, err := hash.HashPassword(in.Password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{
		FullName:     in.FullName,
		Email:        in.Email,
		DateOfBirth:  in.DateOfBirth,
		Username:     in.Username,
		PasswordHash: pwHash,
		RegisteredAt: time.Now().UTC().Format(time.RFC3339),
	}

	users = append(users, user)
	if err := s.Store.Set(ctx, store.KeyUsers, users); err != nil {
		return nil, err
	}
	if err := s.Store.Set(ctx, store.KeyCurrentUser, user); err != nil {
		return nil, err
	}

	if err := s.Producer.Publish(ctx, events.TopicUserEvents, user.Username, map[string]any{
		"action":   "registered",
		"username": user.Username,
	}); err != nil {
		l.Error("user_event_publish_failed", "error", err)
	}

	l.Info("user_registered", "username", user.Username)
	return &user, nil
}

// Login matches the username case-sensitively, checks the password against
// the stored hash and sets the current user.
func (s *Service) Login(ctx context.Context, username, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "account.login", "username", username)

	users, err := s.users(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Username == username && hash.CheckPassword(u.PasswordHash, password) {
			if err := s.Store.Set(ctx, store.KeyCurrentUser, u); err != nil {
				return nil, err
			}
			l.Info("login_ok")
			return &u, nil
		}
	}

	l.Warn("login_failed")
	return nil, ErrInvalidCredentials
}

// Logout clears the current-user slot; logging out while logged out is fine.
func (s *Service) Logout(ctx context.Context) error {
	return s.Store.Remove(ctx, store.KeyCurrentUser)
}

// CurrentUser returns the logged-in user, or nil when nobody is.
func (s *Service) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	found, err := s.Store.Get(ctx, store.KeyCurrentUser, &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}
