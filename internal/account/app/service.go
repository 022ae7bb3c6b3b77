package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dealsquare/marketplace/internal/session"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// RoleClient is the default role assigned when registration leaves the
// role blank.
const RoleClient = "CLIENT"

type Service struct {
	api   AuthAPI
	store session.Store
}

func NewService(api AuthAPI, store session.Store) *Service {
	return &Service{api: api, store: store}
}

// Login authenticates and, on success, stores the username as the
// current session so later mounts can resolve their navigation.
func (s *Service) Login(ctx context.Context, creds Credentials) error {
	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" || creds.Password == "" {
		return ErrInvalidInput
	}

	if err := s.api.Login(ctx, creds); err != nil {
		return err
	}

	if err := s.store.Set(session.KeyUsername, creds.Username); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Register validates the sign-up form client-side before calling the
// API, defaulting the role to CLIENT.
func (s *Service) Register(ctx context.Context, reg Registration) error {
	reg.FirstName = strings.TrimSpace(reg.FirstName)
	reg.LastName = strings.TrimSpace(reg.LastName)
	reg.Username = strings.TrimSpace(reg.Username)
	reg.Email = strings.TrimSpace(reg.Email)

	switch {
	case reg.FirstName == "", reg.LastName == "", reg.Username == "", reg.Password == "":
		return ErrInvalidInput
	case reg.Email == "" || !strings.Contains(reg.Email, "@"):
		return ErrInvalidInput
	case reg.Password != reg.ConfirmPassword:
		return ErrPasswordMismatch
	}

	if reg.Role == "" {
		reg.Role = RoleClient
	}

	return s.api.Register(ctx, reg)
}

func (s *Service) Profile(ctx context.Context, username string) (Profile, error) {
	if strings.TrimSpace(username) == "" {
		return Profile{}, ErrInvalidInput
	}
	return s.api.Profile(ctx, username)
}

// CurrentUsername reads the stored session value. An absent session is
// reported as an empty username, not an error, so callers can fall
// through to the buyer defaults.
func (s *Service) CurrentUsername() string {
	v, ok, err := s.store.Get(session.KeyUsername)
	if err != nil || !ok {
		return ""
	}
	return v
}

// Logout clears the stored session.
func (s *Service) Logout() error {
	return s.store.Set(session.KeyUsername, "")
}
