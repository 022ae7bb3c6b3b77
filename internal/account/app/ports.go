package app

import "context"

type Credentials struct {
	Username string
	Password string
}

type Registration struct {
	FirstName       string
	LastName        string
	Email           string
	PhoneNumber     string
	Username        string
	Password        string
	ConfirmPassword string
	ImageURL        string
	Role            string
}

type Profile struct {
	Username    string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	ImageURL    string
}

// AuthAPI is the remote authentication surface.
type AuthAPI interface {
	Login(ctx context.Context, creds Credentials) error
	Register(ctx context.Context, reg Registration) error
	Profile(ctx context.Context, username string) (Profile, error)
}
