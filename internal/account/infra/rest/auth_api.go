package rest

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dealsquare/marketplace/internal/account/app"
	"github.com/dealsquare/marketplace/pkg/httpx"
)

// AuthAPI talks to the Authentication endpoints. Besides the account
// operations it also answers the market-role half of the navigation
// resolver's directory.
type AuthAPI struct {
	c *httpx.Client
}

func NewAuthAPI(c *httpx.Client) *AuthAPI {
	return &AuthAPI{c: c}
}

func (a *AuthAPI) Login(ctx context.Context, creds app.Credentials) error {
	payload := struct {
		UserName string `json:"userName"`
		Password string `json:"password"`
	}{creds.Username, creds.Password}

	if err := a.c.PostJSON(ctx, "/api/Authentication/login", payload, nil); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return nil
}

func (a *AuthAPI) Register(ctx context.Context, reg app.Registration) error {
	payload := struct {
		FirstName   string `json:"firstName"`
		LastName    string `json:"lastName"`
		Email       string `json:"email"`
		Password    string `json:"password"`
		PhoneNumber string `json:"phoneNumber"`
		UserName    string `json:"userName"`
		Image       string `json:"image"`
		Role        string `json:"role"`
	}{
		FirstName:   reg.FirstName,
		LastName:    reg.LastName,
		Email:       reg.Email,
		Password:    reg.Password,
		PhoneNumber: reg.PhoneNumber,
		UserName:    reg.Username,
		Image:       reg.ImageURL,
		Role:        reg.Role,
	}

	if err := a.c.PostJSON(ctx, "/api/Authentication/register", payload, nil); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

func (a *AuthAPI) Profile(ctx context.Context, username string) (app.Profile, error) {
	var dto struct {
		UserName    string `json:"userName"`
		FirstName   string `json:"firstName"`
		LastName    string `json:"lastName"`
		Email       string `json:"email"`
		PhoneNumber string `json:"phoneNumber"`
		Image       string `json:"image"`
	}

	path := "/api/Authentication/user/" + url.PathEscape(username)
	if err := a.c.GetJSON(ctx, path, &dto); err != nil {
		return app.Profile{}, fmt.Errorf("profile: %w", err)
	}

	return app.Profile{
		Username:    dto.UserName,
		FirstName:   dto.FirstName,
		LastName:    dto.LastName,
		Email:       dto.Email,
		PhoneNumber: dto.PhoneNumber,
		ImageURL:    dto.Image,
	}, nil
}

// HasMarketRole hits the role endpoint, whose body is a bare JSON
// boolean.
func (a *AuthAPI) HasMarketRole(ctx context.Context, username string) (bool, error) {
	var isMarket bool
	path := "/api/Authentication/user/role/" + url.PathEscape(username)
	if err := a.c.GetJSON(ctx, path, &isMarket); err != nil {
		return false, fmt.Errorf("market role: %w", err)
	}
	return isMarket, nil
}
