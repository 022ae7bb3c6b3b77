package main

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"

	accountrest "github.com/dealsquare/marketplace/internal/account/infra/rest"
	catalogdomain "github.com/dealsquare/marketplace/internal/catalog/domain"
	catalogrest "github.com/dealsquare/marketplace/internal/catalog/infra/rest"
	marketapp "github.com/dealsquare/marketplace/internal/market/app"
	marketrest "github.com/dealsquare/marketplace/internal/market/infra/rest"
	navapp "github.com/dealsquare/marketplace/internal/nav/app"
	navdomain "github.com/dealsquare/marketplace/internal/nav/domain"
	"github.com/dealsquare/marketplace/internal/nav/infra/adapter"
	"github.com/dealsquare/marketplace/pkg/httpx"
)

const testSecret = "test-secret"

func newTestClient(t *testing.T) *httpx.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(newRouter(newMemory(), testSecret, log))
	t.Cleanup(srv.Close)

	return httpx.New(srv.URL, 5*time.Second)
}

func TestLoginEndpoint(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	t.Run("valid credentials issue a signed token", func(t *testing.T) {
		var body struct {
			Token string `json:"token"`
		}
		err := client.PostJSON(ctx, "/api/Authentication/login",
			map[string]string{"userName": "alice", "password": "alice123"}, &body)
		if err != nil {
			t.Fatalf("login: %v", err)
		}

		token, err := jwt.Parse(body.Token, func(token *jwt.Token) (any, error) {
			return []byte(testSecret), nil
		})
		if err != nil || !token.Valid {
			t.Fatalf("token invalid: %v", err)
		}

		claims := token.Claims.(jwt.MapClaims)
		if claims["sub"] != "alice" {
			t.Fatalf("sub = %v, want alice", claims["sub"])
		}
	})

	t.Run("wrong password -> 401 with message", func(t *testing.T) {
		err := client.PostJSON(ctx, "/api/Authentication/login",
			map[string]string{"userName": "alice", "password": "nope"}, nil)

		se, ok := err.(*httpx.StatusError)
		if !ok || se.StatusCode != 401 {
			t.Fatalf("expected 401 StatusError, got %v", err)
		}
		if se.Message == "" {
			t.Fatal("expected a message in the error body")
		}
	})
}

func TestRoleAndOwnerEndpoints(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	cases := []struct {
		username string
		role     bool
		exists   bool
	}{
		{"alice", false, false},
		{"bob", true, true},
		{"carol", true, false},
	}

	for _, tc := range cases {
		t.Run(tc.username, func(t *testing.T) {
			var role bool
			if err := client.GetJSON(ctx, "/api/Authentication/user/role/"+tc.username, &role); err != nil {
				t.Fatalf("role: %v", err)
			}
			if role != tc.role {
				t.Fatalf("role = %v, want %v", role, tc.role)
			}

			var exists bool
			if err := client.GetJSON(ctx, "/api/Markets/owner-exists/"+tc.username, &exists); err != nil {
				t.Fatalf("owner-exists: %v", err)
			}
			if exists != tc.exists {
				t.Fatalf("exists = %v, want %v", exists, tc.exists)
			}
		})
	}
}

// The full client stack against the stub: REST adapters feeding the
// navigation resolver.
func TestResolverAgainstStub(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	auth := accountrest.NewAuthAPI(client)
	markets := marketapp.NewService(marketrest.NewDirectory(client))
	resolver := navapp.NewResolver(adapter.NewRoleDirectory(auth, markets), nil)

	cases := []struct {
		username string
		want     navdomain.Resolution
	}{
		{"", navdomain.Buyer},
		{"alice", navdomain.Buyer},
		{"bob", navdomain.MarketActive},
		{"carol", navdomain.MarketPendingSetup},
		{"unknown-user", navdomain.Buyer}, // 404 on the role lookup, fail-closed
	}

	for _, tc := range cases {
		name := tc.username
		if name == "" {
			name = "(empty)"
		}
		t.Run(name, func(t *testing.T) {
			got, err := resolver.Resolve(ctx, tc.username)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestProductEndpoints(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	catalog := catalogrest.NewCatalogAPI(client)
	markets := marketrest.NewDirectory(client)

	t.Run("seeded products list", func(t *testing.T) {
		products, err := catalog.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(products) != 3 {
			t.Fatalf("got %d products, want 3", len(products))
		}
	})

	t.Run("owner market id resolves", func(t *testing.T) {
		id, err := markets.OwnerMarketID(ctx, "bob")
		if err != nil || id != "1" {
			t.Fatalf("got %q, %v", id, err)
		}
	})

	t.Run("create then fetch", func(t *testing.T) {
		created, err := catalog.Create(ctx, catalogdomain.Product{
			Name:          "Lavender Honey",
			Description:   "250g jar",
			Category:      "2",
			Price:         decimal.RequireFromString("12.50"),
			StockQuantity: 7,
			MarketID:      "1",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		got, err := catalog.Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Name != "Lavender Honey" || got.StockQuantity != 7 {
			t.Fatalf("got %+v", got)
		}
		if !got.Price.Equal(decimal.RequireFromString("12.50")) {
			t.Fatalf("price = %s, want 12.50", got.Price)
		}
	})
}
