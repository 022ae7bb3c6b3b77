package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dealsquare/marketplace/internal/nav/domain"
)

// Resolver decides which tab set a user sees. The two lookups are
// sequential and dependent: market existence is only checked once the
// role is confirmed. Any failure at either step degrades to Buyer, the
// least-privileged configuration, so a resolution never fails outright.
type Resolver struct {
	dir RoleDirectory
	log *slog.Logger
}

func NewResolver(dir RoleDirectory, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{dir: dir, log: log}
}

// Resolve returns the resolution for username. The only error ever
// returned is ctx.Err(): when the owning view is torn down mid-flight
// the caller must discard the result instead of applying it to a stale
// view. Lookup failures are folded into Buyer with a nil error.
func (r *Resolver) Resolve(ctx context.Context, username string) (domain.Resolution, error) {
	res := r.resolve(ctx, username)

	if err := ctx.Err(); err != nil {
		return domain.Buyer, err
	}
	return res, nil
}

func (r *Resolver) resolve(ctx context.Context, username string) domain.Resolution {
	if strings.TrimSpace(username) == "" {
		r.log.Debug("no username stored, resolving to buyer")
		return domain.Buyer
	}

	hasRole, err := r.dir.HasMarketRole(ctx, username)
	if err != nil {
		r.log.Warn("role lookup failed, resolving to buyer",
			slog.String("username", username), slog.Any("err", err))
		return domain.Buyer
	}
	if !hasRole {
		return domain.Buyer
	}

	exists, err := r.dir.MarketExistsForOwner(ctx, username)
	if err != nil {
		// Fail-closed: an error here must not yield pending-setup,
		// only an explicit false answer does.
		r.log.Warn("market lookup failed, resolving to buyer",
			slog.String("username", username), slog.Any("err", err))
		return domain.Buyer
	}

	if exists {
		return domain.MarketActive
	}
	return domain.MarketPendingSetup
}
