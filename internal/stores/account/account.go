package account

import (
	"context"

	"github.com/forkfeed/forkfeed-client/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=account.go -destination=mocks/mock.go -package=mocks
type Store interface {
	// Query restores the session from the stored credential. Without a
	// stored credential it issues no network call and stays anonymous.
	// Any failure normalizes the session to anonymous and discards the
	// credential, so a stale token never survives a restart.
	Query(ctx context.Context)

	// Login authenticates with email and password. Local state is
	// untouched on failure.
	Login(ctx context.Context, req domain.LoginRequest) error

	// Signup registers a new account and logs it in. Local state is
	// untouched on failure.
	Signup(ctx context.Context, req domain.SignupRequest) error

	// Logout ends the session. The local session is discarded even when
	// the server call fails; the failure is still returned.
	Logout(ctx context.Context) error

	// HasLogin reports whether the session is authenticated.
	HasLogin() bool

	// Current returns the authenticated profile, if any.
	Current() (domain.Account, bool)
}
