package account

import (
	"context"
	"sync"

	"github.com/forkfeed/forkfeed-client/internal/api"
	"github.com/forkfeed/forkfeed-client/internal/credentials"
	"github.com/forkfeed/forkfeed-client/internal/domain"
	apperrors "github.com/forkfeed/forkfeed-client/pkg/errors"
	"github.com/forkfeed/forkfeed-client/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	API         api.Client
	Credentials credentials.Store
	Logger      logger.Logger
}

type Impl struct {
	api         api.Client
	credentials credentials.Store
	logger      logger.Logger

	mu       sync.RWMutex
	hasLogin bool
	account  domain.Account
}

func New(opts Opts) *Impl {
	return &Impl{
		api:         opts.API,
		credentials: opts.Credentials,
		logger:      opts.Logger.WithComponent("AccountStore"),
	}
}

var _ Store = (*Impl)(nil)

func (s *Impl) Query(ctx context.Context) {
	if _, ok := s.credentials.Token(); !ok {
		return
	}

	env, err := s.api.Call(ctx, api.PathAccountQuery, nil, nil)
	if err == nil {
		err = env.Err("failed to query account")
	}
	var acc domain.Account
	if err == nil {
		acc, err = api.DecodeData[domain.Account](env)
	}
	if err != nil {
		s.logger.Warn("Failed to query account, dropping stored session", "error", err)
		s.reset()
		return
	}

	s.mu.Lock()
	s.hasLogin = true
	s.account = acc
	s.mu.Unlock()
}

func (s *Impl) Login(ctx context.Context, req domain.LoginRequest) error {
	return s.authenticate(ctx, api.PathAccountLogin, req, "failed to log in")
}

func (s *Impl) Signup(ctx context.Context, req domain.SignupRequest) error {
	return s.authenticate(ctx, api.PathAccountSignup, req, "failed to sign up")
}

// authenticate runs the credential-exempt login/signup flow. The
// returned profile carries the new credential, which must be persisted
// before the session transitions, so a crash between the two never
// leaves an authenticated session without a stored token.
func (s *Impl) authenticate(ctx context.Context, path string, payload any, fallback string) error {
	env, err := s.api.Call(ctx, path, &api.CallOptions{NoAccessToken: true}, payload)
	if err == nil {
		err = env.Err(fallback)
	}
	var acc domain.Account
	if err == nil {
		acc, err = api.DecodeData[domain.Account](env)
	}
	if err != nil {
		s.logger.Warn("Authentication failed", "path", path, "error", err)
		return err
	}

	if err := s.credentials.Save(acc.AccessToken); err != nil {
		s.logger.Error("Failed to persist session credential", "error", err)
		return apperrors.Wrap(err, "failed to persist session credential")
	}

	s.mu.Lock()
	s.hasLogin = true
	s.account = acc
	s.mu.Unlock()

	return nil
}

func (s *Impl) Logout(ctx context.Context) error {
	if _, ok := s.credentials.Token(); !ok {
		return nil
	}

	env, err := s.api.Call(ctx, api.PathAccountLogout, nil, nil)
	if err == nil {
		err = env.Err("failed to log out")
	}

	// The local session is discarded whether or not the server call
	// succeeded: a stale local session is the worse failure mode, and
	// the credential may already be dead server-side.
	s.reset()

	if err != nil {
		s.logger.Warn("Logout failed", "error", err)
		return err
	}
	return nil
}

func (s *Impl) HasLogin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasLogin
}

func (s *Impl) Current() (domain.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account, s.hasLogin
}

func (s *Impl) reset() {
	s.mu.Lock()
	s.hasLogin = false
	s.account = domain.Account{}
	s.mu.Unlock()

	if err := s.credentials.Delete(); err != nil {
		s.logger.Error("Failed to delete stored credential", "error", err)
	}
}
