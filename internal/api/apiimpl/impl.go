package apiimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/forkfeed/forkfeed-client/internal/api"
	"github.com/forkfeed/forkfeed-client/internal/credentials"
	"github.com/forkfeed/forkfeed-client/internal/ratelimit"
	"github.com/forkfeed/forkfeed-client/pkg/config"
	"github.com/forkfeed/forkfeed-client/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Outbound politeness throttle, per endpoint path.
const (
	limiterRequests = 5
	limiterPer      = time.Second
	limiterBurst    = 10
)

type Opts struct {
	fx.In

	Config      *config.Config
	Credentials credentials.Store
	Logger      logger.Logger
}

type Impl struct {
	baseURL     string
	httpClient  *http.Client
	credentials credentials.Store
	limiter     ratelimit.Limiter
	logger      logger.Logger
}

func New(opts Opts) *Impl {
	return &Impl{
		baseURL: opts.Config.API.BaseURL,
		httpClient: &http.Client{
			Timeout: opts.Config.API.Timeout,
		},
		credentials: opts.Credentials,
		limiter:     ratelimit.NewInMemoryLimiter(limiterRequests, limiterPer, limiterBurst),
		logger:      opts.Logger.WithComponent("APIClient"),
	}
}

var _ api.Client = (*Impl)(nil)

// Call issues a single POST to path. The body is the payload as a JSON
// object plus the stored credential under "access_token" unless the
// call is exempted or no credential is stored. One attempt per call,
// no retry.
func (c *Impl) Call(ctx context.Context, path string, opts *api.CallOptions, payload any) (*api.Envelope, error) {
	body := map[string]any{}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request payload: %w", err)
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, fmt.Errorf("request payload must be a JSON object: %w", err)
		}
	}

	if opts == nil || !opts.NoAccessToken {
		if token, ok := c.credentials.Token(); ok {
			body["access_token"] = token
		}
	}

	if err := c.limiter.Wait(ctx, path); err != nil {
		return nil, fmt.Errorf("wait for rate limiter: %w", err)
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	requestID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	c.logger.Debug("Calling API", "path", path, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("call %s: unexpected status %d", path, resp.StatusCode)
	}

	reply, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read reply: %w", err)
	}

	var env api.Envelope
	if err := json.Unmarshal(reply, &env); err != nil {
		return nil, fmt.Errorf("decode reply envelope: %w", err)
	}

	c.logger.Debug("API reply", "path", path, "request_id", requestID, "code", env.Code)

	return &env, nil
}
