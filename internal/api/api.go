package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Paths of the remote API. Every call is an HTTP POST with a JSON body
// and a uniform {code, message, data} reply envelope.
const (
	PathAccountQuery             = "/api/account/query"
	PathAccountLogout            = "/api/account/logout"
	PathAccountSignup            = "/api/account/signup"
	PathAccountLogin             = "/api/account/login"
	PathAccountQueryNotification = "/api/account/query_notification"
	PathAccountReadNotification  = "/api/account/read_notification"
	PathAccountQueryFollowStatus = "/api/account/query_follow_status"
	PathAccountFollow            = "/api/account/follow"
	PathPostQuery                = "/api/post/query"
	PathPostQueryComments        = "/api/post/query_comments"
	PathPostQueryLikeStatus      = "/api/post/query_like_status"
	PathPostLike                 = "/api/post/like"
	PathPostDelete               = "/api/post/delete"
)

// CodeOK is the envelope code the server uses for success.
const CodeOK = 1

// Envelope is the uniform reply wrapper used by every endpoint.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// OK reports whether the envelope signals application-level success.
func (e *Envelope) OK() bool {
	return e.Code == CodeOK
}

// Err converts an application-level failure into an error carrying the
// server message, or fallback when the server supplied none. Returns
// nil for a success envelope.
func (e *Envelope) Err(fallback string) error {
	if e.OK() {
		return nil
	}
	if e.Message != "" {
		return errors.New(e.Message)
	}
	return errors.New(fallback)
}

// DecodeData unmarshals the envelope data payload into T.
func DecodeData[T any](e *Envelope) (T, error) {
	var v T
	if len(e.Data) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(e.Data, &v); err != nil {
		return v, fmt.Errorf("decode envelope data: %w", err)
	}
	return v, nil
}

type CallOptions struct {
	// NoAccessToken leaves the stored credential off the request body.
	// Login, signup and the public feed queries are credential-exempt.
	NoAccessToken bool
}

//go:generate go run go.uber.org/mock/mockgen -source=api.go -destination=mocks/mock.go -package=mocks
type Client interface {
	// Call POSTs payload (or an empty object when nil) as JSON to path
	// and returns the decoded reply envelope without interpreting its
	// code; interpreting the code is the caller's job.
	Call(ctx context.Context, path string, opts *CallOptions, payload any) (*Envelope, error)
}
