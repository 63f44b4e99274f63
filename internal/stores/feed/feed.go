package feed

import (
	"context"

	"github.com/forkfeed/forkfeed-client/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=feed.go -destination=mocks/mock.go -package=mocks
type Store interface {
	// QueryPosts fetches the feed filtered by channel, optionally
	// restricted to one poster, and replaces the local list wholesale.
	// Failures leave the prior list untouched.
	QueryPosts(ctx context.Context, channel string, posterEmail string)

	// Posts returns a copy of the current feed.
	Posts() []domain.Post

	// QueryComments fetches the comment list of exactly one post and
	// replaces the local list wholesale.
	QueryComments(ctx context.Context, post domain.Post)

	// Comments returns a copy of the current comment list.
	Comments() []domain.Comment

	// QueryLikeStatus fetches the like relationship for the currently
	// viewed post. The flag is a single scalar: switching the viewed
	// post requires querying again.
	QueryLikeStatus(ctx context.Context, post domain.Post)

	// ToggleLike flips the like relationship. On success the scalar
	// follows the server-confirmed direction and the matching post's
	// like count moves by one the same way.
	ToggleLike(ctx context.Context, post domain.Post)

	Liked() bool

	// QueryFollowStatus fetches the follow relationship keyed by the
	// post's author, not the post itself.
	QueryFollowStatus(ctx context.Context, post domain.Post)

	// ToggleFollow flips the follow relationship with the post's author.
	ToggleFollow(ctx context.Context, post domain.Post)

	FollowStatus() bool

	// DeletePost removes the post server-side, then locally by id. On
	// failure the list is unchanged and the returned error carries the
	// server's message or a generic fallback.
	DeletePost(ctx context.Context, post domain.Post) error
}
