package feed

import (
	"context"
	"sync"

	"github.com/forkfeed/forkfeed-client/internal/api"
	"github.com/forkfeed/forkfeed-client/internal/domain"
	apperrors "github.com/forkfeed/forkfeed-client/pkg/errors"
	"github.com/forkfeed/forkfeed-client/pkg/logger"
	"go.uber.org/fx"
)

type queryPostsRequest struct {
	Type  string `json:"type"`
	Email string `json:"email,omitempty"`
}

type postIDRequest struct {
	ID int `json:"id"`
}

type posterEmailRequest struct {
	Email string `json:"email"`
}

type Opts struct {
	fx.In

	API    api.Client
	Logger logger.Logger
}

type Impl struct {
	api    api.Client
	logger logger.Logger

	mu           sync.RWMutex
	posts        []domain.Post
	comments     []domain.Comment
	liked        bool
	followStatus bool
}

func New(opts Opts) *Impl {
	return &Impl{
		api:    opts.API,
		logger: opts.Logger.WithComponent("FeedStore"),
	}
}

var _ Store = (*Impl)(nil)

func (s *Impl) QueryPosts(ctx context.Context, channel string, posterEmail string) {
	env, err := s.api.Call(ctx, api.PathPostQuery, &api.CallOptions{NoAccessToken: true},
		queryPostsRequest{Type: channel, Email: posterEmail})
	if err == nil {
		err = env.Err("failed to query posts")
	}
	var posts []domain.Post
	if err == nil {
		posts, err = api.DecodeData[[]domain.Post](env)
	}
	if err != nil {
		s.logger.Warn("Failed to query posts", "channel", channel, "error", err)
		return
	}

	s.mu.Lock()
	s.posts = posts
	s.mu.Unlock()
}

func (s *Impl) Posts() []domain.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

func (s *Impl) QueryComments(ctx context.Context, post domain.Post) {
	env, err := s.api.Call(ctx, api.PathPostQueryComments, &api.CallOptions{NoAccessToken: true},
		postIDRequest{ID: post.ID})
	if err == nil {
		err = env.Err("failed to query comments")
	}
	var comments []domain.Comment
	if err == nil {
		comments, err = api.DecodeData[[]domain.Comment](env)
	}
	if err != nil {
		s.logger.Warn("Failed to query comments", "post_id", post.ID, "error", err)
		return
	}

	s.mu.Lock()
	s.comments = comments
	s.mu.Unlock()
}

func (s *Impl) Comments() []domain.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Comment, len(s.comments))
	copy(out, s.comments)
	return out
}

func (s *Impl) QueryLikeStatus(ctx context.Context, post domain.Post) {
	liked, ok := s.queryFlag(ctx, api.PathPostQueryLikeStatus, postIDRequest{ID: post.ID}, "failed to query like status")
	if !ok {
		return
	}

	s.mu.Lock()
	s.liked = liked
	s.mu.Unlock()
}

func (s *Impl) ToggleLike(ctx context.Context, post domain.Post) {
	liked, ok := s.queryFlag(ctx, api.PathPostLike, postIDRequest{ID: post.ID}, "failed to like post")
	if !ok {
		return
	}

	// The server result is ground truth for direction only; the count
	// moves by one locally without refetching.
	delta := -1
	if liked {
		delta = 1
	}

	s.mu.Lock()
	s.liked = liked
	for i := range s.posts {
		if s.posts[i].ID == post.ID {
			s.posts[i].Likes += delta
		}
	}
	s.mu.Unlock()
}

func (s *Impl) Liked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.liked
}

func (s *Impl) QueryFollowStatus(ctx context.Context, post domain.Post) {
	following, ok := s.queryFlag(ctx, api.PathAccountQueryFollowStatus,
		posterEmailRequest{Email: post.PosterEmail}, "failed to query follow status")
	if !ok {
		return
	}

	s.mu.Lock()
	s.followStatus = following
	s.mu.Unlock()
}

func (s *Impl) ToggleFollow(ctx context.Context, post domain.Post) {
	following, ok := s.queryFlag(ctx, api.PathAccountFollow,
		posterEmailRequest{Email: post.PosterEmail}, "failed to follow poster")
	if !ok {
		return
	}

	s.mu.Lock()
	s.followStatus = following
	s.mu.Unlock()
}

func (s *Impl) FollowStatus() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.followStatus
}

func (s *Impl) DeletePost(ctx context.Context, post domain.Post) error {
	env, err := s.api.Call(ctx, api.PathPostDelete, nil, postIDRequest{ID: post.ID})
	if err != nil {
		s.logger.Warn("Failed to delete post", "post_id", post.ID, "error", err)
		return apperrors.Wrap(err, "failed to delete post")
	}
	if err := env.Err("failed to delete post"); err != nil {
		s.logger.Warn("Failed to delete post", "post_id", post.ID, "error", err)
		return err
	}

	s.mu.Lock()
	filtered := make([]domain.Post, 0, len(s.posts))
	for _, p := range s.posts {
		if p.ID != post.ID {
			filtered = append(filtered, p)
		}
	}
	s.posts = filtered
	s.mu.Unlock()

	return nil
}

// queryFlag runs the shared fetch-a-boolean flow used by the like and
// follow endpoints. It reports the flag and whether the call succeeded;
// failures are logged and leave store state untouched.
func (s *Impl) queryFlag(ctx context.Context, path string, payload any, fallback string) (bool, bool) {
	env, err := s.api.Call(ctx, path, nil, payload)
	if err == nil {
		err = env.Err(fallback)
	}
	var flag bool
	if err == nil {
		flag, err = api.DecodeData[bool](env)
	}
	if err != nil {
		s.logger.Warn("Failed to query flag", "path", path, "error", err)
		return false, false
	}
	return flag, true
}
