package notifications

import (
	"context"
	"fmt"
	"sync"

	"github.com/forkfeed/forkfeed-client/internal/api"
	"github.com/forkfeed/forkfeed-client/internal/domain"
	"github.com/forkfeed/forkfeed-client/pkg/logger"
	"go.uber.org/fx"
)

type readRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

type Opts struct {
	fx.In

	API    api.Client
	Logger logger.Logger
}

type Impl struct {
	api    api.Client
	logger logger.Logger

	mu              sync.RWMutex
	notifications   domain.Notifications
	currentCategory string
}

func New(opts Opts) *Impl {
	return &Impl{
		api:             opts.API,
		logger:          opts.Logger.WithComponent("NotificationStore"),
		notifications:   domain.Notifications{},
		currentCategory: domain.CategoryComments,
	}
}

var _ Store = (*Impl)(nil)

func (s *Impl) QueryNotifications(ctx context.Context) {
	env, err := s.api.Call(ctx, api.PathAccountQueryNotification, nil, nil)
	if err == nil {
		err = env.Err("failed to query notifications")
	}
	var grouped domain.Notifications
	if err == nil {
		grouped, err = api.DecodeData[domain.Notifications](env)
	}
	if err != nil {
		s.logger.Warn("Failed to query notifications", "error", err)
		return
	}
	if grouped == nil {
		grouped = domain.Notifications{}
	}

	s.mu.Lock()
	s.notifications = grouped
	s.mu.Unlock()
}

func (s *Impl) Notifications() domain.Notifications {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(domain.Notifications, len(s.notifications))
	for category, items := range s.notifications {
		copied := make([]domain.Notification, len(items))
		copy(copied, items)
		out[category] = copied
	}
	return out
}

func (s *Impl) CurrentCategory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentCategory
}

func (s *Impl) SetCurrentCategory(category string) {
	s.mu.Lock()
	s.currentCategory = category
	s.mu.Unlock()
}

func (s *Impl) MarkRead(ctx context.Context, item domain.Notification) {
	category := s.CurrentCategory()

	env, err := s.api.Call(ctx, api.PathAccountReadNotification, nil,
		readRequest{ID: item.ID, Type: category})
	if err == nil {
		err = env.Err("failed to read notification")
	}
	if err != nil {
		s.logger.Warn("Failed to mark notification read", "id", item.ID, "category", category, "error", err)
		return
	}

	s.mu.Lock()
	items := s.notifications[category]
	filtered := make([]domain.Notification, 0, len(items))
	for _, n := range items {
		if n.ID != item.ID {
			filtered = append(filtered, n)
		}
	}
	s.notifications[category] = filtered
	s.mu.Unlock()
}

func (s *Impl) Describe(item domain.Notification) string {
	switch s.CurrentCategory() {
	case domain.CategoryComments:
		return fmt.Sprintf("%s commented on your post (%s)", item.CommentatorName, item.PostTitle)
	case domain.CategoryLikes:
		return fmt.Sprintf("%s liked your post (%s)", item.LikedAccountName, item.PostTitle)
	default:
		return fmt.Sprintf("%s followed you", item.FollowerName)
	}
}
