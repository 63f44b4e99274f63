package notifications

import (
	"context"

	"github.com/forkfeed/forkfeed-client/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=notifications.go -destination=mocks/mock.go -package=mocks
type Store interface {
	// QueryNotifications fetches the category-to-list mapping and
	// replaces it wholesale. Failures leave the prior mapping untouched.
	QueryNotifications(ctx context.Context)

	// Notifications returns a copy of the current mapping.
	Notifications() domain.Notifications

	// CurrentCategory returns the selected category.
	CurrentCategory() string

	// SetCurrentCategory selects the category MarkRead and Describe
	// operate on.
	SetCurrentCategory(category string)

	// MarkRead acknowledges the item in the current category. On
	// success the item is removed from that category's list only.
	MarkRead(ctx context.Context, item domain.Notification)

	// Describe renders the item as a sentence using the template of the
	// current category. Pure formatting, no network call.
	Describe(item domain.Notification) string
}
