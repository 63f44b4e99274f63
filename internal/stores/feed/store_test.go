package feed

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/forkfeed/forkfeed-client/internal/api"
	"github.com/forkfeed/forkfeed-client/internal/api/mocks"
	"github.com/forkfeed/forkfeed-client/internal/domain"
	"github.com/forkfeed/forkfeed-client/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestStore(t *testing.T) (*Impl, *mocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	apiClient := mocks.NewMockClient(ctrl)

	store := New(Opts{
		API:    apiClient,
		Logger: logger.New(logger.Opts{}),
	})
	return store, apiClient
}

func dataEnvelope(t *testing.T, v any) *api.Envelope {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	return &api.Envelope{Code: api.CodeOK, Data: data}
}

func seedPosts(t *testing.T, store *Impl, apiClient *mocks.MockClient, posts []domain.Post) {
	t.Helper()

	apiClient.EXPECT().
		Call(gomock.Any(), api.PathPostQuery, &api.CallOptions{NoAccessToken: true},
			queryPostsRequest{Type: "Desserts"}).
		Return(dataEnvelope(t, posts), nil)
	store.QueryPosts(context.Background(), "Desserts", "")
	require.Len(t, store.Posts(), len(posts))
}

func TestQueryPostsReplacesListWholesale(t *testing.T) {
	store, apiClient := newTestStore(t)

	seedPosts(t, store, apiClient, []domain.Post{
		{ID: 1, Title: "Pho", Likes: 2, Channel: "Soups"},
		{ID: 2, Title: "Ramen", Likes: 5, Channel: "Soups"},
	})

	apiClient.EXPECT().
		Call(gomock.Any(), api.PathPostQuery, &api.CallOptions{NoAccessToken: true},
			queryPostsRequest{Type: "Desserts"}).
		Return(dataEnvelope(t, []domain.Post{{ID: 7, Title: "Tiramisu", Likes: 3, Channel: "Desserts"}}), nil)

	store.QueryPosts(context.Background(), "Desserts", "")

	posts := store.Posts()
	require.Len(t, posts, 1)
	require.Equal(t, 7, posts[0].ID)
	require.Equal(t, 3, posts[0].Likes)
}

func TestQueryPostsFailureLeavesListUntouched(t *testing.T) {
	store, apiClient := newTestStore(t)

	seedPosts(t, store, apiClient, []domain.Post{{ID: 1, Title: "Pho"}})

	apiClient.EXPECT().
		Call(gomock.Any(), api.PathPostQuery, &api.CallOptions{NoAccessToken: true},
			queryPostsRequest{Type: "Soups"}).
		Return(nil, errors.New("connection refused"))

	store.QueryPosts(context.Background(), "Soups", "")

	require.Len(t, store.Posts(), 1)
}

func TestQueryPostsByPosterEmail(t *testing.T) {
	store, apiClient := newTestStore(t)

	apiClient.EXPECT().
		Call(gomock.Any(), api.PathPostQuery, &api.CallOptions{NoAccessToken: true},
			queryPostsRequest{Type: "Desserts", Email: "cook@forkfeed.app"}).
		Return(dataEnvelope(t, []domain.Post{}), nil)

	store.QueryPosts(context.Background(), "Desserts", "cook@forkfeed.app")
	require.Empty(t, store.Posts())
}

func TestQueryCommentsReplacesListWholesale(t *testing.T) {
	store, apiClient := newTestStore(t)

	post := domain.Post{ID: 7, Title: "Tiramisu"}
	apiClient.EXPECT().
		Call(gomock.Any(), api.PathPostQueryComments, &api.CallOptions{NoAccessToken: true},
			postIDRequest{ID: 7}).
		Return(dataEnvelope(t, []domain.Comment{{ID: 11, Post: 7, Comment: "looks great"}}), nil)

	store.QueryComments(context.Background(), post)

	comments := store.Comments()
	require.Len(t, comments, 1)
	require.Equal(t, 11, comments[0].ID)
}

func TestToggleLikeRoundTrip(t *testing.T) {
	store, apiClient := newTestStore(t)

	seedPosts(t, store, apiClient, []domain.Post{{ID: 7, Title: "Tiramisu", Likes: 3}})

	apiClient.EXPECT().
		Call(gomock.Any(), api.PathPostLike, gomock.Nil(), postIDRequest{ID: 7}).
		Return(dataEnvelope(t, true), nil)

	store.ToggleLike(context.Background(), domain.Post{ID: 7, Likes: 3})

	require.True(t, store.Liked())
	require.Equal(t, 4, store.Posts()[0].Likes)

	apiClient.EXPECT().
		Call(gomock.Any(), api.PathPostLike, gomock.Nil(), postIDRequest{ID: 7}).
		Return(dataEnvelope(t, false), nil)

	store.ToggleLike(context.Background(), domain.Post{ID: 7, Likes: 4})

	require.False(t, store.Liked())
	require.Equal(t, 3, store.Posts()[0].Likes)
}

func TestToggleLikeFailureLeavesStateUntouched(t *testing.T) {
	store, apiClient := newTestStore(t)

	seedPosts(t, store, apiClient, []domain.Post{{ID: 7, Likes: 3}})

	apiClient.EXPECT().
		Call(gomock.Any(), api.PathPostLike, gomock.Nil(), postIDRequest{ID: 7}).
		Return(&api.Envelope{Code: 0, Message: "not logged in"}, nil)

	store.ToggleLike(context.Background(), domain.Post{ID: 7, Likes: 3})

	require.False(t, store.Liked())
	require.Equal(t, 3, store.Posts()[0].Likes)
}

func TestQueryLikeStatus(t *testing.T) {
	store, apiClient := newTestStore(t)

	apiClient.EXPECT().
		Call(gomock.Any(), api.PathPostQueryLikeStatus, gomock.Nil(), postIDRequest{ID: 7}).
		Return(dataEnvelope(t, true), nil)

	store.QueryLikeStatus(context.Background(), domain.Post{ID: 7})
	require.True(t, store.Liked())
}

func TestFollowKeyedByPosterEmail(t *testing.T) {
	store, apiClient := newTestStore(t)

	post := domain.Post{ID: 7, PosterEmail: "chef@forkfeed.app"}

	apiClient.EXPECT().
		Call(gomock.Any(), api.PathAccountQueryFollowStatus, gomock.Nil(),
			posterEmailRequest{Email: "chef@forkfeed.app"}).
		Return(dataEnvelope(t, false), nil)

	store.QueryFollowStatus(context.Background(), post)
	require.False(t, store.FollowStatus())

	apiClient.EXPECT().
		Call(gomock.Any(), api.PathAccountFollow, gomock.Nil(),
			posterEmailRequest{Email: "chef@forkfeed.app"}).
		Return(dataEnvelope(t, true), nil)

	store.ToggleFollow(context.Background(), post)
	require.True(t, store.FollowStatus())
}

func TestDeletePostRemovesExactlyOne(t *testing.T) {
	store, apiClient := newTestStore(t)

	seedPosts(t, store, apiClient, []domain.Post{
		{ID: 1, Title: "Pho"},
		{ID: 7, Title: "Tiramisu"},
		{ID: 9, Title: "Mochi"},
	})

	apiClient.EXPECT().
		Call(gomock.Any(), api.PathPostDelete, gomock.Nil(), postIDRequest{ID: 7}).
		Return(dataEnvelope(t, true), nil)

	require.NoError(t, store.DeletePost(context.Background(), domain.Post{ID: 7}))

	posts := store.Posts()
	require.Len(t, posts, 2)
	for _, p := range posts {
		require.NotEqual(t, 7, p.ID)
	}
}

func TestDeletePostFailureReturnsServerMessage(t *testing.T) {
	store, apiClient := newTestStore(t)

	seedPosts(t, store, apiClient, []domain.Post{{ID: 7}})

	apiClient.EXPECT().
		Call(gomock.Any(), api.PathPostDelete, gomock.Nil(), postIDRequest{ID: 7}).
		Return(&api.Envelope{Code: 0, Message: "not your post"}, nil)

	err := store.DeletePost(context.Background(), domain.Post{ID: 7})
	require.EqualError(t, err, "not your post")
	require.Len(t, store.Posts(), 1)
}

func TestDeletePostFallbackMessage(t *testing.T) {
	store, apiClient := newTestStore(t)

	apiClient.EXPECT().
		Call(gomock.Any(), api.PathPostDelete, gomock.Nil(), postIDRequest{ID: 7}).
		Return(&api.Envelope{Code: 0}, nil)

	err := store.DeletePost(context.Background(), domain.Post{ID: 7})
	require.EqualError(t, err, "failed to delete post")
}
