//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"gearshare/internal/infra"
	"gearshare/internal/usecase/queries"
	queriesmock "gearshare/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type requestQueriesFixture struct {
	requests *queriesmock.MockRequestReadStore
	users    *queriesmock.MockUserExistenceStore
	queries  queries.RequestQueries
}

func newRequestQueriesFixture(t *testing.T) *requestQueriesFixture {
	ctrl := gomock.NewController(t)
	requests := queriesmock.NewMockRequestReadStore(ctrl)
	users := queriesmock.NewMockUserExistenceStore(ctrl)
	return &requestQueriesFixture{
		requests: requests,
		users:    users,
		queries:  queries.NewRequestQueries(requests, users),
	}
}

func requestView(id uuid.UUID) *queries.RequestView {
	return &queries.RequestView{
		ID:          id,
		Description: "Looking for a tile cutter",
		Created:     time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestRequestQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches the items offered in reply", func(t *testing.T) {
		f := newRequestQueriesFixture(t)
		viewerID := uuid.New()
		requestID := uuid.New()
		view := requestView(requestID)

		offered := &queries.ItemSummary{
			ID:        uuid.New(),
			Name:      "Tile cutter",
			Available: true,
			RequestID: &requestID,
		}

		f.users.EXPECT().ExistsByID(ctx, viewerID).Return(true, nil)
		f.requests.EXPECT().FindByID(ctx, requestID).Return(view, nil)
		f.requests.EXPECT().FindItemsByRequestIDs(ctx, []uuid.UUID{requestID}).
			Return([]*queries.ItemSummary{offered}, nil)

		got, err := f.queries.GetByID(ctx, viewerID, requestID)
		require.NoError(t, err)
		assert.Equal(t, []*queries.ItemSummary{offered}, got.Items)
	})

	t.Run("request with no replies gets an empty item list", func(t *testing.T) {
		f := newRequestQueriesFixture(t)
		viewerID := uuid.New()
		requestID := uuid.New()

		f.users.EXPECT().ExistsByID(ctx, viewerID).Return(true, nil)
		f.requests.EXPECT().FindByID(ctx, requestID).Return(requestView(requestID), nil)
		f.requests.EXPECT().FindItemsByRequestIDs(ctx, []uuid.UUID{requestID}).
			Return([]*queries.ItemSummary{}, nil)

		got, err := f.queries.GetByID(ctx, viewerID, requestID)
		require.NoError(t, err)
		assert.NotNil(t, got.Items)
		assert.Empty(t, got.Items)
	})

	t.Run("missing request", func(t *testing.T) {
		f := newRequestQueriesFixture(t)
		viewerID := uuid.New()
		requestID := uuid.New()

		f.users.EXPECT().ExistsByID(ctx, viewerID).Return(true, nil)
		f.requests.EXPECT().FindByID(ctx, requestID).
			Return(nil, infra.WrapRepoErr("request not found", nil, infra.KindNotFound))

		_, err := f.queries.GetByID(ctx, viewerID, requestID)
		require.ErrorIs(t, err, queries.ErrRequestNotFound)
	})

	t.Run("unknown viewer", func(t *testing.T) {
		f := newRequestQueriesFixture(t)
		viewerID := uuid.New()

		f.users.EXPECT().ExistsByID(ctx, viewerID).Return(false, nil)

		_, err := f.queries.GetByID(ctx, viewerID, uuid.New())
		require.ErrorIs(t, err, queries.ErrUserNotFound)
	})
}

func TestRequestQueries_ListOwn(t *testing.T) {
	ctx := context.Background()

	t.Run("groups replies per request", func(t *testing.T) {
		f := newRequestQueriesFixture(t)
		requesterID := uuid.New()

		first := requestView(uuid.New())
		second := requestView(uuid.New())
		views := []*queries.RequestView{first, second}

		replyToFirst := &queries.ItemSummary{ID: uuid.New(), Name: "Tile cutter", RequestID: &first.ID}
		orphan := &queries.ItemSummary{ID: uuid.New(), Name: "Unlinked item"}

		f.users.EXPECT().ExistsByID(ctx, requesterID).Return(true, nil)
		f.requests.EXPECT().FindAllByRequesterID(ctx, requesterID, 10, 0).Return(views, nil)
		f.requests.EXPECT().FindItemsByRequestIDs(ctx, []uuid.UUID{first.ID, second.ID}).
			Return([]*queries.ItemSummary{replyToFirst, orphan}, nil)

		got, err := f.queries.ListOwn(ctx, requesterID, queries.DefaultPage())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, []*queries.ItemSummary{replyToFirst}, got[0].Items)
		assert.Empty(t, got[1].Items)
	})

	t.Run("no requests skips the item lookup", func(t *testing.T) {
		f := newRequestQueriesFixture(t)
		requesterID := uuid.New()

		f.users.EXPECT().ExistsByID(ctx, requesterID).Return(true, nil)
		f.requests.EXPECT().FindAllByRequesterID(ctx, requesterID, 10, 0).Return([]*queries.RequestView{}, nil)

		got, err := f.queries.ListOwn(ctx, requesterID, queries.DefaultPage())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("page window reaches the store as limit and offset", func(t *testing.T) {
		f := newRequestQueriesFixture(t)
		requesterID := uuid.New()

		f.users.EXPECT().ExistsByID(ctx, requesterID).Return(true, nil)
		f.requests.EXPECT().FindAllByRequesterID(ctx, requesterID, 5, 20).Return([]*queries.RequestView{}, nil)

		got, err := f.queries.ListOwn(ctx, requesterID, queries.Page{From: 20, Size: 5})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestRequestQueries_ListOthers(t *testing.T) {
	ctx := context.Background()

	f := newRequestQueriesFixture(t)
	viewerID := uuid.New()
	other := requestView(uuid.New())

	f.users.EXPECT().ExistsByID(ctx, viewerID).Return(true, nil)
	f.requests.EXPECT().FindAllExcludingRequester(ctx, viewerID, 10, 0).
		Return([]*queries.RequestView{other}, nil)
	f.requests.EXPECT().FindItemsByRequestIDs(ctx, []uuid.UUID{other.ID}).
		Return([]*queries.ItemSummary{}, nil)

	got, err := f.queries.ListOthers(ctx, viewerID, queries.DefaultPage())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, other.ID, got[0].ID)
}
