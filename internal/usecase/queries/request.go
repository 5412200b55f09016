package queries

import (
	"context"

	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRequestNotFound = errs.New("item request not found")

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	// FindAllByRequesterID returns requests ordered by creation descending.
	FindAllByRequesterID(ctx context.Context, requesterID uuid.UUID, limit, offset int) ([]*RequestView, error)
	// FindAllExcludingRequester returns other users' requests, newest first.
	FindAllExcludingRequester(ctx context.Context, requesterID uuid.UUID, limit, offset int) ([]*RequestView, error)
	FindItemsByRequestIDs(ctx context.Context, requestIDs []uuid.UUID) ([]*ItemSummary, error)
}

type RequestQueries interface {
	GetByID(ctx context.Context, viewerID, requestID uuid.UUID) (*RequestView, error)
	ListOwn(ctx context.Context, requesterID uuid.UUID, page Page) ([]*RequestView, error)
	ListOthers(ctx context.Context, viewerID uuid.UUID, page Page) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	requests RequestReadStore
	users    UserExistenceStore
}

func NewRequestQueries(requests RequestReadStore, users UserExistenceStore) RequestQueries {
	return &requestQueriesImpl{requests: requests, users: users}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, viewerID, requestID uuid.UUID) (*RequestView, error) {
	if err := q.checkUserExists(ctx, viewerID); err != nil {
		return nil, err
	}

	view, err := q.requests.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Newf("item request with id %s not found", requestID), ErrRequestNotFound)
		}
		return nil, err
	}

	if err := q.attachItems(ctx, []*RequestView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *requestQueriesImpl) ListOwn(ctx context.Context, requesterID uuid.UUID, page Page) ([]*RequestView, error) {
	if err := q.checkUserExists(ctx, requesterID); err != nil {
		return nil, err
	}

	views, err := q.requests.FindAllByRequesterID(ctx, requesterID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	if err := q.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (q *requestQueriesImpl) ListOthers(ctx context.Context, viewerID uuid.UUID, page Page) ([]*RequestView, error) {
	if err := q.checkUserExists(ctx, viewerID); err != nil {
		return nil, err
	}

	views, err := q.requests.FindAllExcludingRequester(ctx, viewerID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	if err := q.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (q *requestQueriesImpl) attachItems(ctx context.Context, views []*RequestView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}

	items, err := q.requests.FindItemsByRequestIDs(ctx, ids)
	if err != nil {
		return err
	}

	byRequest := make(map[uuid.UUID][]*ItemSummary)
	for _, it := range items {
		if it.RequestID == nil {
			continue
		}
		byRequest[*it.RequestID] = append(byRequest[*it.RequestID], it)
	}

	for _, v := range views {
		if grouped, ok := byRequest[v.ID]; ok {
			v.Items = grouped
		} else {
			v.Items = []*ItemSummary{}
		}
	}
	return nil
}

func (q *requestQueriesImpl) checkUserExists(ctx context.Context, userID uuid.UUID) error {
	exists, err := q.users.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return errs.Mark(errs.Newf("user with id %s not found", userID), ErrUserNotFound)
	}
	return nil
}
