package response

import (
	"time"

	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemRequestResponse struct {
	ID          uuid.UUID              `json:"id"`
	Description string                 `json:"description"`
	Created     time.Time              `json:"created"`
	Items       []*ItemSummaryResponse `json:"items"`
}

func FromRequestView(v *queries.RequestView) *ItemRequestResponse {
	return &ItemRequestResponse{
		ID:          v.ID,
		Description: v.Description,
		Created:     v.Created,
		Items:       FromItemSummaries(v.Items),
	}
}

func FromRequestViews(views []*queries.RequestView) []*ItemRequestResponse {
	result := make([]*ItemRequestResponse, len(views))
	for i, v := range views {
		result[i] = FromRequestView(v)
	}
	return result
}
