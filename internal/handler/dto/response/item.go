package response

import (
	"time"

	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Available   bool                `json:"available"`
	RequestID   *uuid.UUID          `json:"requestId,omitempty"`
	LastBooking *BookingRefResponse `json:"lastBooking,omitempty"`
	NextBooking *BookingRefResponse `json:"nextBooking,omitempty"`
	Comments    []*CommentResponse  `json:"comments"`
}

type ItemSummaryResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	RequestID   *uuid.UUID `json:"requestId,omitempty"`
}

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	resp := &ItemResponse{}
	_ = copier.Copy(resp, v)
	resp.LastBooking = FromBookingRef(v.LastBooking)
	resp.NextBooking = FromBookingRef(v.NextBooking)
	resp.Comments = FromCommentViews(v.Comments)
	return resp
}

func FromItemViews(views []*queries.ItemView) []*ItemResponse {
	result := make([]*ItemResponse, len(views))
	for i, v := range views {
		result[i] = FromItemView(v)
	}
	return result
}

func FromItemSummary(v *queries.ItemSummary) *ItemSummaryResponse {
	resp := &ItemSummaryResponse{}
	_ = copier.Copy(resp, v)
	return resp
}

func FromItemSummaries(views []*queries.ItemSummary) []*ItemSummaryResponse {
	result := make([]*ItemSummaryResponse, len(views))
	for i, v := range views {
		result[i] = FromItemSummary(v)
	}
	return result
}

func FromCommentView(v *queries.CommentView) *CommentResponse {
	return &CommentResponse{
		ID:         v.ID,
		Text:       v.Text,
		AuthorName: v.AuthorName,
		Created:    v.Created,
	}
}

func FromCommentViews(views []*queries.CommentView) []*CommentResponse {
	result := make([]*CommentResponse, len(views))
	for i, v := range views {
		result[i] = FromCommentView(v)
	}
	return result
}
