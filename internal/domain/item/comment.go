package item

import (
	"strings"
	"time"

	"gearshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBlankComment = errs.New("comment text cannot be blank")

// CommentText is trimmed comment content; blank after trimming is
// rejected.
type CommentText struct {
	value string
}

func NewCommentText(value string) (CommentText, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return CommentText{}, ErrBlankComment
	}
	return CommentText{value: trimmed}, nil
}

func (t CommentText) String() string {
	return t.value
}

// Comment is feedback a renter leaves on an item after a completed
// booking. Eligibility is enforced by the comment command, not here.
type Comment struct {
	id        uuid.UUID
	itemID    uuid.UUID
	authorID  uuid.UUID
	text      CommentText
	createdAt time.Time
}

func NewComment(itemID, authorID uuid.UUID, text CommentText, createdAt time.Time) *Comment {
	return &Comment{
		id:        uuid.New(),
		itemID:    itemID,
		authorID:  authorID,
		text:      text,
		createdAt: createdAt,
	}
}

func (c *Comment) ID() uuid.UUID        { return c.id }
func (c *Comment) ItemID() uuid.UUID    { return c.itemID }
func (c *Comment) AuthorID() uuid.UUID  { return c.authorID }
func (c *Comment) Text() CommentText    { return c.text }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
