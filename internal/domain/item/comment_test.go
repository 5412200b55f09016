//go:build unit

package item_test

import (
	"testing"
	"time"

	"gearshare/internal/domain/item"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommentText(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "plain text", input: "Worked great", want: "Worked great"},
		{name: "surrounding whitespace trimmed", input: "  Worked great  ", want: "Worked great"},
		{name: "single character", input: "a", want: "a"},
		{name: "empty", input: "", errIs: item.ErrBlankComment},
		{name: "whitespace only", input: "   \t\n", errIs: item.ErrBlankComment},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			text, err := item.NewCommentText(c.input)

			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, text.String())
		})
	}
}

func TestNewComment(t *testing.T) {
	itemID := uuid.New()
	authorID := uuid.New()
	created := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	text, err := item.NewCommentText("Worked great")
	require.NoError(t, err)

	c := item.NewComment(itemID, authorID, text, created)

	assert.NotEqual(t, uuid.Nil, c.ID())
	assert.Equal(t, itemID, c.ItemID())
	assert.Equal(t, authorID, c.AuthorID())
	assert.Equal(t, "Worked great", c.Text().String())
	assert.Equal(t, created, c.CreatedAt())
}
