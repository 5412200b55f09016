//go:build unit

package commands_test

import (
	"context"
	"testing"

	"gearshare/internal/domain/item"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemCommandsFixture struct {
	uow      *fakeUoW
	clock    *clock.MockClock
	commands commands.ItemCommands
}

func newItemCommandsFixture() *itemCommandsFixture {
	uow := newFakeUoW()
	clk := clock.NewMockClock(testNow)
	return &itemCommandsFixture{
		uow:      uow,
		clock:    clk,
		commands: commands.NewItemUseCase(uow, clk),
	}
}

func TestItemCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("persists the item and returns its summary", func(t *testing.T) {
		f := newItemCommandsFixture()
		ownerID := f.uow.addUser("Owner")

		got, err := f.commands.Create(ctx, commands.CreateItemRequest{
			Name:        "Cordless drill",
			Description: "18V drill with two batteries",
			Available:   true,
		}, ownerID)
		require.NoError(t, err)

		assert.Equal(t, "Cordless drill", got.Name)
		assert.True(t, got.Available)
		assert.Nil(t, got.RequestID)
		require.Len(t, f.uow.tx.items.created, 1)
		assert.Equal(t, ownerID, f.uow.tx.items.created[0].OwnerID())
	})

	t.Run("unknown owner", func(t *testing.T) {
		f := newItemCommandsFixture()

		_, err := f.commands.Create(ctx, commands.CreateItemRequest{Name: "Drill", Available: true}, uuid.New())
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("reply to a missing request", func(t *testing.T) {
		f := newItemCommandsFixture()
		ownerID := f.uow.addUser("Owner")
		missing := uuid.New()

		_, err := f.commands.Create(ctx, commands.CreateItemRequest{
			Name:      "Drill",
			Available: true,
			RequestID: &missing,
		}, ownerID)
		require.ErrorIs(t, err, commands.ErrRequestNotFound)
	})

	t.Run("reply to an existing request keeps the link", func(t *testing.T) {
		f := newItemCommandsFixture()
		ownerID := f.uow.addUser("Owner")
		requestID := uuid.New()
		f.uow.reads().requests[requestID] = true

		got, err := f.commands.Create(ctx, commands.CreateItemRequest{
			Name:      "Drill",
			Available: true,
			RequestID: &requestID,
		}, ownerID)
		require.NoError(t, err)
		require.NotNil(t, got.RequestID)
		assert.Equal(t, requestID, *got.RequestID)
	})
}

func TestItemCommands_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial edit keeps untouched fields", func(t *testing.T) {
		f := newItemCommandsFixture()
		ownerID := f.uow.addUser("Owner")
		itemID := f.uow.addItem(ownerID, true)

		name := "Impact driver"
		got, err := f.commands.Update(ctx, itemID, commands.UpdateItemRequest{Name: &name}, ownerID)
		require.NoError(t, err)

		assert.Equal(t, "Impact driver", got.Name)
		assert.Equal(t, "18V drill with two batteries", got.Description)
		assert.True(t, got.Available)
		require.Len(t, f.uow.tx.items.updated, 1)
	})

	t.Run("availability toggle", func(t *testing.T) {
		f := newItemCommandsFixture()
		ownerID := f.uow.addUser("Owner")
		itemID := f.uow.addItem(ownerID, true)

		off := false
		got, err := f.commands.Update(ctx, itemID, commands.UpdateItemRequest{Available: &off}, ownerID)
		require.NoError(t, err)
		assert.False(t, got.Available)
	})

	t.Run("missing item", func(t *testing.T) {
		f := newItemCommandsFixture()
		actorID := f.uow.addUser("Actor")

		name := "Drill"
		_, err := f.commands.Update(ctx, uuid.New(), commands.UpdateItemRequest{Name: &name}, actorID)
		require.ErrorIs(t, err, commands.ErrItemNotFound)
	})

	t.Run("non-owner cannot edit", func(t *testing.T) {
		f := newItemCommandsFixture()
		ownerID := f.uow.addUser("Owner")
		stranger := f.uow.addUser("Stranger")
		itemID := f.uow.addItem(ownerID, true)

		name := "Drill"
		_, err := f.commands.Update(ctx, itemID, commands.UpdateItemRequest{Name: &name}, stranger)
		require.ErrorIs(t, err, commands.ErrItemNotOwned)
		assert.Empty(t, f.uow.tx.items.updated)
	})
}

func TestItemCommands_CreateComment(t *testing.T) {
	ctx := context.Background()

	t.Run("eligible renter posts a comment", func(t *testing.T) {
		f := newItemCommandsFixture()
		ownerID := f.uow.addUser("Owner")
		authorID := f.uow.addUser("Alice")
		itemID := f.uow.addItem(ownerID, true)
		f.uow.reads().eligible[eligibilityKey{ItemID: itemID, AuthorID: authorID}] = true

		got, err := f.commands.CreateComment(ctx, itemID, "  Worked great  ", authorID)
		require.NoError(t, err)

		assert.Equal(t, "Worked great", got.Text)
		assert.Equal(t, "Alice", got.AuthorName)
		assert.Equal(t, testNow, got.Created)
		require.Len(t, f.uow.tx.comments.created, 1)
		assert.Equal(t, authorID, f.uow.tx.comments.created[0].AuthorID())
	})

	t.Run("blank text rejected before any lookup", func(t *testing.T) {
		f := newItemCommandsFixture()

		_, err := f.commands.CreateComment(ctx, uuid.New(), "   ", uuid.New())
		require.ErrorIs(t, err, item.ErrBlankComment)
		assert.Zero(t, f.uow.withinCalls)
	})

	t.Run("unknown author", func(t *testing.T) {
		f := newItemCommandsFixture()
		ownerID := f.uow.addUser("Owner")
		itemID := f.uow.addItem(ownerID, true)

		_, err := f.commands.CreateComment(ctx, itemID, "Worked great", uuid.New())
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("missing item", func(t *testing.T) {
		f := newItemCommandsFixture()
		authorID := f.uow.addUser("Alice")

		_, err := f.commands.CreateComment(ctx, uuid.New(), "Worked great", authorID)
		require.ErrorIs(t, err, commands.ErrItemNotFound)
	})

	t.Run("no finished approved booking", func(t *testing.T) {
		f := newItemCommandsFixture()
		ownerID := f.uow.addUser("Owner")
		authorID := f.uow.addUser("Alice")
		itemID := f.uow.addItem(ownerID, true)

		_, err := f.commands.CreateComment(ctx, itemID, "Worked great", authorID)
		require.ErrorIs(t, err, commands.ErrCommentNotAllowed)
		assert.Empty(t, f.uow.tx.comments.created)
	})
}
