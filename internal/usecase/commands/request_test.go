//go:build unit

package commands_test

import (
	"context"
	"testing"

	"gearshare/internal/pkg/clock"
	"gearshare/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestCommands_Create(t *testing.T) {
	ctx := context.Background()

	newFixture := func() (*fakeUoW, commands.RequestCommands) {
		uow := newFakeUoW()
		return uow, commands.NewRequestUseCase(uow, clock.NewMockClock(testNow))
	}

	t.Run("persists the request with the command clock", func(t *testing.T) {
		uow, cmds := newFixture()
		requesterID := uow.addUser("Alice")

		got, err := cmds.Create(ctx, commands.CreateRequestRequest{
			Description: "  Looking for a tile cutter  ",
		}, requesterID)
		require.NoError(t, err)

		assert.Equal(t, "Looking for a tile cutter", got.Description)
		assert.Equal(t, testNow, got.Created)
		assert.NotNil(t, got.Items)
		assert.Empty(t, got.Items)
		require.Len(t, uow.tx.requests.created, 1)
	})

	t.Run("blank description rejected before the transaction", func(t *testing.T) {
		uow, cmds := newFixture()

		_, err := cmds.Create(ctx, commands.CreateRequestRequest{Description: "   "}, uuid.New())
		require.ErrorIs(t, err, commands.ErrBlankRequestDescription)
		assert.Zero(t, uow.withinCalls)
	})

	t.Run("unknown requester", func(t *testing.T) {
		_, cmds := newFixture()

		_, err := cmds.Create(ctx, commands.CreateRequestRequest{Description: "Need a drill"}, uuid.New())
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})
}
