//go:build unit

package commands_test

import (
	"context"
	"testing"

	"gearshare/internal/domain/user"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/password"
	"gearshare/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userCommandsFixture struct {
	uow      *fakeUoW
	commands commands.UserCommands
}

func newUserCommandsFixture() *userCommandsFixture {
	uow := newFakeUoW()
	return &userCommandsFixture{
		uow:      uow,
		commands: commands.NewUserUseCase(uow, clock.NewMockClock(testNow)),
	}
}

func TestUserCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a hashed password, never the raw one", func(t *testing.T) {
		f := newUserCommandsFixture()

		got, err := f.commands.Create(ctx, commands.CreateUserRequest{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "s3cret-pass",
		})
		require.NoError(t, err)
		assert.Equal(t, "Alice", got.Name)
		assert.Equal(t, "alice@example.com", got.Email)

		require.Len(t, f.uow.tx.users.created, 1)
		stored := f.uow.tx.users.created[0]
		assert.NotEqual(t, "s3cret-pass", stored.PasswordHash())
		assert.NoError(t, password.Compare(stored.PasswordHash(), "s3cret-pass"))
	})

	t.Run("invalid email rejected before the transaction", func(t *testing.T) {
		f := newUserCommandsFixture()

		_, err := f.commands.Create(ctx, commands.CreateUserRequest{
			Name:     "Alice",
			Email:    "not-an-email",
			Password: "s3cret-pass",
		})
		require.ErrorIs(t, err, user.ErrInvalidEmail)
		assert.Zero(t, f.uow.withinCalls)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newUserCommandsFixture()
		f.uow.tx.users.createErr = infra.WrapRepoErr("unique violation", nil, infra.KindDuplicateKey)

		_, err := f.commands.Create(ctx, commands.CreateUserRequest{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "s3cret-pass",
		})
		require.ErrorIs(t, err, commands.ErrDuplicateEmail)
	})
}

func TestUserCommands_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial edit keeps untouched fields", func(t *testing.T) {
		f := newUserCommandsFixture()
		userID := f.uow.addUser("Alice")

		name := "Alicia"
		got, err := f.commands.Update(ctx, userID, commands.UpdateUserRequest{Name: &name})
		require.NoError(t, err)

		assert.Equal(t, "Alicia", got.Name)
		assert.Equal(t, "Alice@example.com", got.Email)
		require.Len(t, f.uow.tx.users.updated, 1)
	})

	t.Run("missing user", func(t *testing.T) {
		f := newUserCommandsFixture()

		name := "Alicia"
		_, err := f.commands.Update(ctx, uuid.New(), commands.UpdateUserRequest{Name: &name})
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})
}

func TestUserCommands_Delete(t *testing.T) {
	ctx := context.Background()

	f := newUserCommandsFixture()
	userID := f.uow.addUser("Alice")

	require.NoError(t, f.commands.Delete(ctx, userID))
	assert.Equal(t, []uuid.UUID{userID}, f.uow.tx.users.deleted)
}
