package commands

import (
	"context"

	"gearshare/internal/domain/user"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/pkg/password"
	"gearshare/internal/pkg/patch"
	"gearshare/internal/usecase/queries"
	"gearshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDuplicateEmail = errs.New("email already registered")

type CreateUserRequest struct {
	Name     string
	Email    string
	Password string
}

type UpdateUserRequest struct {
	Name  *string
	Email *string
}

type UserCommands interface {
	Create(ctx context.Context, req CreateUserRequest) (*queries.UserView, error)
	Update(ctx context.Context, userID uuid.UUID, req UpdateUserRequest) (*queries.UserView, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserUseCase(uow shared.UnitOfWork, clk clock.Clock) UserCommands {
	return &userUseCaseImpl{uow: uow, clock: clk}
}

func (uc *userUseCaseImpl) Create(ctx context.Context, req CreateUserRequest) (*queries.UserView, error) {
	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	u, err := user.NewUser(req.Name, req.Email, hash)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Users().Create(ctx, tx.DB(), u, hash); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(errs.Newf("email %s is already registered", req.Email), ErrDuplicateEmail)
			}
			return errs.Mark(derr, ErrCommandDBFailure)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return userViewOf(u), nil
}

func (uc *userUseCaseImpl) Update(ctx context.Context, userID uuid.UUID, req UpdateUserRequest) (*queries.UserView, error) {
	var updated *user.User
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().UserByID(ctx, userID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(errs.Newf("user with id %s not found", userID), ErrUserNotFound)
			}
			return errs.Mark(derr, ErrCommandDBFailure)
		}

		now := uc.clock.Now()
		updated = user.Reconstruct(
			snap.ID,
			patch.Coalesce(req.Name, snap.Name),
			patch.Coalesce(req.Email, snap.Email),
			"",
			now, now,
		)
		if derr = tx.Users().Update(ctx, tx.DB(), updated); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(errs.Newf("email %s is already registered", updated.Email()), ErrDuplicateEmail)
			}
			return errs.Mark(derr, ErrCommandDBFailure)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return userViewOf(updated), nil
}

func (uc *userUseCaseImpl) Delete(ctx context.Context, userID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Users().Delete(ctx, tx.DB(), userID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(errs.Newf("user with id %s not found", userID), ErrUserNotFound)
			}
			return errs.Mark(derr, ErrCommandDBFailure)
		}
		return nil
	})
}

func userViewOf(u *user.User) *queries.UserView {
	return &queries.UserView{
		ID:    u.ID(),
		Name:  u.Name(),
		Email: u.Email(),
	}
}
