package commands

import (
	"context"

	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/pkg/jwt"
	"gearshare/internal/pkg/password"
	"gearshare/internal/usecase/shared"
)

var ErrInvalidCredentials = errs.New("invalid email or password")

type LoginResult struct {
	Token string
}

type AuthCommands interface {
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	uow shared.UnitOfWork
	jwt *jwt.Service
}

func NewAuthUseCase(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authUseCaseImpl{uow: uow, jwt: jwtService}
}

// Login deliberately reports the same error for an unknown email and a
// wrong password.
func (uc *authUseCaseImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	creds, err := uc.uow.CommandReads().UserByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, ErrCommandDBFailure)
	}

	if err := password.Compare(creds.PasswordHash, rawPassword); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := uc.jwt.GenerateToken(creds.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrCommandDBFailure)
	}

	return &LoginResult{Token: token}, nil
}
