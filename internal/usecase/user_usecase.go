package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"imperium_store/internal/domain/entities"
	"imperium_store/internal/usecase/interfaces"
)

var ErrInvalidProfile = errors.New("invalid profile data")

// IUserUseCase exposes the customer profile. Sign-in itself happens at the
// external identity provider; EnsureProfile mirrors a verified token into the
// local users table on first sight.

type IUserUseCase interface {
	EnsureProfile(ctx context.Context, id, email, name, role string) (entities.User, error)
	Me(ctx context.Context, id string) (entities.User, error)
	UpdateProfile(ctx context.Context, id, name string, addr *entities.Address) (entities.User, error)
	ListCustomers(ctx context.Context) ([]entities.User, error)
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// EnsureProfile creates the local profile for an identity-provider subject if
// it does not exist yet, and returns the stored profile otherwise.
func (u *UserUseCase) EnsureProfile(ctx context.Context, id, email, name, role string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return existing, nil
	}

	if role == "" {
		role = entities.RoleCustomer
	}
	now := time.Now().UTC()
	return u.repo.Upsert(ctx, entities.User{
		ID:        id,
		Email:     strings.TrimSpace(email),
		Name:      strings.TrimSpace(name),
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (u *UserUseCase) Me(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}

	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *UserUseCase) UpdateProfile(ctx context.Context, id, name string, addr *entities.Address) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}
	name = strings.TrimSpace(name)
	if name == "" && addr == nil {
		return entities.User{}, ErrInvalidProfile
	}

	updated, err := u.repo.UpdateProfile(ctx, id, name, addr)
	if err != nil {
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return updated, nil
}

func (u *UserUseCase) ListCustomers(ctx context.Context) ([]entities.User, error) {
	return u.repo.List(ctx)
}
