package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"imperium_store/internal/domain/entities"
	mock_interfaces "imperium_store/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestUserUseCase_EnsureProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("returns existing profile untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		stored := entities.User{ID: "user-1", Email: "ana@example.com", Name: "Ana", Role: entities.RoleCustomer}
		repo.EXPECT().GetByID(gomock.Any(), "user-1").Return(stored, nil)

		got, err := uc.EnsureProfile(ctx, "user-1", "other@example.com", "Outro Nome", entities.RoleAdmin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got, stored) {
			t.Fatalf("expected stored profile, got %+v", got)
		}
	})

	t.Run("creates profile on first sight with customer default role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "user-2").Return(entities.User{}, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, user entities.User) (entities.User, error) {
				if user.ID != "user-2" || user.Email != "bia@example.com" {
					t.Fatalf("unexpected user: %+v", user)
				}
				if user.Role != entities.RoleCustomer {
					t.Fatalf("expected default customer role, got %q", user.Role)
				}
				if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
					t.Fatal("expected timestamps to be set")
				}
				return user, nil
			})

		if _, err := uc.EnsureProfile(ctx, "user-2", " bia@example.com ", "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects blank id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewUserUseCase(mock_interfaces.NewMockIUserRepository(ctrl))

		if _, err := uc.EnsureProfile(ctx, "  ", "a@b.com", "", ""); !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})
}

func TestUserUseCase_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a name or an address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewUserUseCase(mock_interfaces.NewMockIUserRepository(ctrl))

		if _, err := uc.UpdateProfile(ctx, "user-1", "   ", nil); !errors.Is(err, ErrInvalidProfile) {
			t.Fatalf("expected ErrInvalidProfile, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().UpdateProfile(gomock.Any(), "ghost", "Ana", nil).Return(entities.User{}, nil)

		if _, err := uc.UpdateProfile(ctx, "ghost", "Ana", nil); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("updates address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		addr := &entities.Address{Street: "Av. Paulista", Number: "1000", City: "São Paulo", State: "SP", ZipCode: "01310-930"}
		repo.EXPECT().UpdateProfile(gomock.Any(), "user-1", "", addr).
			Return(entities.User{ID: "user-1", ShippingAddress: addr}, nil)

		got, err := uc.UpdateProfile(ctx, "user-1", "", addr)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ShippingAddress == nil || got.ShippingAddress.ZipCode != "01310-930" {
			t.Fatalf("expected shipping address to be set, got %+v", got.ShippingAddress)
		}
	})
}
