package usecase

import (
	"context"
	"errors"
	"testing"

	"gestao_imobiliaria/internal/domain/entities"
	mock_interfaces "gestao_imobiliaria/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTenantUseCase_Create(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewTenantUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Tenant{Name: "  ", Document: "123"})
		if !errors.Is(err, ErrInvalidTenantName) {
			t.Fatalf("expected ErrInvalidTenantName, got %v", err)
		}
	})

	t.Run("invalid document", func(t *testing.T) {
		uc := NewTenantUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Tenant{Name: "Maria", Document: ""})
		if !errors.Is(err, ErrInvalidTenantDocument) {
			t.Fatalf("expected ErrInvalidTenantDocument, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITenantRepository(ctrl)
		uc := NewTenantUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Tenant{})).DoAndReturn(
			func(_ context.Context, tn entities.Tenant) (entities.Tenant, error) {
				if tn.ID == "" || tn.Name != "Maria" || tn.Document != "12345678900" {
					t.Fatalf("unexpected tenant: %+v", tn)
				}
				if tn.CreatedAt.IsZero() || tn.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return tn, nil
			},
		)

		res, err := uc.Create(context.Background(), entities.Tenant{Name: " Maria ", Document: " 12345678900 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestTenantUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITenantRepository(ctrl)
		uc := NewTenantUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Tenant{}, nil)

		_, err := uc.Update(context.Background(), "id-1", entities.Tenant{Name: "Maria", Document: "123"})
		if !errors.Is(err, ErrTenantNotFound) {
			t.Fatalf("expected ErrTenantNotFound, got %v", err)
		}
	})

	t.Run("update keeps identity and creation time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITenantRepository(ctrl)
		uc := NewTenantUseCase(repo)

		existing := entities.Tenant{ID: "id-1", Name: "Maria"}
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Tenant{})).DoAndReturn(
			func(_ context.Context, tn entities.Tenant) (entities.Tenant, error) {
				if tn.ID != "id-1" || tn.Name != "Maria Silva" {
					t.Fatalf("unexpected tenant: %+v", tn)
				}
				return tn, nil
			},
		)

		res, err := uc.Update(context.Background(), "id-1", entities.Tenant{Name: "Maria Silva", Document: "123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "Maria Silva" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestTenantUseCase_GetDelete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewTenantUseCase(nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITenantRepository(ctrl)
		uc := NewTenantUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Tenant{}, nil)

		_, err := uc.GetByID(context.Background(), "id-1")
		if !errors.Is(err, ErrTenantNotFound) {
			t.Fatalf("expected ErrTenantNotFound, got %v", err)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITenantRepository(ctrl)
		uc := NewTenantUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Tenant{ID: "id-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "id-1").Return(nil)

		if err := uc.Delete(context.Background(), " id-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
