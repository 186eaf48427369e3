package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestao_imobiliaria/internal/domain/entities"
	mock_interfaces "gestao_imobiliaria/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestLegalCaseUseCase_Create(t *testing.T) {
	t.Run("invalid case number", func(t *testing.T) {
		uc := NewLegalCaseUseCase(nil)
		_, err := uc.Create(context.Background(), entities.LegalCase{CaseNumber: " ", Type: entities.LegalCaseTypeEviction})
		if !errors.Is(err, ErrInvalidLegalCaseNumber) {
			t.Fatalf("expected ErrInvalidLegalCaseNumber, got %v", err)
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		uc := NewLegalCaseUseCase(nil)
		_, err := uc.Create(context.Background(), entities.LegalCase{CaseNumber: "0001234-56.2026", Type: "Arbitration"})
		if !errors.Is(err, ErrInvalidLegalCaseType) {
			t.Fatalf("expected ErrInvalidLegalCaseType, got %v", err)
		}
	})

	t.Run("create success defaults open status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILegalCaseRepository(ctrl)
		uc := NewLegalCaseUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.LegalCase{})).DoAndReturn(
			func(_ context.Context, lc entities.LegalCase) (entities.LegalCase, error) {
				if lc.ID == "" || lc.Status != entities.LegalCaseStatusOpen {
					t.Fatalf("unexpected case: %+v", lc)
				}
				if lc.OpenedAt.IsZero() || lc.ClosedAt != nil {
					t.Fatalf("unexpected open/close stamps: %+v", lc)
				}
				return lc, nil
			},
		)

		res, err := uc.Create(context.Background(), entities.LegalCase{
			CaseNumber: "0001234-56.2026",
			ContractID: "ctr-1",
			Type:       entities.LegalCaseTypeEviction,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestLegalCaseUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewLegalCaseUseCase(nil)
		_, err := uc.UpdateStatus(context.Background(), "id-1", "Archived")
		if !errors.Is(err, ErrInvalidLegalCaseStatus) {
			t.Fatalf("expected ErrInvalidLegalCaseStatus, got %v", err)
		}
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILegalCaseRepository(ctrl)
		uc := NewLegalCaseUseCase(repo)
		existing := entities.LegalCase{ID: "id-1", Status: entities.LegalCaseStatusOpen}
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(existing, nil)

		res, err := uc.UpdateStatus(context.Background(), "id-1", entities.LegalCaseStatusOpen)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "id-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("closing stamps closed at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILegalCaseRepository(ctrl)
		uc := NewLegalCaseUseCase(repo)

		existing := entities.LegalCase{ID: "id-1", Status: entities.LegalCaseStatusInProgress}
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.LegalCase{})).DoAndReturn(
			func(_ context.Context, lc entities.LegalCase) (entities.LegalCase, error) {
				if lc.Status != entities.LegalCaseStatusClosed || lc.ClosedAt == nil {
					t.Fatalf("expected closed case with stamp: %+v", lc)
				}
				return lc, nil
			},
		)

		res, err := uc.UpdateStatus(context.Background(), "id-1", entities.LegalCaseStatusClosed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ClosedAt == nil {
			t.Fatalf("expected closed at stamp")
		}
	})

	t.Run("reopening clears closed at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILegalCaseRepository(ctrl)
		uc := NewLegalCaseUseCase(repo)

		closedAt := time.Now().UTC()
		existing := entities.LegalCase{ID: "id-1", Status: entities.LegalCaseStatusClosed, ClosedAt: &closedAt}
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.LegalCase{})).DoAndReturn(
			func(_ context.Context, lc entities.LegalCase) (entities.LegalCase, error) {
				if lc.Status != entities.LegalCaseStatusInProgress || lc.ClosedAt != nil {
					t.Fatalf("expected reopened case: %+v", lc)
				}
				return lc, nil
			},
		)

		if _, err := uc.UpdateStatus(context.Background(), "id-1", entities.LegalCaseStatusInProgress); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLegalCaseUseCase_ListByContractID(t *testing.T) {
	t.Run("invalid contract id", func(t *testing.T) {
		uc := NewLegalCaseUseCase(nil)
		_, err := uc.ListByContractID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidContractID) {
			t.Fatalf("expected ErrInvalidContractID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILegalCaseRepository(ctrl)
		uc := NewLegalCaseUseCase(repo)
		repo.EXPECT().ListByContractID(gomock.Any(), "ctr-1").Return([]entities.LegalCase{{ID: "lc-1"}}, nil)

		res, err := uc.ListByContractID(context.Background(), " ctr-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "lc-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
