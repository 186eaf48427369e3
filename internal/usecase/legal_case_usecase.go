package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gestao_imobiliaria/internal/domain/entities"
	"gestao_imobiliaria/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrLegalCaseNotFound      = errors.New("legal case not found")
	ErrInvalidLegalCaseID     = errors.New("invalid legal case id")
	ErrInvalidLegalCaseNumber = errors.New("invalid legal case number")
	ErrInvalidLegalCaseType   = errors.New("invalid legal case type")
	ErrInvalidLegalCaseStatus = errors.New("invalid legal case status")
)

// ILegalCaseUseCase exposes legal case tracking operations.

type ILegalCaseUseCase interface {
	Create(ctx context.Context, lc entities.LegalCase) (entities.LegalCase, error)
	GetByID(ctx context.Context, id string) (entities.LegalCase, error)
	List(ctx context.Context) ([]entities.LegalCase, error)
	ListByContractID(ctx context.Context, contractID string) ([]entities.LegalCase, error)
	Update(ctx context.Context, id string, lc entities.LegalCase) (entities.LegalCase, error)
	UpdateStatus(ctx context.Context, id string, status entities.LegalCaseStatus) (entities.LegalCase, error)
	Delete(ctx context.Context, id string) error
}

type LegalCaseUseCase struct {
	repo interfaces.ILegalCaseRepository
}

var _ ILegalCaseUseCase = (*LegalCaseUseCase)(nil)

func NewLegalCaseUseCase(repo interfaces.ILegalCaseRepository) *LegalCaseUseCase {
	return &LegalCaseUseCase{repo: repo}
}

func (u *LegalCaseUseCase) Create(ctx context.Context, lc entities.LegalCase) (entities.LegalCase, error) {
	lc.CaseNumber = strings.TrimSpace(lc.CaseNumber)
	if lc.CaseNumber == "" {
		return entities.LegalCase{}, ErrInvalidLegalCaseNumber
	}
	if !lc.Type.Valid() {
		return entities.LegalCase{}, ErrInvalidLegalCaseType
	}
	if lc.Status == "" {
		lc.Status = entities.LegalCaseStatusOpen
	}
	if !lc.Status.Valid() {
		return entities.LegalCase{}, ErrInvalidLegalCaseStatus
	}

	now := time.Now().UTC()
	lc.ID = uuid.NewString()
	if lc.OpenedAt.IsZero() {
		lc.OpenedAt = now
	}
	lc.ClosedAt = nil
	lc.CreatedAt = now
	lc.UpdatedAt = now
	return u.repo.Create(ctx, lc)
}

func (u *LegalCaseUseCase) GetByID(ctx context.Context, id string) (entities.LegalCase, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LegalCase{}, ErrInvalidLegalCaseID
	}

	lc, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.LegalCase{}, err
	}
	if lc.ID == "" {
		return entities.LegalCase{}, ErrLegalCaseNotFound
	}
	return lc, nil
}

func (u *LegalCaseUseCase) List(ctx context.Context) ([]entities.LegalCase, error) {
	return u.repo.List(ctx)
}

func (u *LegalCaseUseCase) ListByContractID(ctx context.Context, contractID string) ([]entities.LegalCase, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return nil, ErrInvalidContractID
	}
	return u.repo.ListByContractID(ctx, contractID)
}

func (u *LegalCaseUseCase) Update(ctx context.Context, id string, lc entities.LegalCase) (entities.LegalCase, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.LegalCase{}, err
	}

	lc.CaseNumber = strings.TrimSpace(lc.CaseNumber)
	if lc.CaseNumber == "" {
		return entities.LegalCase{}, ErrInvalidLegalCaseNumber
	}
	if !lc.Type.Valid() {
		return entities.LegalCase{}, ErrInvalidLegalCaseType
	}
	if !lc.Status.Valid() {
		return entities.LegalCase{}, ErrInvalidLegalCaseStatus
	}

	lc.ID = existing.ID
	if lc.OpenedAt.IsZero() {
		lc.OpenedAt = existing.OpenedAt
	}
	lc.ClosedAt = existing.ClosedAt
	lc.CreatedAt = existing.CreatedAt
	lc.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, lc)
}

// UpdateStatus moves the case to the given status. Closing stamps ClosedAt;
// reopening clears it.
func (u *LegalCaseUseCase) UpdateStatus(ctx context.Context, id string, status entities.LegalCaseStatus) (entities.LegalCase, error) {
	if !status.Valid() {
		return entities.LegalCase{}, ErrInvalidLegalCaseStatus
	}

	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.LegalCase{}, err
	}
	if existing.Status == status {
		return existing, nil
	}

	now := time.Now().UTC()
	existing.Status = status
	if status == entities.LegalCaseStatusClosed {
		existing.ClosedAt = &now
	} else {
		existing.ClosedAt = nil
	}
	existing.UpdatedAt = now
	return u.repo.Update(ctx, existing)
}

func (u *LegalCaseUseCase) Delete(ctx context.Context, id string) error {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, existing.ID)
}
