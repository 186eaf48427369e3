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
	ErrTenantNotFound        = errors.New("tenant not found")
	ErrInvalidTenantID       = errors.New("invalid tenant id")
	ErrInvalidTenantName     = errors.New("invalid tenant name")
	ErrInvalidTenantDocument = errors.New("invalid tenant document")
)

type ITenantUseCase interface {
	Create(ctx context.Context, t entities.Tenant) (entities.Tenant, error)
	GetByID(ctx context.Context, id string) (entities.Tenant, error)
	List(ctx context.Context) ([]entities.Tenant, error)
	Update(ctx context.Context, id string, t entities.Tenant) (entities.Tenant, error)
	Delete(ctx context.Context, id string) error
}

type TenantUseCase struct {
	repo interfaces.ITenantRepository
}

var _ ITenantUseCase = (*TenantUseCase)(nil)

func NewTenantUseCase(repo interfaces.ITenantRepository) *TenantUseCase {
	return &TenantUseCase{repo: repo}
}

func (u *TenantUseCase) Create(ctx context.Context, t entities.Tenant) (entities.Tenant, error) {
	t.Name = strings.TrimSpace(t.Name)
	t.Document = strings.TrimSpace(t.Document)
	if t.Name == "" {
		return entities.Tenant{}, ErrInvalidTenantName
	}
	if t.Document == "" {
		return entities.Tenant{}, ErrInvalidTenantDocument
	}

	now := time.Now().UTC()
	t.ID = uuid.NewString()
	t.CreatedAt = now
	t.UpdatedAt = now
	return u.repo.Create(ctx, t)
}

func (u *TenantUseCase) GetByID(ctx context.Context, id string) (entities.Tenant, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Tenant{}, ErrInvalidTenantID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Tenant{}, err
	}
	if t.ID == "" {
		return entities.Tenant{}, ErrTenantNotFound
	}
	return t, nil
}

func (u *TenantUseCase) List(ctx context.Context) ([]entities.Tenant, error) {
	return u.repo.List(ctx, 0)
}

func (u *TenantUseCase) Update(ctx context.Context, id string, t entities.Tenant) (entities.Tenant, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Tenant{}, err
	}

	t.Name = strings.TrimSpace(t.Name)
	t.Document = strings.TrimSpace(t.Document)
	if t.Name == "" {
		return entities.Tenant{}, ErrInvalidTenantName
	}
	if t.Document == "" {
		return entities.Tenant{}, ErrInvalidTenantDocument
	}

	t.ID = existing.ID
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, t)
}

func (u *TenantUseCase) Delete(ctx context.Context, id string) error {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, existing.ID)
}
