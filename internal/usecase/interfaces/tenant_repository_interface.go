package interfaces

import (
	"context"
	"gestao_imobiliaria/internal/domain/entities"
)

// ITenantRepository abstracts DynamoDB persistence for Tenant.

type ITenantRepository interface {
	Create(ctx context.Context, t entities.Tenant) (entities.Tenant, error)
	GetByID(ctx context.Context, id string) (entities.Tenant, error)
	List(ctx context.Context, limit int) ([]entities.Tenant, error)
	Update(ctx context.Context, t entities.Tenant) (entities.Tenant, error)
	Delete(ctx context.Context, id string) error
}
