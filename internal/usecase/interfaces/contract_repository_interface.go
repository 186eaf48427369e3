package interfaces

import (
	"context"
	"gestao_imobiliaria/internal/domain/entities"
)

// IContractRepository abstracts DynamoDB persistence for Contract.
//
// The service must be able to:
//   - create a contract and enforce business-code lookups (code-index GSI)
//   - list the contracts referencing a property, optionally filtered by
//     status (property_id-index GSI) — the reconciler's sibling query
//   - count the collection for the idempotent seed/backfill pass

type IContractRepository interface {
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	GetByCode(ctx context.Context, code string) (entities.Contract, error)
	List(ctx context.Context) ([]entities.Contract, error)
	ListByPropertyID(ctx context.Context, propertyID string, statuses ...entities.ContractStatus) ([]entities.Contract, error)
	Update(ctx context.Context, c entities.Contract) (entities.Contract, error)
	UpdateStatus(ctx context.Context, id string, status entities.ContractStatus) (entities.Contract, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
