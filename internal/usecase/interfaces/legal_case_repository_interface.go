package interfaces

import (
	"context"
	"gestao_imobiliaria/internal/domain/entities"
)

// ILegalCaseRepository abstracts DynamoDB persistence for LegalCase.

type ILegalCaseRepository interface {
	Create(ctx context.Context, lc entities.LegalCase) (entities.LegalCase, error)
	GetByID(ctx context.Context, id string) (entities.LegalCase, error)
	List(ctx context.Context) ([]entities.LegalCase, error)
	ListByContractID(ctx context.Context, contractID string) ([]entities.LegalCase, error)
	Update(ctx context.Context, lc entities.LegalCase) (entities.LegalCase, error)
	Delete(ctx context.Context, id string) error
}
