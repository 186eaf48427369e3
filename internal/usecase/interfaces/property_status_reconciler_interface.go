package interfaces

import (
	"context"
	"gestao_imobiliaria/internal/domain/entities"
)

// IPropertyStatusReconciler is the port through which contract mutations
// drive the linked property's advertised status.
//
// Implementations must treat the property write as best-effort: errors are
// logged and swallowed, never propagated to the contract operation.

type IPropertyStatusReconciler interface {
	OnContractChange(ctx context.Context, c entities.Contract)
	OnContractDelete(ctx context.Context, c entities.Contract)
}
