package interfaces

import (
	"context"
	"errors"
	"gestao_imobiliaria/internal/domain/entities"
)

// ErrPropertyVersionConflict is returned by UpdateAdvertisedStatus when the
// stored version no longer matches the expected one (lost-update guard).
var ErrPropertyVersionConflict = errors.New("property version conflict")

// IPropertyRepository abstracts DynamoDB persistence for Property.
//
// UpdateAdvertisedStatus is the reconciler's write path: it must set the
// advertised status, the driving contract id (nil clears it), stamp
// status_changed_at and bump the version, conditionally on expectedVersion.

type IPropertyRepository interface {
	Create(ctx context.Context, p entities.Property) (entities.Property, error)
	GetByID(ctx context.Context, id string) (entities.Property, error)
	List(ctx context.Context, limit int) ([]entities.Property, error)
	Update(ctx context.Context, p entities.Property) (entities.Property, error)
	UpdateAdvertisedStatus(ctx context.Context, id string, status entities.PropertyStatus, linkedContractID *string, expectedVersion int64) (entities.Property, error)
	Delete(ctx context.Context, id string) error
}
