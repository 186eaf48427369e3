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
	ErrPropertyNotFound       = errors.New("property not found")
	ErrInvalidPropertyID      = errors.New("invalid property id")
	ErrInvalidFloorPlan       = errors.New("invalid floor plan")
	ErrInvalidPropertyStatus  = errors.New("invalid property status")
	ErrInvalidGarageType      = errors.New("invalid garage type")
	ErrInvalidPropertyPrice   = errors.New("invalid property price")
	ErrInvalidPropertyAddress = errors.New("invalid property address fields")
)

// IPropertyUseCase exposes property operations.
//
// The advertised status is operator-set on create and reconciler-owned
// afterwards; a full update keeps the stored status/link/version so it never
// fights the reconciler over them.

type IPropertyUseCase interface {
	Create(ctx context.Context, p entities.Property) (entities.Property, error)
	GetByID(ctx context.Context, id string) (entities.Property, error)
	List(ctx context.Context) ([]entities.Property, error)
	Update(ctx context.Context, id string, p entities.Property) (entities.Property, error)
	Delete(ctx context.Context, id string) error
}

type PropertyUseCase struct {
	repo interfaces.IPropertyRepository
}

var _ IPropertyUseCase = (*PropertyUseCase)(nil)

func NewPropertyUseCase(repo interfaces.IPropertyRepository) *PropertyUseCase {
	return &PropertyUseCase{repo: repo}
}

func (u *PropertyUseCase) Create(ctx context.Context, p entities.Property) (entities.Property, error) {
	if err := validateProperty(&p); err != nil {
		return entities.Property{}, err
	}
	if p.AdvertisedStatus == "" {
		p.AdvertisedStatus = entities.PropertyStatusAvailableForSale
	}
	if !p.AdvertisedStatus.Valid() {
		return entities.Property{}, ErrInvalidPropertyStatus
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.LinkedContractID = nil
	p.StatusChangedAt = now
	p.Version = 1
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.repo.Create(ctx, p)
}

func (u *PropertyUseCase) GetByID(ctx context.Context, id string) (entities.Property, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Property{}, ErrInvalidPropertyID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Property{}, err
	}
	if p.ID == "" {
		return entities.Property{}, ErrPropertyNotFound
	}
	return p, nil
}

func (u *PropertyUseCase) List(ctx context.Context) ([]entities.Property, error) {
	return u.repo.List(ctx, 0)
}

func (u *PropertyUseCase) Update(ctx context.Context, id string, p entities.Property) (entities.Property, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Property{}, err
	}
	if err := validateProperty(&p); err != nil {
		return entities.Property{}, err
	}

	p.ID = existing.ID
	// Status, link and version stay reconciler-owned.
	p.AdvertisedStatus = existing.AdvertisedStatus
	p.LinkedContractID = existing.LinkedContractID
	p.StatusChangedAt = existing.StatusChangedAt
	p.Version = existing.Version
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, p)
}

func (u *PropertyUseCase) Delete(ctx context.Context, id string) error {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, existing.ID)
}

func validateProperty(p *entities.Property) error {
	p.BlockLetter = strings.TrimSpace(p.BlockLetter)
	if p.GroupNumber <= 0 || p.BlockLetter == "" || p.UnitNumber <= 0 {
		return ErrInvalidPropertyAddress
	}
	if !p.FloorPlan.Valid() {
		return ErrInvalidFloorPlan
	}
	if p.UsableArea <= 0 {
		p.UsableArea = p.FloorPlan.UsableArea()
	}
	if p.GarageType == "" {
		if p.GarageSlots > 0 {
			p.GarageType = entities.GarageTypeUncovered
		} else {
			p.GarageType = entities.GarageTypeNone
		}
	}
	if !p.GarageType.Valid() {
		return ErrInvalidGarageType
	}
	if p.Price <= 0 {
		return ErrInvalidPropertyPrice
	}
	return nil
}
