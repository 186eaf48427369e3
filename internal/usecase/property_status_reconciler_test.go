package usecase

import (
	"context"
	"errors"
	"testing"

	"gestao_imobiliaria/internal/domain/entities"
	"gestao_imobiliaria/internal/usecase/interfaces"
	mock_interfaces "gestao_imobiliaria/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPropertyStatusReconciler_OnContractChange(t *testing.T) {
	transitions := []struct {
		name   string
		ctype  entities.ContractType
		status entities.ContractStatus
		want   entities.PropertyStatus
	}{
		{name: "active rental rents the property", ctype: entities.ContractTypeRental, status: entities.ContractStatusActive, want: entities.PropertyStatusRentedActive},
		{name: "active sale sells the property", ctype: entities.ContractTypeSale, status: entities.ContractStatusActive, want: entities.PropertyStatusSold},
		{name: "pending rental reserves the property", ctype: entities.ContractTypeRental, status: entities.ContractStatusPending, want: entities.PropertyStatusReserved},
		{name: "pending sale reserves the property", ctype: entities.ContractTypeSale, status: entities.ContractStatusPending, want: entities.PropertyStatusReserved},
	}

	for _, tc := range transitions {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			contracts := mock_interfaces.NewMockIContractRepository(ctrl)
			properties := mock_interfaces.NewMockIPropertyRepository(ctrl)
			r := NewPropertyStatusReconciler(contracts, properties)

			c := entities.Contract{ID: "ctr-1", PropertyID: "prop-1", Type: tc.ctype, Status: tc.status}
			properties.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Property{ID: "prop-1", Version: 4}, nil)
			properties.EXPECT().UpdateAdvertisedStatus(gomock.Any(), "prop-1", tc.want, gomock.Any(), int64(4)).DoAndReturn(
				func(_ context.Context, _ string, _ entities.PropertyStatus, linked *string, _ int64) (entities.Property, error) {
					if linked == nil || *linked != "ctr-1" {
						t.Fatalf("expected link to ctr-1, got %v", linked)
					}
					return entities.Property{ID: "prop-1", Version: 5}, nil
				},
			)

			r.OnContractChange(context.Background(), c)
		})
	}

	t.Run("terminated rental releases the property", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		properties := mock_interfaces.NewMockIPropertyRepository(ctrl)
		r := NewPropertyStatusReconciler(contracts, properties)

		c := entities.Contract{ID: "ctr-1", PropertyID: "prop-1", Type: entities.ContractTypeRental, Status: entities.ContractStatusTerminated}
		properties.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Property{ID: "prop-1", Version: 2}, nil)
		contracts.EXPECT().ListByPropertyID(gomock.Any(), "prop-1", entities.ContractStatusActive).Return(nil, nil)
		properties.EXPECT().UpdateAdvertisedStatus(gomock.Any(), "prop-1", entities.PropertyStatusAvailableForRent, nil, int64(2)).Return(entities.Property{ID: "prop-1"}, nil)

		r.OnContractChange(context.Background(), c)
	})

	t.Run("completed sale releases to available for sale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		properties := mock_interfaces.NewMockIPropertyRepository(ctrl)
		r := NewPropertyStatusReconciler(contracts, properties)

		c := entities.Contract{ID: "ctr-1", PropertyID: "prop-1", Type: entities.ContractTypeSale, Status: entities.ContractStatusCompleted}
		properties.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Property{ID: "prop-1", Version: 1}, nil)
		contracts.EXPECT().ListByPropertyID(gomock.Any(), "prop-1", entities.ContractStatusActive).Return([]entities.Contract{{ID: "ctr-1"}}, nil)
		properties.EXPECT().UpdateAdvertisedStatus(gomock.Any(), "prop-1", entities.PropertyStatusAvailableForSale, nil, int64(1)).Return(entities.Property{ID: "prop-1"}, nil)

		r.OnContractChange(context.Background(), c)
	})

	t.Run("active sibling shields the property", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		properties := mock_interfaces.NewMockIPropertyRepository(ctrl)
		r := NewPropertyStatusReconciler(contracts, properties)

		c := entities.Contract{ID: "ctr-1", PropertyID: "prop-1", Type: entities.ContractTypeRental, Status: entities.ContractStatusTerminated}
		properties.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Property{ID: "prop-1", Version: 2}, nil)
		contracts.EXPECT().ListByPropertyID(gomock.Any(), "prop-1", entities.ContractStatusActive).Return([]entities.Contract{{ID: "ctr-2"}}, nil)
		// No UpdateAdvertisedStatus expected.

		r.OnContractChange(context.Background(), c)
	})

	t.Run("missing property is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		properties := mock_interfaces.NewMockIPropertyRepository(ctrl)
		r := NewPropertyStatusReconciler(contracts, properties)

		c := entities.Contract{ID: "ctr-1", PropertyID: "ghost", Type: entities.ContractTypeRental, Status: entities.ContractStatusActive}
		properties.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Property{}, nil)

		r.OnContractChange(context.Background(), c)
	})

	t.Run("repo error is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		properties := mock_interfaces.NewMockIPropertyRepository(ctrl)
		r := NewPropertyStatusReconciler(contracts, properties)

		c := entities.Contract{ID: "ctr-1", PropertyID: "prop-1", Type: entities.ContractTypeRental, Status: entities.ContractStatusActive}
		properties.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Property{}, errors.New("db"))

		r.OnContractChange(context.Background(), c)
	})
}

func TestPropertyStatusReconciler_VersionConflicts(t *testing.T) {
	t.Run("conflict re-reads and retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		properties := mock_interfaces.NewMockIPropertyRepository(ctrl)
		r := NewPropertyStatusReconciler(contracts, properties)

		c := entities.Contract{ID: "ctr-1", PropertyID: "prop-1", Type: entities.ContractTypeRental, Status: entities.ContractStatusActive}
		gomock.InOrder(
			properties.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Property{ID: "prop-1", Version: 3}, nil),
			properties.EXPECT().UpdateAdvertisedStatus(gomock.Any(), "prop-1", entities.PropertyStatusRentedActive, gomock.Any(), int64(3)).Return(entities.Property{}, interfaces.ErrPropertyVersionConflict),
			properties.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Property{ID: "prop-1", Version: 4}, nil),
			properties.EXPECT().UpdateAdvertisedStatus(gomock.Any(), "prop-1", entities.PropertyStatusRentedActive, gomock.Any(), int64(4)).Return(entities.Property{ID: "prop-1", Version: 5}, nil),
		)

		r.OnContractChange(context.Background(), c)
	})

	t.Run("gives up after bounded attempts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		properties := mock_interfaces.NewMockIPropertyRepository(ctrl)
		r := NewPropertyStatusReconciler(contracts, properties)

		c := entities.Contract{ID: "ctr-1", PropertyID: "prop-1", Type: entities.ContractTypeRental, Status: entities.ContractStatusActive}
		properties.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Property{ID: "prop-1", Version: 3}, nil).Times(reconcileMaxAttempts)
		properties.EXPECT().UpdateAdvertisedStatus(gomock.Any(), "prop-1", entities.PropertyStatusRentedActive, gomock.Any(), int64(3)).Return(entities.Property{}, interfaces.ErrPropertyVersionConflict).Times(reconcileMaxAttempts)

		r.OnContractChange(context.Background(), c)
	})
}

func TestPropertyStatusReconciler_OnContractDelete(t *testing.T) {
	t.Run("deleting an active contract releases the property", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		properties := mock_interfaces.NewMockIPropertyRepository(ctrl)
		r := NewPropertyStatusReconciler(contracts, properties)

		// Status is Active, but deletion still takes the release branch.
		c := entities.Contract{ID: "ctr-1", PropertyID: "prop-1", Type: entities.ContractTypeRental, Status: entities.ContractStatusActive}
		properties.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Property{ID: "prop-1", Version: 6}, nil)
		contracts.EXPECT().ListByPropertyID(gomock.Any(), "prop-1", entities.ContractStatusActive).Return([]entities.Contract{{ID: "ctr-1"}}, nil)
		properties.EXPECT().UpdateAdvertisedStatus(gomock.Any(), "prop-1", entities.PropertyStatusAvailableForRent, nil, int64(6)).Return(entities.Property{ID: "prop-1"}, nil)

		r.OnContractDelete(context.Background(), c)
	})

	t.Run("deleting under an active sibling leaves the property alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		properties := mock_interfaces.NewMockIPropertyRepository(ctrl)
		r := NewPropertyStatusReconciler(contracts, properties)

		c := entities.Contract{ID: "ctr-1", PropertyID: "prop-1", Type: entities.ContractTypeSale, Status: entities.ContractStatusPending}
		properties.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Property{ID: "prop-1", Version: 6}, nil)
		contracts.EXPECT().ListByPropertyID(gomock.Any(), "prop-1", entities.ContractStatusActive).Return([]entities.Contract{{ID: "ctr-9"}}, nil)

		r.OnContractDelete(context.Background(), c)
	})
}
