package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gestao_imobiliaria/internal/domain/entities"
	"gestao_imobiliaria/internal/usecase/interfaces"
)

var ErrPropertyNotLinked = errors.New("property referenced by contract not found")

// reconcileMaxAttempts bounds the optimistic-concurrency retry loop. Each
// retry re-reads the property and recomputes the target state.
const reconcileMaxAttempts = 3

// PropertyStatusReconciler recomputes a property's advertised status in
// response to a contract state change.
//
// Failure policy: reconciliation is a best-effort secondary effect. Errors
// are logged and swallowed here so the triggering contract operation never
// fails or rolls back because of the property write. Drift left behind by a
// failed pass is observable in the logs and repairable by a later pass.

type PropertyStatusReconciler struct {
	contracts  interfaces.IContractRepository
	properties interfaces.IPropertyRepository
}

var _ interfaces.IPropertyStatusReconciler = (*PropertyStatusReconciler)(nil)

func NewPropertyStatusReconciler(contracts interfaces.IContractRepository, properties interfaces.IPropertyRepository) *PropertyStatusReconciler {
	return &PropertyStatusReconciler{contracts: contracts, properties: properties}
}

// OnContractChange reconciles after a contract create or status change.
func (r *PropertyStatusReconciler) OnContractChange(ctx context.Context, c entities.Contract) {
	if err := r.reconcile(ctx, c, false); err != nil {
		log.Printf("[reconciler][usecase] reconcile failed contract_id=%s property_id=%s status=%s err=%v", c.ID, c.PropertyID, c.Status, err)
	}
}

// OnContractDelete reconciles after a contract deletion. Deletion always
// takes the release branch regardless of the contract's last status.
func (r *PropertyStatusReconciler) OnContractDelete(ctx context.Context, c entities.Contract) {
	if err := r.reconcile(ctx, c, true); err != nil {
		log.Printf("[reconciler][usecase] reconcile-on-delete failed contract_id=%s property_id=%s err=%v", c.ID, c.PropertyID, err)
	}
}

// reconcile applies the transition table, first match wins:
//
//	Active  + Rental  => RentedActive, linked to the contract
//	Active  + Sale    => Sold, linked to the contract
//	Pending + any     => Reserved, linked to the contract
//	terminal/deleted  => untouched while another Active contract drives the
//	                     property; otherwise revert to AvailableForRent
//	                     (Rental) or AvailableForSale (Sale) and clear the link
//
// The property write is conditional on the version read; on a conflict the
// whole pass re-reads and retries.
func (r *PropertyStatusReconciler) reconcile(ctx context.Context, c entities.Contract, deleted bool) error {
	for attempt := 1; attempt <= reconcileMaxAttempts; attempt++ {
		p, err := r.properties.GetByID(ctx, c.PropertyID)
		if err != nil {
			return err
		}
		if p.ID == "" {
			return ErrPropertyNotLinked
		}

		var status entities.PropertyStatus
		var linked *string

		switch {
		case !deleted && c.Status == entities.ContractStatusActive && c.Type == entities.ContractTypeRental:
			status = entities.PropertyStatusRentedActive
			linked = &c.ID
		case !deleted && c.Status == entities.ContractStatusActive && c.Type == entities.ContractTypeSale:
			status = entities.PropertyStatusSold
			linked = &c.ID
		case !deleted && c.Status == entities.ContractStatusPending:
			status = entities.PropertyStatusReserved
			linked = &c.ID
		default:
			actives, err := r.contracts.ListByPropertyID(ctx, c.PropertyID, entities.ContractStatusActive)
			if err != nil {
				return err
			}
			for _, sibling := range actives {
				if sibling.ID != c.ID {
					// Another active contract still drives the property.
					log.Printf("[reconciler][usecase] property shielded by active sibling property_id=%s sibling_contract_id=%s", c.PropertyID, sibling.ID)
					return nil
				}
			}
			if c.Type == entities.ContractTypeRental {
				status = entities.PropertyStatusAvailableForRent
			} else {
				status = entities.PropertyStatusAvailableForSale
			}
		}

		_, err = r.properties.UpdateAdvertisedStatus(ctx, p.ID, status, linked, p.Version)
		if errors.Is(err, interfaces.ErrPropertyVersionConflict) {
			log.Printf("[reconciler][usecase] version conflict, retrying property_id=%s attempt=%d", p.ID, attempt)
			continue
		}
		if err != nil {
			return err
		}
		if deleted && linked == nil {
			// Audit trail for the auto-release on deletion.
			log.Printf("[reconciler][usecase] property auto-released after contract deletion property_id=%s contract_id=%s new_status=%s", p.ID, c.ID, status)
		}
		return nil
	}
	return fmt.Errorf("gave up after %d version conflicts on property %s", reconcileMaxAttempts, c.PropertyID)
}
