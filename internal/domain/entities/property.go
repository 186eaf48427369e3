package entities

import "time"

// PropertyStatus is the advertised availability state shown to prospective
// tenants/buyers.
//
// Domain notes:
//   - The status is operator-set at creation and reconciler-owned afterwards:
//     contract state changes drive it through the status reconciler.
//   - At most one contract drives a non-available status at any time; that
//     contract's id is kept in LinkedContractID.

type PropertyStatus string

const (
	PropertyStatusAvailableForSale PropertyStatus = "AvailableForSale"
	PropertyStatusAvailableForRent PropertyStatus = "AvailableForRent"
	PropertyStatusReserved         PropertyStatus = "Reserved"
	PropertyStatusRentedActive     PropertyStatus = "RentedActive"
	PropertyStatusSold             PropertyStatus = "Sold"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyStatusAvailableForSale, PropertyStatusAvailableForRent,
		PropertyStatusReserved, PropertyStatusRentedActive, PropertyStatusSold:
		return true
	}
	return false
}

// FloorPlan is the unit configuration. Each configuration maps to a fixed
// usable area in square meters.

type FloorPlan string

const (
	FloorPlanStudio       FloorPlan = "Studio"
	FloorPlanOneBedroom   FloorPlan = "OneBedroom"
	FloorPlanTwoBedroom   FloorPlan = "TwoBedroom"
	FloorPlanThreeBedroom FloorPlan = "ThreeBedroom"
	FloorPlanPenthouse    FloorPlan = "Penthouse"
)

var floorPlanAreas = map[FloorPlan]float64{
	FloorPlanStudio:       32,
	FloorPlanOneBedroom:   45,
	FloorPlanTwoBedroom:   62,
	FloorPlanThreeBedroom: 85,
	FloorPlanPenthouse:    120,
}

func (f FloorPlan) Valid() bool {
	_, ok := floorPlanAreas[f]
	return ok
}

// UsableArea returns the fixed usable area for the configuration, or 0 for an
// unknown configuration.
func (f FloorPlan) UsableArea() float64 {
	return floorPlanAreas[f]
}

type GarageType string

const (
	GarageTypeCovered   GarageType = "Covered"
	GarageTypeUncovered GarageType = "Uncovered"
	GarageTypeNone      GarageType = "None"
)

func (g GarageType) Valid() bool {
	switch g {
	case GarageTypeCovered, GarageTypeUncovered, GarageTypeNone:
		return true
	}
	return false
}

// Property is a sellable/rentable unit persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Concurrency:
//   - Version is an optimistic-concurrency token. Status writes are
//     conditional on the version read; a conflicting write bumps it and the
//     reconciler retries.

type Property struct {
	ID               string         `json:"id"`
	GroupNumber      int            `json:"group_number"`
	BlockLetter      string         `json:"block_letter"`
	Floor            int            `json:"floor"`
	UnitNumber       int            `json:"unit_number"`
	FloorPlan        FloorPlan      `json:"floor_plan"`
	UsableArea       float64        `json:"usable_area"`
	GarageSlots      int            `json:"garage_slots"`
	GarageType       GarageType     `json:"garage_type"`
	Price            float64        `json:"price"`
	AdvertisedStatus PropertyStatus `json:"advertised_status"`
	LinkedContractID *string        `json:"linked_contract_id,omitempty"`
	StatusChangedAt  time.Time      `json:"status_changed_at"`
	Version          int64          `json:"version"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}
