package request

import (
	"strings"

	"gestao_imobiliaria/internal/domain/entities"
)

// PropertyRequest is the payload for POST /properties and PUT /properties/:id.
//
// advertised_status is only honored on create (operator-set initial state);
// afterwards the status reconciler owns it.
type PropertyRequest struct {
	GroupNumber      int     `json:"group_number" binding:"required"`
	BlockLetter      string  `json:"block_letter" binding:"required"`
	Floor            int     `json:"floor"`
	UnitNumber       int     `json:"unit_number" binding:"required"`
	FloorPlan        string  `json:"floor_plan" binding:"required"`
	UsableArea       float64 `json:"usable_area"`
	GarageSlots      int     `json:"garage_slots"`
	GarageType       string  `json:"garage_type"`
	Price            float64 `json:"price" binding:"required"`
	AdvertisedStatus string  `json:"advertised_status"`
}

func (r PropertyRequest) ToEntity() entities.Property {
	return entities.Property{
		GroupNumber:      r.GroupNumber,
		BlockLetter:      strings.TrimSpace(r.BlockLetter),
		Floor:            r.Floor,
		UnitNumber:       r.UnitNumber,
		FloorPlan:        entities.FloorPlan(strings.TrimSpace(r.FloorPlan)),
		UsableArea:       r.UsableArea,
		GarageSlots:      r.GarageSlots,
		GarageType:       entities.GarageType(strings.TrimSpace(r.GarageType)),
		Price:            r.Price,
		AdvertisedStatus: entities.PropertyStatus(strings.TrimSpace(r.AdvertisedStatus)),
	}
}
