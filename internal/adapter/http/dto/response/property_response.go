package response

import (
	"time"

	"gestao_imobiliaria/internal/domain/entities"
)

type PropertyResponse struct {
	ID               string    `json:"id"`
	GroupNumber      int       `json:"group_number"`
	BlockLetter      string    `json:"block_letter"`
	Floor            int       `json:"floor"`
	UnitNumber       int       `json:"unit_number"`
	FloorPlan        string    `json:"floor_plan"`
	UsableArea       float64   `json:"usable_area"`
	GarageSlots      int       `json:"garage_slots"`
	GarageType       string    `json:"garage_type"`
	Price            float64   `json:"price"`
	AdvertisedStatus string    `json:"advertised_status"`
	LinkedContractID *string   `json:"linked_contract_id,omitempty"`
	StatusChangedAt  time.Time `json:"status_changed_at"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromProperty(p entities.Property) PropertyResponse {
	return PropertyResponse{
		ID:               p.ID,
		GroupNumber:      p.GroupNumber,
		BlockLetter:      p.BlockLetter,
		Floor:            p.Floor,
		UnitNumber:       p.UnitNumber,
		FloorPlan:        string(p.FloorPlan),
		UsableArea:       p.UsableArea,
		GarageSlots:      p.GarageSlots,
		GarageType:       string(p.GarageType),
		Price:            p.Price,
		AdvertisedStatus: string(p.AdvertisedStatus),
		LinkedContractID: p.LinkedContractID,
		StatusChangedAt:  p.StatusChangedAt,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func FromProperties(ps []entities.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProperty(p))
	}
	return out
}
