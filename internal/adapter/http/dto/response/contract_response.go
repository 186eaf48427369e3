package response

import (
	"time"

	"gestao_imobiliaria/internal/domain/entities"
)

type AdjustmentResponse struct {
	Date          time.Time `json:"date"`
	Kind          string    `json:"kind"`
	PreviousValue float64   `json:"previous_value"`
	NewValue      float64   `json:"new_value"`
	Reason        string    `json:"reason,omitempty"`
}

type ContractResponse struct {
	ID                  string               `json:"id"`
	Code                string               `json:"code"`
	TenantID            string               `json:"tenant_id"`
	PropertyID          string               `json:"property_id"`
	Type                string               `json:"type"`
	Status              string               `json:"status"`
	StartDate           time.Time            `json:"start_date"`
	EndDate             time.Time            `json:"end_date"`
	DurationMonths      int                  `json:"duration_months"`
	Amount              float64              `json:"amount"`
	DueDay              int                  `json:"due_day"`
	NextDueDate         time.Time            `json:"next_due_date"`
	LastAdjustmentAt    time.Time            `json:"last_adjustment_at"`
	AnnualAdjustmentPct float64              `json:"annual_adjustment_pct"`
	AdjustmentIndex     string               `json:"adjustment_index"`
	NeedsAdjustment     bool                 `json:"needs_adjustment"`
	Notes               string               `json:"notes,omitempty"`
	Adjustments         []AdjustmentResponse `json:"adjustments,omitempty"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

func FromContract(c entities.Contract) ContractResponse {
	var adjustments []AdjustmentResponse
	for _, a := range c.Adjustments {
		adjustments = append(adjustments, AdjustmentResponse{
			Date:          a.Date,
			Kind:          a.Kind,
			PreviousValue: a.PreviousValue,
			NewValue:      a.NewValue,
			Reason:        a.Reason,
		})
	}
	return ContractResponse{
		ID:                  c.ID,
		Code:                c.Code,
		TenantID:            c.TenantID,
		PropertyID:          c.PropertyID,
		Type:                string(c.Type),
		Status:              string(c.Status),
		StartDate:           c.StartDate,
		EndDate:             c.EndDate,
		DurationMonths:      c.DurationMonths,
		Amount:              c.Amount,
		DueDay:              c.DueDay,
		NextDueDate:         c.NextDueDate,
		LastAdjustmentAt:    c.LastAdjustmentAt,
		AnnualAdjustmentPct: c.AnnualAdjustmentPct,
		AdjustmentIndex:     string(c.AdjustmentIndex),
		NeedsAdjustment:     c.NeedsAdjustment(time.Now().UTC()),
		Notes:               c.Notes,
		Adjustments:         adjustments,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func FromContracts(cs []entities.Contract) []ContractResponse {
	out := make([]ContractResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromContract(c))
	}
	return out
}

// SyncResponse reports the outcome of POST /contracts/sync-property-status.
type SyncResponse struct {
	ContractCount int  `json:"contract_count"`
	Seeded        bool `json:"seeded"`
	Created       int  `json:"created"`
}
