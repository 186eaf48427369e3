package request

import (
	"strings"
	"time"

	"gestao_imobiliaria/internal/domain/entities"
)

// ContractRequest is the payload for POST /contracts and PUT /contracts/:id.
type ContractRequest struct {
	Code                string    `json:"code" binding:"required"`
	TenantID            string    `json:"tenant_id" binding:"required"`
	PropertyID          string    `json:"property_id" binding:"required"`
	Type                string    `json:"type" binding:"required"`
	Status              string    `json:"status"`
	StartDate           time.Time `json:"start_date"`
	EndDate             time.Time `json:"end_date"`
	DurationMonths      int       `json:"duration_months"`
	Amount              float64   `json:"amount" binding:"required"`
	DueDay              int       `json:"due_day" binding:"required"`
	AnnualAdjustmentPct float64   `json:"annual_adjustment_pct"`
	AdjustmentIndex     string    `json:"adjustment_index"`
	Notes               string    `json:"notes"`
}

// ResolveEndDate returns the explicit end date, or one derived from the start
// date plus the duration when the end date is omitted.
func (r ContractRequest) ResolveEndDate() time.Time {
	if !r.EndDate.IsZero() {
		return r.EndDate
	}
	if !r.StartDate.IsZero() && r.DurationMonths > 0 {
		return r.StartDate.AddDate(0, r.DurationMonths, 0)
	}
	return time.Time{}
}

func (r ContractRequest) ToEntity() entities.Contract {
	return entities.Contract{
		Code:                strings.TrimSpace(r.Code),
		TenantID:            strings.TrimSpace(r.TenantID),
		PropertyID:          strings.TrimSpace(r.PropertyID),
		Type:                entities.ContractType(strings.TrimSpace(r.Type)),
		Status:              entities.ContractStatus(strings.TrimSpace(r.Status)),
		StartDate:           r.StartDate,
		EndDate:             r.ResolveEndDate(),
		DurationMonths:      r.DurationMonths,
		Amount:              r.Amount,
		DueDay:              r.DueDay,
		AnnualAdjustmentPct: r.AnnualAdjustmentPct,
		AdjustmentIndex:     entities.AdjustmentIndex(strings.TrimSpace(r.AdjustmentIndex)),
		Notes:               r.Notes,
	}
}

// ContractStatusRequest is the payload for PATCH /contracts/:id/status.
type ContractStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r ContractStatusRequest) ResolveStatus() entities.ContractStatus {
	return entities.ContractStatus(strings.TrimSpace(r.Status))
}

// AdjustmentRequest is the payload for POST /contracts/:id/adjustments.
type AdjustmentRequest struct {
	Kind     string  `json:"kind"`
	NewValue float64 `json:"new_value" binding:"required"`
	Reason   string  `json:"reason"`
}
