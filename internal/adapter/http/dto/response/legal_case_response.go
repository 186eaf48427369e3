package response

import (
	"time"

	"gestao_imobiliaria/internal/domain/entities"
)

type LegalCaseResponse struct {
	ID            string     `json:"id"`
	CaseNumber    string     `json:"case_number"`
	ContractID    string     `json:"contract_id,omitempty"`
	TenantID      string     `json:"tenant_id,omitempty"`
	Type          string     `json:"type"`
	Status        string     `json:"status"`
	Court         string     `json:"court,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	OpenedAt      time.Time  `json:"opened_at"`
	NextHearingAt *time.Time `json:"next_hearing_at,omitempty"`
	ClosedAt      *time.Time `json:"closed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func FromLegalCase(lc entities.LegalCase) LegalCaseResponse {
	return LegalCaseResponse{
		ID:            lc.ID,
		CaseNumber:    lc.CaseNumber,
		ContractID:    lc.ContractID,
		TenantID:      lc.TenantID,
		Type:          string(lc.Type),
		Status:        string(lc.Status),
		Court:         lc.Court,
		Notes:         lc.Notes,
		OpenedAt:      lc.OpenedAt,
		NextHearingAt: lc.NextHearingAt,
		ClosedAt:      lc.ClosedAt,
		CreatedAt:     lc.CreatedAt,
		UpdatedAt:     lc.UpdatedAt,
	}
}

func FromLegalCases(lcs []entities.LegalCase) []LegalCaseResponse {
	out := make([]LegalCaseResponse, 0, len(lcs))
	for _, lc := range lcs {
		out = append(out, FromLegalCase(lc))
	}
	return out
}
