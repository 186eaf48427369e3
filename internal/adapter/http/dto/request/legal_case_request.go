package request

import (
	"strings"
	"time"

	"gestao_imobiliaria/internal/domain/entities"
)

// LegalCaseRequest is the payload for POST /legal-cases and PUT /legal-cases/:id.
type LegalCaseRequest struct {
	CaseNumber    string     `json:"case_number" binding:"required"`
	ContractID    string     `json:"contract_id"`
	TenantID      string     `json:"tenant_id"`
	Type          string     `json:"type" binding:"required"`
	Status        string     `json:"status"`
	Court         string     `json:"court"`
	Notes         string     `json:"notes"`
	OpenedAt      time.Time  `json:"opened_at"`
	NextHearingAt *time.Time `json:"next_hearing_at"`
}

func (r LegalCaseRequest) ToEntity() entities.LegalCase {
	return entities.LegalCase{
		CaseNumber:    strings.TrimSpace(r.CaseNumber),
		ContractID:    strings.TrimSpace(r.ContractID),
		TenantID:      strings.TrimSpace(r.TenantID),
		Type:          entities.LegalCaseType(strings.TrimSpace(r.Type)),
		Status:        entities.LegalCaseStatus(strings.TrimSpace(r.Status)),
		Court:         strings.TrimSpace(r.Court),
		Notes:         r.Notes,
		OpenedAt:      r.OpenedAt,
		NextHearingAt: r.NextHearingAt,
	}
}

// LegalCaseStatusRequest is the payload for PATCH /legal-cases/:id/status.
type LegalCaseStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r LegalCaseStatusRequest) ResolveStatus() entities.LegalCaseStatus {
	return entities.LegalCaseStatus(strings.TrimSpace(r.Status))
}
