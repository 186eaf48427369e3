package entities

import "time"

// LegalCaseStatus represents the procedural state of a legal case.

type LegalCaseStatus string

const (
	LegalCaseStatusOpen       LegalCaseStatus = "Open"
	LegalCaseStatusInProgress LegalCaseStatus = "InProgress"
	LegalCaseStatusSuspended  LegalCaseStatus = "Suspended"
	LegalCaseStatusClosed     LegalCaseStatus = "Closed"
)

func (s LegalCaseStatus) Valid() bool {
	switch s {
	case LegalCaseStatusOpen, LegalCaseStatusInProgress,
		LegalCaseStatusSuspended, LegalCaseStatusClosed:
		return true
	}
	return false
}

type LegalCaseType string

const (
	LegalCaseTypeEviction   LegalCaseType = "Eviction"
	LegalCaseTypeCollection LegalCaseType = "Collection"
	LegalCaseTypeDamages    LegalCaseType = "Damages"
	LegalCaseTypeOther      LegalCaseType = "Other"
)

func (t LegalCaseType) Valid() bool {
	switch t {
	case LegalCaseTypeEviction, LegalCaseTypeCollection,
		LegalCaseTypeDamages, LegalCaseTypeOther:
		return true
	}
	return false
}

// LegalCase tracks a judicial/extrajudicial proceeding tied to a contract.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (contract_id-index): contract_id
type LegalCase struct {
	ID            string          `json:"id"`
	CaseNumber    string          `json:"case_number"`
	ContractID    string          `json:"contract_id"`
	TenantID      string          `json:"tenant_id"`
	Type          LegalCaseType   `json:"type"`
	Status        LegalCaseStatus `json:"status"`
	Court         string          `json:"court"`
	Notes         string          `json:"notes"`
	OpenedAt      time.Time       `json:"opened_at"`
	NextHearingAt *time.Time      `json:"next_hearing_at,omitempty"`
	ClosedAt      *time.Time      `json:"closed_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
