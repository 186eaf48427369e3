package request

import (
	"testing"
	"time"

	"gestao_imobiliaria/internal/domain/entities"
)

func TestContractRequest_ResolveEndDate(t *testing.T) {
	start := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)

	r := ContractRequest{StartDate: start, DurationMonths: 30}
	if got := r.ResolveEndDate(); !got.Equal(start.AddDate(0, 30, 0)) {
		t.Fatalf("expected derived end date, got %v", got)
	}

	explicit := time.Date(2028, time.June, 1, 0, 0, 0, 0, time.UTC)
	r2 := ContractRequest{StartDate: start, DurationMonths: 30, EndDate: explicit}
	if got := r2.ResolveEndDate(); !got.Equal(explicit) {
		t.Fatalf("expected explicit end date, got %v", got)
	}

	r3 := ContractRequest{DurationMonths: 30}
	if got := r3.ResolveEndDate(); !got.IsZero() {
		t.Fatalf("expected zero end date, got %v", got)
	}
}

func TestContractRequest_ToEntity(t *testing.T) {
	r := ContractRequest{
		Code:       " CTR-1 ",
		TenantID:   " ten-1 ",
		PropertyID: " prop-1 ",
		Type:       " Rental ",
		Status:     " Active ",
		Amount:     2500,
		DueDay:     10,
	}
	c := r.ToEntity()
	if c.Code != "CTR-1" || c.TenantID != "ten-1" || c.PropertyID != "prop-1" {
		t.Fatalf("references not trimmed: %+v", c)
	}
	if c.Type != entities.ContractTypeRental || c.Status != entities.ContractStatusActive {
		t.Fatalf("enums not trimmed: %+v", c)
	}
}

func TestContractStatusRequest_ResolveStatus(t *testing.T) {
	r := ContractStatusRequest{Status: " Terminated "}
	if got := r.ResolveStatus(); got != entities.ContractStatusTerminated {
		t.Fatalf("expected Terminated, got %q", got)
	}
}
