package response

import (
	"time"

	"gestao_imobiliaria/internal/domain/entities"
)

type TenantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromTenant(t entities.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Document:  t.Document,
		Email:     t.Email,
		Phone:     t.Phone,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func FromTenants(ts []entities.Tenant) []TenantResponse {
	out := make([]TenantResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTenant(t))
	}
	return out
}
