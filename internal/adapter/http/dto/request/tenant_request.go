package request

import (
	"strings"

	"gestao_imobiliaria/internal/domain/entities"
)

// TenantRequest is the payload for POST /tenants and PUT /tenants/:id.
type TenantRequest struct {
	Name     string `json:"name" binding:"required"`
	Document string `json:"document" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func (r TenantRequest) ToEntity() entities.Tenant {
	return entities.Tenant{
		Name:     strings.TrimSpace(r.Name),
		Document: strings.TrimSpace(r.Document),
		Email:    strings.TrimSpace(r.Email),
		Phone:    strings.TrimSpace(r.Phone),
	}
}
