package entities

import "time"

// Tenant is a person (or company) renting or buying a property.
//
// Storage model (DynamoDB):
//   - PK: id
type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
