package entities

import "time"

// ContractStatus represents the lifecycle of a tenancy/sale contract.
//
// Domain notes:
//   - Transitions are externally driven (manual edits, payment processing
//     outside this service); there is no automatic status engine beyond the
//     due-date and adjustment-window computations below.
//   - Every status change (and deletion) feeds the property status
//     reconciler.

type ContractStatus string

const (
	ContractStatusPending    ContractStatus = "Pending"
	ContractStatusActive     ContractStatus = "Active"
	ContractStatusOverdue    ContractStatus = "Overdue"
	ContractStatusTerminated ContractStatus = "Terminated"
	ContractStatusCompleted  ContractStatus = "Completed"
)

func (s ContractStatus) Valid() bool {
	switch s {
	case ContractStatusPending, ContractStatusActive, ContractStatusOverdue,
		ContractStatusTerminated, ContractStatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether the status no longer drives a property's
// non-available state.
func (s ContractStatus) Terminal() bool {
	switch s {
	case ContractStatusOverdue, ContractStatusTerminated, ContractStatusCompleted:
		return true
	}
	return false
}

type ContractType string

const (
	ContractTypeRental ContractType = "Rental"
	ContractTypeSale   ContractType = "Sale"
)

func (t ContractType) Valid() bool {
	return t == ContractTypeRental || t == ContractTypeSale
}

// AdjustmentIndex is the price-correction index applied on the contract's
// annual adjustment.

type AdjustmentIndex string

const (
	AdjustmentIndexIGPM  AdjustmentIndex = "IGPM"
	AdjustmentIndexIPCA  AdjustmentIndex = "IPCA"
	AdjustmentIndexINPC  AdjustmentIndex = "INPC"
	AdjustmentIndexFixed AdjustmentIndex = "Fixed"
	AdjustmentIndexOther AdjustmentIndex = "Other"
)

func (i AdjustmentIndex) Valid() bool {
	switch i {
	case AdjustmentIndexIGPM, AdjustmentIndexIPCA, AdjustmentIndexINPC,
		AdjustmentIndexFixed, AdjustmentIndexOther:
		return true
	}
	return false
}

// Adjustment is one entry of the contract's ordered adjustment history.
type Adjustment struct {
	Date          time.Time `json:"date"`
	Kind          string    `json:"kind"`
	PreviousValue float64   `json:"previous_value"`
	NewValue      float64   `json:"new_value"`
	Reason        string    `json:"reason"`
}

// Contract is a tenancy or sale contract persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (code-index): code — business code, unique by convention
//   - GSI2 (property_id-index): property_id
type Contract struct {
	ID                  string          `json:"id"`
	Code                string          `json:"code"`
	TenantID            string          `json:"tenant_id"`
	PropertyID          string          `json:"property_id"`
	Type                ContractType    `json:"type"`
	Status              ContractStatus  `json:"status"`
	StartDate           time.Time       `json:"start_date"`
	EndDate             time.Time       `json:"end_date"`
	DurationMonths      int             `json:"duration_months"`
	Amount              float64         `json:"amount"`
	DueDay              int             `json:"due_day"`
	NextDueDate         time.Time       `json:"next_due_date"`
	LastAdjustmentAt    time.Time       `json:"last_adjustment_at"`
	AnnualAdjustmentPct float64         `json:"annual_adjustment_pct"`
	AdjustmentIndex     AdjustmentIndex `json:"adjustment_index"`
	Notes               string          `json:"notes"`
	Adjustments         []Adjustment    `json:"adjustments,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// NextDueDateFrom computes the next due date for a due day-of-month relative
// to ref: the due day in ref's month, or the following month when the day has
// already passed. Days beyond the target month's length clamp to its last day.
func NextDueDateFrom(dueDay int, ref time.Time) time.Time {
	ref = ref.UTC()
	year, month := ref.Year(), ref.Month()
	if ref.Day() >= dueDay {
		month++
	}
	due := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := due.AddDate(0, 1, -1).Day()
	day := dueDay
	if day > last {
		day = last
	}
	return time.Date(due.Year(), due.Month(), day, 0, 0, 0, 0, time.UTC)
}

// NeedsAdjustment reports whether at least one year has elapsed since the
// last adjustment (or since the start date when never adjusted).
func (c Contract) NeedsAdjustment(now time.Time) bool {
	base := c.LastAdjustmentAt
	if base.IsZero() {
		base = c.StartDate
	}
	if base.IsZero() {
		return false
	}
	return !now.Before(base.AddDate(1, 0, 0))
}
