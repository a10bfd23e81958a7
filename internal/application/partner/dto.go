package partner

import "time"

// =============================================================================
// Customer DTOs
// =============================================================================

// CustomerDTO is the transfer object of a customer
type CustomerDTO struct {
	ID              *int64  `json:"id,omitempty"`
	CustomerSummary *string `json:"customerSummary,omitempty" binding:"omitempty,max=200"`
	FullName        *string `json:"fullName,omitempty" binding:"omitempty,max=200"`
	Phone           *string `json:"phone,omitempty" binding:"omitempty,max=50"`
	Email           *string `json:"email,omitempty" binding:"omitempty,email,max=200"`
	Address         *string `json:"address,omitempty" binding:"omitempty,max=500"`
	Notes           *string `json:"notes,omitempty"`
}

// GetID returns the id, nil for a customer not yet stored
func (d *CustomerDTO) GetID() *int64 { return d.ID }

// SetID sets the id
func (d *CustomerDTO) SetID(id *int64) { d.ID = id }

// =============================================================================
// Employee DTOs
// =============================================================================

// EmployeeDTO is the transfer object of an employee
type EmployeeDTO struct {
	ID           *int64     `json:"id,omitempty"`
	EmployeeName *string    `json:"employeeName,omitempty" binding:"omitempty,max=200"`
	Position     *string    `json:"position,omitempty" binding:"omitempty,max=100"`
	Phone        *string    `json:"phone,omitempty" binding:"omitempty,max=50"`
	Email        *string    `json:"email,omitempty" binding:"omitempty,email,max=200"`
	HiredOn      *time.Time `json:"hiredOn,omitempty"`
}

// GetID returns the id, nil for an employee not yet stored
func (d *EmployeeDTO) GetID() *int64 { return d.ID }

// SetID sets the id
func (d *EmployeeDTO) SetID(id *int64) { d.ID = id }
