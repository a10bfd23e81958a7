package partner

import (
	"time"

	"github.com/ceilingworks/erp/internal/domain/shared"
)

// Employee is a member of staff: order manager, installer, or requester of materials
type Employee struct {
	shared.BaseEntity
	EmployeeName string
	Position     *string
	Phone        *string
	Email        *string
	HiredOn      *time.Time
}

// Validate checks the employee's attribute constraints
func (e *Employee) Validate() error {
	return shared.FirstError(
		shared.RequireText("employeeName", e.EmployeeName, 200),
		shared.MaxLength("position", e.Position, 100),
		shared.MaxLength("phone", e.Phone, 50),
		shared.MaxLength("email", e.Email, 200),
	)
}
