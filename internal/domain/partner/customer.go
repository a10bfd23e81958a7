package partner

import "github.com/ceilingworks/erp/internal/domain/shared"

// Customer is a person or company ordering ceiling work
type Customer struct {
	shared.BaseEntity
	CustomerSummary string
	FullName        *string
	Phone           *string
	Email           *string
	Address         *string
	Notes           *string
}

// Validate checks the customer's attribute constraints
func (c *Customer) Validate() error {
	return shared.FirstError(
		shared.RequireText("customerSummary", c.CustomerSummary, 200),
		shared.MaxLength("fullName", c.FullName, 200),
		shared.MaxLength("phone", c.Phone, 50),
		shared.MaxLength("email", c.Email, 200),
		shared.MaxLength("address", c.Address, 500),
	)
}
