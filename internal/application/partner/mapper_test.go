package partner

import (
	"testing"
	"time"

	"github.com/ceilingworks/erp/internal/domain/partner"
	"github.com/ceilingworks/erp/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestCustomer_ScalarRoundTrip(t *testing.T) {
	c := &partner.Customer{
		BaseEntity:      shared.BaseEntity{ID: 4},
		CustomerSummary: "ACME Offices",
		FullName:        ptr("ACME Ltd"),
		Email:           ptr("ops@acme.test"),
	}

	back := CustomerFromDTO(ToCustomerDTO(c))

	assert.Equal(t, c, back)
}

func TestToCustomerDTO_AbsentFieldsStayAbsent(t *testing.T) {
	dto := ToCustomerDTO(&partner.Customer{})

	assert.Equal(t, &CustomerDTO{}, dto)
}

func TestApplyEmployeePatch(t *testing.T) {
	hired := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	e := &partner.Employee{BaseEntity: shared.BaseEntity{ID: 3}, EmployeeName: "Alice", Position: ptr("Manager")}

	ApplyEmployeePatch(e, &EmployeeDTO{ID: ptr(int64(99)), HiredOn: &hired})

	assert.Equal(t, int64(3), e.ID, "patch never changes the id")
	assert.Equal(t, "Alice", e.EmployeeName)
	assert.Equal(t, ptr("Manager"), e.Position)
	assert.Equal(t, &hired, e.HiredOn)
}

func TestEmployee_ScalarRoundTrip(t *testing.T) {
	hired := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	e := &partner.Employee{BaseEntity: shared.BaseEntity{ID: 3}, EmployeeName: "Alice", HiredOn: &hired, Phone: ptr("+1 555 0100")}

	assert.Equal(t, e, EmployeeFromDTO(ToEmployeeDTO(e)))
}
