package partner

import (
	"github.com/ceilingworks/erp/internal/application/crud"
	"github.com/ceilingworks/erp/internal/domain/partner"
	"github.com/ceilingworks/erp/internal/domain/shared"
)

// CustomerProjection converts customers to and from CustomerDTO
var CustomerProjection = crud.Projection[partner.Customer, CustomerDTO]{
	ToDTO:    ToCustomerDTO,
	ToEntity: CustomerFromDTO,
	Patch:    ApplyCustomerPatch,
}

// EmployeeProjection converts employees to and from EmployeeDTO
var EmployeeProjection = crud.Projection[partner.Employee, EmployeeDTO]{
	ToDTO:    ToEmployeeDTO,
	ToEntity: EmployeeFromDTO,
	Patch:    ApplyEmployeePatch,
}

// ToCustomerDTO converts a customer to its transfer object
func ToCustomerDTO(c *partner.Customer) *CustomerDTO {
	if c == nil {
		return nil
	}
	return &CustomerDTO{
		ID:              shared.IDPtr(c.ID),
		CustomerSummary: shared.StringPtr(c.CustomerSummary),
		FullName:        shared.Copy(c.FullName),
		Phone:           shared.Copy(c.Phone),
		Email:           shared.Copy(c.Email),
		Address:         shared.Copy(c.Address),
		Notes:           shared.Copy(c.Notes),
	}
}

// CustomerFromDTO converts a transfer object to a customer
func CustomerFromDTO(d *CustomerDTO) *partner.Customer {
	if d == nil {
		return nil
	}
	return &partner.Customer{
		BaseEntity:      shared.BaseEntity{ID: shared.IDValue(d.ID)},
		CustomerSummary: shared.StringValue(d.CustomerSummary),
		FullName:        shared.Copy(d.FullName),
		Phone:           shared.Copy(d.Phone),
		Email:           shared.Copy(d.Email),
		Address:         shared.Copy(d.Address),
		Notes:           shared.Copy(d.Notes),
	}
}

// ApplyCustomerPatch copies the fields present in d onto c
func ApplyCustomerPatch(c *partner.Customer, d *CustomerDTO) {
	shared.PatchValue(&c.CustomerSummary, d.CustomerSummary)
	shared.PatchPtr(&c.FullName, d.FullName)
	shared.PatchPtr(&c.Phone, d.Phone)
	shared.PatchPtr(&c.Email, d.Email)
	shared.PatchPtr(&c.Address, d.Address)
	shared.PatchPtr(&c.Notes, d.Notes)
}

// ToEmployeeDTO converts an employee to its transfer object
func ToEmployeeDTO(e *partner.Employee) *EmployeeDTO {
	if e == nil {
		return nil
	}
	return &EmployeeDTO{
		ID:           shared.IDPtr(e.ID),
		EmployeeName: shared.StringPtr(e.EmployeeName),
		Position:     shared.Copy(e.Position),
		Phone:        shared.Copy(e.Phone),
		Email:        shared.Copy(e.Email),
		HiredOn:      shared.Copy(e.HiredOn),
	}
}

// EmployeeFromDTO converts a transfer object to an employee
func EmployeeFromDTO(d *EmployeeDTO) *partner.Employee {
	if d == nil {
		return nil
	}
	return &partner.Employee{
		BaseEntity:   shared.BaseEntity{ID: shared.IDValue(d.ID)},
		EmployeeName: shared.StringValue(d.EmployeeName),
		Position:     shared.Copy(d.Position),
		Phone:        shared.Copy(d.Phone),
		Email:        shared.Copy(d.Email),
		HiredOn:      shared.Copy(d.HiredOn),
	}
}

// ApplyEmployeePatch copies the fields present in d onto e
func ApplyEmployeePatch(e *partner.Employee, d *EmployeeDTO) {
	shared.PatchValue(&e.EmployeeName, d.EmployeeName)
	shared.PatchPtr(&e.Position, d.Position)
	shared.PatchPtr(&e.Phone, d.Phone)
	shared.PatchPtr(&e.Email, d.Email)
	shared.PatchPtr(&e.HiredOn, d.HiredOn)
}
