package models

import (
	"time"

	"github.com/ceilingworks/erp/internal/domain/partner"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	BaseModel
	CustomerSummary string  `gorm:"type:varchar(200);not null"`
	FullName        *string `gorm:"type:varchar(200)"`
	Phone           *string `gorm:"type:varchar(50)"`
	Email           *string `gorm:"type:varchar(200)"`
	Address         *string `gorm:"type:varchar(500)"`
	Notes           *string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		BaseEntity:      m.BaseModel.ToDomain(),
		CustomerSummary: m.CustomerSummary,
		FullName:        m.FullName,
		Phone:           m.Phone,
		Email:           m.Email,
		Address:         m.Address,
		Notes:           m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.CustomerSummary = c.CustomerSummary
	m.FullName = c.FullName
	m.Phone = c.Phone
	m.Email = c.Email
	m.Address = c.Address
	m.Notes = c.Notes
}

// EmployeeModel is the persistence model for the Employee domain entity.
type EmployeeModel struct {
	BaseModel
	EmployeeName string  `gorm:"type:varchar(200);not null"`
	Position     *string `gorm:"type:varchar(100)"`
	Phone        *string `gorm:"type:varchar(50)"`
	Email        *string `gorm:"type:varchar(200)"`
	HiredOn      *time.Time
}

// TableName returns the table name for GORM
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToDomain converts the persistence model to a domain Employee entity.
func (m *EmployeeModel) ToDomain() *partner.Employee {
	return &partner.Employee{
		BaseEntity:   m.BaseModel.ToDomain(),
		EmployeeName: m.EmployeeName,
		Position:     m.Position,
		Phone:        m.Phone,
		Email:        m.Email,
		HiredOn:      m.HiredOn,
	}
}

// FromDomain populates the persistence model from a domain Employee entity.
func (m *EmployeeModel) FromDomain(e *partner.Employee) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.EmployeeName = e.EmployeeName
	m.Position = e.Position
	m.Phone = e.Phone
	m.Email = e.Email
	m.HiredOn = e.HiredOn
}
