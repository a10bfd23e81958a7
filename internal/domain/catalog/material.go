package catalog

import (
	"github.com/ceilingworks/erp/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Material is a sellable ceiling material: panels, profiles, fixings.
type Material struct {
	shared.BaseEntity
	MaterialName string
	Description  *string
	UnitPrice    *decimal.Decimal
	Measurement  shared.Ref[Measurement]
	Images       []AttachedImage
	Measurements []MaterialMeasurement
}

// Validate checks the material's attribute constraints
func (m *Material) Validate() error {
	return shared.FirstError(
		shared.RequireText("materialName", m.MaterialName, 200),
		shared.NonNegative("unitPrice", m.UnitPrice),
	)
}

// Service is a sellable unit of work, e.g. installation per m²
type Service struct {
	shared.BaseEntity
	ServiceName string
	Description *string
	UnitPrice   *decimal.Decimal
	Measurement shared.Ref[Measurement]
}

// Validate checks the service's attribute constraints
func (s *Service) Validate() error {
	return shared.FirstError(
		shared.RequireText("serviceName", s.ServiceName, 200),
		shared.NonNegative("unitPrice", s.UnitPrice),
	)
}
