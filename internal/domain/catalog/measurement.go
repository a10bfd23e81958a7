package catalog

import (
	"github.com/ceilingworks/erp/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Measurement is a unit or dimension, e.g. "m²" or "panel thickness"
type Measurement struct {
	shared.BaseEntity
	MeasurementName string
	Description     *string
}

// Validate checks the measurement's attribute constraints
func (m *Measurement) Validate() error {
	return shared.RequireText("measurementName", m.MeasurementName, 100)
}

// MaterialMeasurement records one measured value of a material
type MaterialMeasurement struct {
	shared.BaseEntity
	Value       *decimal.Decimal
	Notes       *string
	Material    shared.Ref[Material]
	Measurement shared.Ref[Measurement]
}

// Validate checks the material measurement's attribute constraints
func (m *MaterialMeasurement) Validate() error {
	if !m.Material.IsSet() {
		return shared.Validation("material is required")
	}
	return nil
}
