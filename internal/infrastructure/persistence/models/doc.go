// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer free
// from ORM concerns.
//
// Each model stores a to-one relation as a nullable foreign key column next to
// an association pointer. The association is only filled by a preload and is
// never written: saving a model writes its own row and foreign keys only.
package models

// All returns one zero value of every model, in dependency order
func All() []any {
	return []any{
		&CustomerModel{},
		&EmployeeModel{},
		&FacilityModel{},
		&ZoneModel{},
		&MeasurementModel{},
		&MaterialModel{},
		&MaterialMeasurementModel{},
		&ServiceModel{},
		&AttachedImageModel{},
		&MaterialAvailabilityModel{},
		&ServiceAvailabilityModel{},
		&MaterialRequestModel{},
		&MaterialArrivalModel{},
		&CustomerOrderModel{},
		&OrderMaterialModel{},
		&OrderServiceModel{},
		&MaterialReserveModel{},
		&ServiceQuotaModel{},
		&FeedbackModel{},
	}
}
