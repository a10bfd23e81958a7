package models

import (
	"github.com/ceilingworks/erp/internal/domain/facility"
)

// FacilityModel is the persistence model for the Facility domain entity.
type FacilityModel struct {
	BaseModel
	FacilityName string      `gorm:"type:varchar(200);not null"`
	Address      *string     `gorm:"type:varchar(500)"`
	Description  *string     `gorm:"type:text"`
	Zones        []ZoneModel `gorm:"foreignKey:FacilityID"`
}

// TableName returns the table name for GORM
func (FacilityModel) TableName() string {
	return "facilities"
}

// ToDomain converts the persistence model to a domain Facility entity.
// Zones are only present when preloaded.
func (m *FacilityModel) ToDomain() *facility.Facility {
	return &facility.Facility{
		BaseEntity:   m.BaseModel.ToDomain(),
		FacilityName: m.FacilityName,
		Address:      m.Address,
		Description:  m.Description,
		Zones:        toDomainSlice[facility.Zone](m.Zones),
	}
}

// FromDomain populates the persistence model from a domain Facility entity.
// Zones are stored through their own repository.
func (m *FacilityModel) FromDomain(f *facility.Facility) {
	m.FromDomainBaseEntity(f.BaseEntity)
	m.FacilityName = f.FacilityName
	m.Address = f.Address
	m.Description = f.Description
}

// ZoneModel is the persistence model for the Zone domain entity.
type ZoneModel struct {
	BaseModel
	ZoneName    string         `gorm:"type:varchar(200);not null"`
	Description *string        `gorm:"type:text"`
	FacilityID  *int64         `gorm:"index"`
	Facility    *FacilityModel `gorm:"foreignKey:FacilityID"`
}

// TableName returns the table name for GORM
func (ZoneModel) TableName() string {
	return "zones"
}

// ToDomain converts the persistence model to a domain Zone entity.
func (m *ZoneModel) ToDomain() *facility.Zone {
	return &facility.Zone{
		BaseEntity:  m.BaseModel.ToDomain(),
		ZoneName:    m.ZoneName,
		Description: m.Description,
		Facility:    toRef[facility.Facility](m.FacilityID, m.Facility),
	}
}

// FromDomain populates the persistence model from a domain Zone entity.
func (m *ZoneModel) FromDomain(z *facility.Zone) {
	m.FromDomainBaseEntity(z.BaseEntity)
	m.ZoneName = z.ZoneName
	m.Description = z.Description
	m.FacilityID = z.Facility.IDPtr()
}
