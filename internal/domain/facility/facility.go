package facility

import "github.com/ceilingworks/erp/internal/domain/shared"

// Facility is a warehouse or workshop site. Zones are loaded only through
// the zone listing, never together with the facility itself.
type Facility struct {
	shared.BaseEntity
	FacilityName string
	Address      *string
	Description  *string
	Zones        []Zone
}

// Validate checks the facility's attribute constraints
func (f *Facility) Validate() error {
	return shared.FirstError(
		shared.RequireText("facilityName", f.FacilityName, 200),
		shared.MaxLength("address", f.Address, 500),
	)
}

// Zone is a storage area inside a facility
type Zone struct {
	shared.BaseEntity
	ZoneName    string
	Description *string
	Facility    shared.Ref[Facility]
}

// Validate checks the zone's attribute constraints
func (z *Zone) Validate() error {
	return shared.RequireText("zoneName", z.ZoneName, 200)
}
