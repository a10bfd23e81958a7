package facility

// FacilityDTO is the transfer object of a facility. Zones are served by
// the zone listing of the facility.
type FacilityDTO struct {
	ID           *int64  `json:"id,omitempty"`
	FacilityName *string `json:"facilityName,omitempty" binding:"omitempty,max=200"`
	Address      *string `json:"address,omitempty" binding:"omitempty,max=500"`
	Description  *string `json:"description,omitempty"`
}

// GetID returns the id, nil for a facility not yet stored
func (d *FacilityDTO) GetID() *int64 { return d.ID }

// SetID sets the id
func (d *FacilityDTO) SetID(id *int64) { d.ID = id }

// ZoneDTO is the transfer object of a zone
type ZoneDTO struct {
	ID                   *int64  `json:"id,omitempty"`
	ZoneName             *string `json:"zoneName,omitempty" binding:"omitempty,max=200"`
	Description          *string `json:"description,omitempty"`
	FacilityID           *int64  `json:"facilityId,omitempty"`
	FacilityFacilityName *string `json:"facilityFacilityName,omitempty"`
}

// GetID returns the id, nil for a zone not yet stored
func (d *ZoneDTO) GetID() *int64 { return d.ID }

// SetID sets the id
func (d *ZoneDTO) SetID(id *int64) { d.ID = id }
