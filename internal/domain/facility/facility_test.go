package facility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFacility_Validate(t *testing.T) {
	assert.NoError(t, (&Facility{FacilityName: "North depot"}).Validate())
	assert.ErrorContains(t, (&Facility{}).Validate(), "facilityName is required")
}

func TestZone_Validate(t *testing.T) {
	assert.NoError(t, (&Zone{ZoneName: "A1"}).Validate())
	assert.ErrorContains(t, (&Zone{ZoneName: ""}).Validate(), "zoneName is required")
}
