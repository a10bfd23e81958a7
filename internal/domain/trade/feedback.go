package trade

import (
	"time"

	"github.com/ceilingworks/erp/internal/domain/partner"
	"github.com/ceilingworks/erp/internal/domain/shared"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Feedback is a customer's rating of a finished order
type Feedback struct {
	shared.BaseEntity
	Rating      *int
	Comment     *string
	SubmittedOn *time.Time
	Order       shared.Ref[CustomerOrder]
	Customer    shared.Ref[partner.Customer]
}

// Validate checks the feedback's attribute constraints
func (f *Feedback) Validate() error {
	if f.Rating != nil && (*f.Rating < MinRating || *f.Rating > MaxRating) {
		return shared.Validation("rating must be between %d and %d", MinRating, MaxRating)
	}
	return shared.MaxLength("comment", f.Comment, 2000)
}
