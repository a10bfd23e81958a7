package partner

import (
	"errors"
	"strings"
	"testing"

	"github.com/ceilingworks/erp/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestCustomer_Validate(t *testing.T) {
	long := strings.Repeat("x", 201)

	tests := []struct {
		name     string
		customer Customer
		wantErr  string
	}{
		{"valid", Customer{CustomerSummary: "Smith residence"}, ""},
		{"blank summary", Customer{CustomerSummary: "  "}, "customerSummary is required"},
		{"summary too long", Customer{CustomerSummary: long}, "customerSummary cannot exceed 200 characters"},
		{"email too long", Customer{CustomerSummary: "A", Email: &long}, "email cannot exceed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.customer.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, shared.ErrValidation))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEmployee_Validate(t *testing.T) {
	assert.NoError(t, (&Employee{EmployeeName: "Alice"}).Validate())
	assert.ErrorContains(t, (&Employee{}).Validate(), "employeeName is required")
}
