package shared

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// RequireText checks that a required text attribute is non-blank and at most max runes long
func RequireText(field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return Validation("%s is required", field)
	}
	return MaxLength(field, &value, max)
}

// MaxLength checks an optional text attribute's length
func MaxLength(field string, value *string, max int) error {
	if value != nil && utf8.RuneCountInString(*value) > max {
		return Validation("%s cannot exceed %d characters", field, max)
	}
	return nil
}

// NonNegative checks that an optional decimal is not below zero
func NonNegative(field string, value *decimal.Decimal) error {
	if value != nil && value.IsNegative() {
		return Validation("%s cannot be negative", field)
	}
	return nil
}

// Ordered checks that from is not after to when both are present
func Ordered(fromField string, from *time.Time, toField string, to *time.Time) error {
	if from != nil && to != nil && from.After(*to) {
		return Validation("%s cannot be after %s", fromField, toField)
	}
	return nil
}

// FirstError returns the first non-nil error
func FirstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// OneOf checks that an optional string-typed enum holds one of values
func OneOf[S ~string](field string, value *S, values []string) error {
	if value == nil {
		return nil
	}
	for _, v := range values {
		if string(*value) == v {
			return nil
		}
	}
	return Validation("%s must be one of %s", field, strings.Join(values, ", "))
}
