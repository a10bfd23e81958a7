package persistence

import (
	"strings"

	"gorm.io/gorm/schema"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "ASC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "DESC" {
		return "DESC"
	}
	return "ASC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// columnSet lists the column names of a parsed model. Association fields
// have no column and are left out.
func columnSet(s *schema.Schema) map[string]bool {
	cols := make(map[string]bool, len(s.DBNames))
	for _, name := range s.DBNames {
		cols[name] = true
	}
	return cols
}

// columnName maps an attribute name as it appears on the wire ("facilityId",
// "orderSummary") or as a column ("facility_id") to its column name.
func columnName(ns schema.Namer, name string) string {
	return ns.ColumnName("", strings.TrimSpace(name))
}
