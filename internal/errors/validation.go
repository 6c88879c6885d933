package errors

import (
	"fmt"
	"slices"
	"strings"
)

// MetaFields is the metadata key under which Build stores per-field
// messages as a map[string][]string.
const MetaFields = "fields"

type fieldIssue struct {
	field   string
	message string
}

// ValidationBuilder collects field problems while a config or request is
// checked and turns them into a single InvalidArgument error. Issues are
// reported in the order they were added.
type ValidationBuilder struct {
	issues []fieldIssue
}

func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{}
}

func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.issues = append(vb.issues, fieldIssue{field: field, message: message})
	return vb
}

func (vb *ValidationBuilder) Fieldf(field, format string, args ...interface{}) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Field(field, "is invalid: "+reason)
}

// HasErrors reports whether anything has been flagged
func (vb *ValidationBuilder) HasErrors() bool {
	return len(vb.issues) > 0
}

// Build returns nil when nothing was flagged. The returned error is typed
// as error so a clean build never turns into a non-nil interface.
func (vb *ValidationBuilder) Build() error {
	if !vb.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(vb.issues))
	fields := make(map[string][]string, len(vb.issues))
	for _, issue := range vb.issues {
		parts = append(parts, issue.field+": "+issue.message)
		fields[issue.field] = append(fields[issue.field], issue.message)
	}
	return InvalidArgument("validation failed: "+strings.Join(parts, "; ")).
		WithMeta(MetaFields, fields)
}

// ValidateRequired flags blank strings
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange flags values outside [minValue, maxValue]
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	if !slices.Contains(allowed, value) {
		vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
	}
}
