package datainput

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"livpulse/internal/common/models"
)

// dateLayouts are the accepted textual date and datetime formats.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// validate checks data against the category template. All fields are
// checked, in schema order, so the caller gets the complete error list in
// one pass rather than the first failure.
func validate(template Template, data map[string]interface{}) ValidationResult {
	var errs []string

	for _, f := range template.Fields {
		value, present := data[f.Name]
		empty := !present || value == nil || value == ""

		if f.Required && empty {
			errs = append(errs, fmt.Sprintf("%s is required", f.Label))
		}
		if empty {
			continue
		}

		switch f.Type {
		case models.FieldTypeNumber:
			if !isNumber(value) {
				errs = append(errs, fmt.Sprintf("%s must be a number", f.Label))
			}
		case models.FieldTypeDate:
			if !isDate(value) {
				errs = append(errs, fmt.Sprintf("%s must be a valid date", f.Label))
			}
		case models.FieldTypeDatetime:
			if !isDate(value) {
				errs = append(errs, fmt.Sprintf("%s must be a valid date/time", f.Label))
			}
		case models.FieldTypeSelect:
			if len(f.Options) > 0 && !containsString(f.Options, fmt.Sprint(value)) {
				errs = append(errs, fmt.Sprintf("%s must be one of: %s", f.Label, strings.Join(f.Options, ", ")))
			}
		}
	}

	if len(errs) > 0 {
		return ValidationResult{Valid: false, Message: "Validation failed", Errors: errs}
	}
	return ValidationResult{Valid: true, Message: "Data is valid"}
}

func isNumber(value interface{}) bool {
	switch v := value.(type) {
	case float64, float32, int, int32, int64:
		return true
	case string:
		_, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return err == nil
	}
	return false
}

func isDate(value interface{}) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
