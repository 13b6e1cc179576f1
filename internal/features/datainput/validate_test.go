package datainput

import (
	"reflect"
	"testing"
)

func TestValidate(t *testing.T) {
	template := categories["platform-kpis"]

	tests := []struct {
		name       string
		data       map[string]interface{}
		wantValid  bool
		wantErrors []string
	}{
		{
			name: "all missing required fields reported in one pass",
			data: map[string]interface{}{"platform": "Android"},
			wantErrors: []string{
				"Date is required",
				"Daily Active Users is required",
				"Retention Rate (%) is required",
			},
		},
		{
			name: "non numeric value",
			data: map[string]interface{}{
				"date":      "2025-01-15",
				"platform":  "Android",
				"dau":       "lots",
				"retention": 45.5,
			},
			wantErrors: []string{"Daily Active Users must be a number"},
		},
		{
			name: "invalid date",
			data: map[string]interface{}{
				"date":      "next tuesday",
				"platform":  "Android",
				"dau":       1200000,
				"retention": 45.5,
			},
			wantErrors: []string{"Date must be a valid date"},
		},
		{
			name: "option outside select list",
			data: map[string]interface{}{
				"date":      "2025-01-15",
				"platform":  "Windows",
				"dau":       1200000,
				"retention": 45.5,
			},
			wantErrors: []string{"Platform must be one of: Android, iOS, Web, TV"},
		},
		{
			name: "numeric strings accepted",
			data: map[string]interface{}{
				"date":      "2025-01-15",
				"platform":  "Web",
				"dau":       "1200000",
				"retention": "45.5",
			},
			wantValid: true,
		},
		{
			name: "optional fields may be absent",
			data: map[string]interface{}{
				"date":      "01/15/2025",
				"platform":  "iOS",
				"dau":       900000,
				"retention": 38.2,
			},
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validate(template, tt.data)
			if result.Valid != tt.wantValid {
				t.Fatalf("Valid = %v, want %v (errors: %v)", result.Valid, tt.wantValid, result.Errors)
			}
			if tt.wantValid {
				if result.Message != "Data is valid" {
					t.Errorf("Message = %q", result.Message)
				}
				return
			}
			if result.Message != "Validation failed" {
				t.Errorf("Message = %q", result.Message)
			}
			if !reflect.DeepEqual(result.Errors, tt.wantErrors) {
				t.Errorf("Errors = %v, want %v", result.Errors, tt.wantErrors)
			}
		})
	}
}
