package datainput

import (
	"bytes"
	"encoding/json"
	"time"

	"livpulse/internal/common/models"
)

// TemplateField is one named field of a category schema. Field order is
// significant: validation errors are reported in schema order.
type TemplateField struct {
	Name string
	models.SchemaField
}

// Template describes a data category: its schema and which roles may
// submit to it.
type Template struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Fields      []TemplateField `json:"-"`
	Permissions []models.Role   `json:"permissions"`
}

// MarshalJSON renders the schema as an object keyed by field name,
// preserving field order.
func (t Template) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"name":`)
	name, _ := json.Marshal(t.Name)
	buf.Write(name)
	buf.WriteString(`,"description":`)
	desc, _ := json.Marshal(t.Description)
	buf.Write(desc)
	buf.WriteString(`,"schema":{`)
	for i, f := range t.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(f.Name)
		buf.Write(key)
		buf.WriteByte(':')
		field, err := json.Marshal(f.SchemaField)
		if err != nil {
			return nil, err
		}
		buf.Write(field)
	}
	buf.WriteString(`},"permissions":`)
	perms, err := json.Marshal(t.Permissions)
	if err != nil {
		return nil, err
	}
	buf.Write(perms)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Category is the listing form of a template.
type Category struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Permissions []models.Role `json:"permissions"`
}

// Submission is one submitted data record awaiting or past review.
type Submission struct {
	ID             string                   `json:"id" bson:"_id"`
	Category       string                   `json:"category" bson:"category"`
	Data           map[string]interface{}   `json:"data" bson:"data"`
	SubmittedBy    string                   `json:"submittedBy" bson:"submittedBy"`
	SubmittedAt    time.Time                `json:"submittedAt" bson:"submittedAt"`
	Status         models.SubmissionStatus  `json:"status" bson:"status"`
	Source         models.SubmissionSource  `json:"source" bson:"source"`
	ReviewedBy     string                   `json:"reviewedBy,omitempty" bson:"reviewedBy,omitempty"`
	ReviewedAt     *time.Time               `json:"reviewedAt,omitempty" bson:"reviewedAt,omitempty"`
	ReviewComments string                   `json:"reviewComments,omitempty" bson:"reviewComments,omitempty"`
}

// ValidationResult reports the outcome of validating or submitting data.
type ValidationResult struct {
	Valid         bool     `json:"valid"`
	Message       string   `json:"message"`
	Errors        []string `json:"errors,omitempty"`
	SubmissionID  string   `json:"submissionId,omitempty"`
	SubmissionIDs []string `json:"submissionIds,omitempty"`
}

// SubmissionPage is a paginated admin listing.
type SubmissionPage struct {
	Submissions []Submission `json:"submissions"`
	Total       int          `json:"total"`
}
