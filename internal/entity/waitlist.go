package entity

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// FieldType is the type of a custom signup form field.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeSelect   FieldType = "select"
)

// Valid reports whether the field type is one of the supported variants.
func (ft FieldType) Valid() bool {
	switch ft {
	case FieldTypeText, FieldTypeTextarea, FieldTypeSelect:
		return true
	}
	return false
}

// CustomField describes one field of a waitlist's signup form schema.
type CustomField struct {
	Key         string    `json:"key"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required"`
	Placeholder string    `json:"placeholder,omitempty"`
	Options     []string  `json:"options,omitempty"`
}

// CustomFields is an ordered custom field schema stored as a JSON column.
type CustomFields []CustomField

func (cf CustomFields) Value() (driver.Value, error) {
	if cf == nil {
		return "[]", nil
	}
	return json.Marshal(cf)
}

func (cf *CustomFields) Scan(src any) error {
	return scanJSON(src, cf)
}

// Validate checks the schema itself: non-blank keys, known types and
// options present on select fields.
func (cf CustomFields) Validate() error {
	seen := map[string]struct{}{}
	for _, f := range cf {
		key := strings.TrimSpace(f.Key)
		if key == "" {
			return fmt.Errorf("custom field with empty key")
		}
		if _, ok := seen[key]; ok {
			return fmt.Errorf("duplicate custom field key: %s", key)
		}
		seen[key] = struct{}{}
		if !f.Type.Valid() {
			return fmt.Errorf("custom field %s: unknown type %q", key, f.Type)
		}
		if f.Type == FieldTypeSelect && len(f.Options) == 0 {
			return fmt.Errorf("custom field %s: select field without options", key)
		}
	}
	return nil
}

// ValidateValues checks submitted values against the schema. Required fields
// must be present and non-blank after trimming. Unknown keys are dropped,
// known values are trimmed. Returns the cleaned value map or the label of
// the first violated field.
func (cf CustomFields) ValidateValues(values map[string]string) (map[string]string, string) {
	cleaned := make(map[string]string, len(cf))
	for _, f := range cf {
		v, ok := values[f.Key]
		v = strings.TrimSpace(v)
		if f.Required && (!ok || v == "") {
			return nil, f.Label
		}
		if ok && v != "" {
			cleaned[f.Key] = v
		}
	}
	return cleaned, ""
}

// AllowedOrigins is an ordered CORS pattern list stored as a JSON column.
type AllowedOrigins []string

func (ao AllowedOrigins) Value() (driver.Value, error) {
	if ao == nil {
		return "[]", nil
	}
	return json.Marshal(ao)
}

func (ao *AllowedOrigins) Scan(src any) error {
	return scanJSON(src, ao)
}

// Waitlist is a named signup collection with its own schema, branding and
// policy.
type Waitlist struct {
	Id                  int            `db:"id"`
	Name                string         `db:"name"`
	Slug                string         `db:"slug"`
	LogoUrl             sql.NullString `db:"logo_url"`
	PrimaryColor        sql.NullString `db:"primary_color"`
	DoubleOptIn         bool           `db:"double_opt_in"`
	RedirectUrl         sql.NullString `db:"redirect_url"`
	CustomFields        CustomFields   `db:"custom_fields"`
	NotifyOnSignup      bool           `db:"notify_on_signup"`
	NotifyEmail         sql.NullString `db:"notify_email"`
	WebhookUrl          sql.NullString `db:"webhook_url"`
	ConfirmationSubject sql.NullString `db:"confirmation_subject"`
	WelcomeSubject      sql.NullString `db:"welcome_subject"`
	AllowedOrigins      AllowedOrigins `db:"allowed_origins"`
	CreatedAt           time.Time      `db:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at"`
}

// WaitlistInsert carries the mutable waitlist attributes for create and
// update operations.
type WaitlistInsert struct {
	Name                string         `valid:"required"`
	Slug                string         `valid:"required"`
	LogoUrl             string
	PrimaryColor        string
	DoubleOptIn         bool
	RedirectUrl         string
	CustomFields        CustomFields
	NotifyOnSignup      bool
	NotifyEmail         string
	WebhookUrl          string
	ConfirmationSubject string
	WelcomeSubject      string
	AllowedOrigins      AllowedOrigins
}

func scanJSON(src any, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dst)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dst)
	}
	return fmt.Errorf("unsupported json column type %T", src)
}
