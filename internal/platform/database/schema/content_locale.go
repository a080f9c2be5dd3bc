package schema

// RefLocaleTable represents the 'content.locale' table
type RefLocaleTable struct {
	Table      string
	Code       string
	Name       string
	NativeName string
	Enabled    string
	CreatedAt  string
	UpdatedAt  string
}

// RefLocale is the schema definition for content.locale
var RefLocale = RefLocaleTable{
	Table:      "content.locale",
	Code:       "code",
	Name:       "name",
	NativeName: "nativename",
	Enabled:    "enabled",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}

func (t RefLocaleTable) Columns() []string {
	return []string{t.Code, t.Name, t.NativeName, t.Enabled, t.CreatedAt, t.UpdatedAt}
}
