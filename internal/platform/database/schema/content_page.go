package schema

// RefPageTable represents the 'content.page' table
type RefPageTable struct {
	Table     string
	ID        string
	Slug      string
	Title     string
	Summary   string
	Body      string
	Status    string
	CreatedBy string
	CreatedAt string
	UpdatedAt string
	DeletedAt string
}

// RefPage is the schema definition for content.page.
// Title, Summary, and Body are JSONB columns keyed by locale code.
var RefPage = RefPageTable{
	Table:     "content.page",
	ID:        "id",
	Slug:      "slug",
	Title:     "title",
	Summary:   "summary",
	Body:      "body",
	Status:    "status",
	CreatedBy: "createdby",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
	DeletedAt: "deletedat",
}

func (t RefPageTable) Columns() []string {
	return []string{t.ID, t.Slug, t.Title, t.Summary, t.Body, t.Status, t.CreatedBy, t.CreatedAt, t.UpdatedAt, t.DeletedAt}
}

// TranslatedColumns lists the JSONB columns holding locale-keyed values.
func (t RefPageTable) TranslatedColumns() []string {
	return []string{t.Title, t.Summary, t.Body}
}
