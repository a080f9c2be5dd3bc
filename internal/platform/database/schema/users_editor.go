package schema

// RefEditorTable represents the 'users.editor' table
type RefEditorTable struct {
	Table        string
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         string
	Active       string
	CreatedAt    string
	UpdatedAt    string
}

// RefEditor is the schema definition for users.editor
var RefEditor = RefEditorTable{
	Table:        "users.editor",
	ID:           "id",
	Username:     "username",
	Email:        "email",
	PasswordHash: "passwordhash",
	Role:         "role",
	Active:       "active",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

func (t RefEditorTable) Columns() []string {
	return []string{t.ID, t.Username, t.Email, t.PasswordHash, t.Role, t.Active, t.CreatedAt, t.UpdatedAt}
}
