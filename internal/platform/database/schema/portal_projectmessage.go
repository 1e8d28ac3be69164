package schema

// ProjectMessageTable represents the 'portal.projectmessage' table
type ProjectMessageTable struct {
	Table     string
	ID        string
	ProjectID string
	AuthorID  string
	Body      string
	CreatedAt string
}

// ProjectMessage is the schema definition for portal.projectmessage
var ProjectMessage = ProjectMessageTable{
	Table:     "portal.projectmessage",
	ID:        "id",
	ProjectID: "projectid",
	AuthorID:  "authorid",
	Body:      "body",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t ProjectMessageTable) Columns() []string {
	return []string{t.ID, t.ProjectID, t.AuthorID, t.Body, t.CreatedAt}
}
