package schema

// ProjectTable represents the 'portal.project' table
type ProjectTable struct {
	Table       string
	ID          string
	ClientID    string
	Title       string
	Description string
	Status      string
	StartDate   string
	DueDate     string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// Project is the schema definition for portal.project
var Project = ProjectTable{
	Table:       "portal.project",
	ID:          "id",
	ClientID:    "clientid",
	Title:       "title",
	Description: "description",
	Status:      "status",
	StartDate:   "startdate",
	DueDate:     "duedate",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	DeletedAt:   "deletedat",
}

// Columns returns all standard column names
func (t ProjectTable) Columns() []string {
	return []string{
		t.ID, t.ClientID, t.Title, t.Description, t.Status,
		t.StartDate, t.DueDate, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
