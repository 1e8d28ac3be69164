package schema

// ProjectFileTable represents the 'portal.projectfile' table
type ProjectFileTable struct {
	Table       string
	ID          string
	ProjectID   string
	UploaderID  string
	FileName    string
	ObjectKey   string
	ContentType string
	SizeBytes   string
	CreatedAt   string
}

// ProjectFile is the schema definition for portal.projectfile
var ProjectFile = ProjectFileTable{
	Table:       "portal.projectfile",
	ID:          "id",
	ProjectID:   "projectid",
	UploaderID:  "uploaderid",
	FileName:    "filename",
	ObjectKey:   "objectkey",
	ContentType: "contenttype",
	SizeBytes:   "sizebytes",
	CreatedAt:   "createdat",
}

// Columns returns all standard column names
func (t ProjectFileTable) Columns() []string {
	return []string{
		t.ID, t.ProjectID, t.UploaderID, t.FileName, t.ObjectKey,
		t.ContentType, t.SizeBytes, t.CreatedAt,
	}
}
