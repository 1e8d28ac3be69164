package schema

// ContactMessageTable represents the 'portal.contactmessage' table
type ContactMessageTable struct {
	Table     string
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	Lang      string
	Status    string
	CreatedAt string
}

// ContactMessage is the schema definition for portal.contactmessage
var ContactMessage = ContactMessageTable{
	Table:     "portal.contactmessage",
	ID:        "id",
	Name:      "name",
	Email:     "email",
	Subject:   "subject",
	Message:   "message",
	Lang:      "lang",
	Status:    "status",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t ContactMessageTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Email, t.Subject, t.Message, t.Lang,
		t.Status, t.CreatedAt,
	}
}
