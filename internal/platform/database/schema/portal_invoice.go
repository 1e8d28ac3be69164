package schema

// InvoiceTable represents the 'portal.invoice' table
type InvoiceTable struct {
	Table     string
	ID        string
	Number    string
	ClientID  string
	ProjectID string
	AmountLAK string
	Status    string
	IssuedAt  string
	DueDate   string
	ViewedAt  string
	PaidAt    string
	Note      string
	CreatedAt string
	UpdatedAt string
	DeletedAt string
}

// Invoice is the schema definition for portal.invoice
var Invoice = InvoiceTable{
	Table:     "portal.invoice",
	ID:        "id",
	Number:    "number",
	ClientID:  "clientid",
	ProjectID: "projectid",
	AmountLAK: "amountlak",
	Status:    "status",
	IssuedAt:  "issuedat",
	DueDate:   "duedate",
	ViewedAt:  "viewedat",
	PaidAt:    "paidat",
	Note:      "note",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
	DeletedAt: "deletedat",
}

// Columns returns all standard column names
func (t InvoiceTable) Columns() []string {
	return []string{
		t.ID, t.Number, t.ClientID, t.ProjectID, t.AmountLAK, t.Status,
		t.IssuedAt, t.DueDate, t.ViewedAt, t.PaidAt, t.Note,
		t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
