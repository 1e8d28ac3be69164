package schema

// OrderTable represents the 'portal.order' table
type OrderTable struct {
	Table          string
	ID             string
	ClientID       string
	ServiceID      string
	PackageID      string
	Name           string
	Email          string
	Phone          string
	Note           string
	Status         string
	IdempotencyKey string
	CreatedAt      string
	UpdatedAt      string
}

// Order is the schema definition for portal.order
var Order = OrderTable{
	Table:          "portal.order",
	ID:             "id",
	ClientID:       "clientid",
	ServiceID:      "serviceid",
	PackageID:      "packageid",
	Name:           "name",
	Email:          "email",
	Phone:          "phone",
	Note:           "note",
	Status:         "status",
	IdempotencyKey: "idempotencykey",
	CreatedAt:      "createdat",
	UpdatedAt:      "updatedat",
}

// Columns returns all standard column names
func (t OrderTable) Columns() []string {
	return []string{
		t.ID, t.ClientID, t.ServiceID, t.PackageID, t.Name, t.Email,
		t.Phone, t.Note, t.Status, t.IdempotencyKey,
		t.CreatedAt, t.UpdatedAt,
	}
}
