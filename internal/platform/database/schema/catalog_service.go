package schema

// CatalogServiceTable represents the 'catalog.service' table
type CatalogServiceTable struct {
	Table        string
	ID           string
	Slug         string
	Title        string
	Summary      string
	Description  string
	Icon         string
	PriceFromLAK string
	Active       string
	SortOrder    string
	CreatedAt    string
	UpdatedAt    string
	DeletedAt    string
}

// CatalogService is the schema definition for catalog.service
var CatalogService = CatalogServiceTable{
	Table:        "catalog.service",
	ID:           "id",
	Slug:         "slug",
	Title:        "title",
	Summary:      "summary",
	Description:  "description",
	Icon:         "icon",
	PriceFromLAK: "pricefromlak",
	Active:       "active",
	SortOrder:    "sortorder",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
	DeletedAt:    "deletedat",
}

// Columns returns all standard column names
func (t CatalogServiceTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Title, t.Summary, t.Description, t.Icon,
		t.PriceFromLAK, t.Active, t.SortOrder,
		t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
