package schema

// CatalogPackageTable represents the 'catalog.package' table
type CatalogPackageTable struct {
	Table       string
	ID          string
	Slug        string
	Title       string
	Description string
	Features    string
	PriceLAK    string
	Popular     string
	Active      string
	SortOrder   string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// CatalogPackage is the schema definition for catalog.package
var CatalogPackage = CatalogPackageTable{
	Table:       "catalog.package",
	ID:          "id",
	Slug:        "slug",
	Title:       "title",
	Description: "description",
	Features:    "features",
	PriceLAK:    "pricelak",
	Popular:     "popular",
	Active:      "active",
	SortOrder:   "sortorder",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	DeletedAt:   "deletedat",
}

// Columns returns all standard column names
func (t CatalogPackageTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Title, t.Description, t.Features, t.PriceLAK,
		t.Popular, t.Active, t.SortOrder,
		t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
