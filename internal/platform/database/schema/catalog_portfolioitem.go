package schema

// PortfolioItemTable represents the 'catalog.portfolioitem' table
type PortfolioItemTable struct {
	Table       string
	ID          string
	Slug        string
	Title       string
	Description string
	Category    string
	ClientName  string
	CoverURL    string
	Images      string
	Tags        string
	Featured    string
	SortOrder   string
	PublishedAt string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// PortfolioItem is the schema definition for catalog.portfolioitem
var PortfolioItem = PortfolioItemTable{
	Table:       "catalog.portfolioitem",
	ID:          "id",
	Slug:        "slug",
	Title:       "title",
	Description: "description",
	Category:    "category",
	ClientName:  "clientname",
	CoverURL:    "coverurl",
	Images:      "images",
	Tags:        "tags",
	Featured:    "featured",
	SortOrder:   "sortorder",
	PublishedAt: "publishedat",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	DeletedAt:   "deletedat",
}

// Columns returns all standard column names
func (t PortfolioItemTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Title, t.Description, t.Category, t.ClientName,
		t.CoverURL, t.Images, t.Tags, t.Featured, t.SortOrder,
		t.PublishedAt, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
