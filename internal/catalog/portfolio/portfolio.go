package portfolio

import (
	"time"

	"github.com/champastudio/champa/pkg/i18n"
)

// Item represents one published piece of studio work.
type Item struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       i18n.Text  `json:"title"`
	Description i18n.Text  `json:"description"`
	Category    string     `json:"category"`
	ClientName  *string    `json:"client_name"`
	CoverURL    *string    `json:"cover_url"`
	Images      []string   `json:"images"`
	Tags        []string   `json:"tags"`
	Featured    bool       `json:"featured"`
	SortOrder   int        `json:"sort_order"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"` // soft-delete tracker
}

// View is an Item with its bilingual fields resolved for one display language.
type View struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	ClientName  *string    `json:"client_name"`
	CoverURL    *string    `json:"cover_url"`
	Images      []string   `json:"images"`
	Tags        []string   `json:"tags"`
	Featured    bool       `json:"featured"`
	PublishedAt *time.Time `json:"published_at"`
}

// Render resolves the item's bilingual fields for the given language.
func (item *Item) Render(lang i18n.Lang) *View {
	return &View{
		ID:          item.ID,
		Slug:        item.Slug,
		Title:       i18n.Resolve(item.Title, lang, ""),
		Description: i18n.Resolve(item.Description, lang, ""),
		Category:    item.Category,
		ClientName:  item.ClientName,
		CoverURL:    item.CoverURL,
		Images:      item.Images,
		Tags:        item.Tags,
		Featured:    item.Featured,
		PublishedAt: item.PublishedAt,
	}
}

// Canonical work categories.
const (
	CategoryLogo     = "logo"
	CategoryBranding = "branding"
	CategoryWeb      = "web"
	CategoryPrint    = "print"
)

// Categories returns the canonical category set in display order.
func Categories() []string {
	return []string{CategoryLogo, CategoryBranding, CategoryWeb, CategoryPrint}
}

// featuredLimit caps the homepage preview.
const featuredLimit = 3

// Global field names for validation
const (
	FieldSlug        = "slug"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldCoverURL    = "cover_url"
	FieldSortOrder   = "sort_order"
)
