package offering

import (
	"time"

	"github.com/champastudio/champa/pkg/i18n"
)

// Offering represents one studio service (logo design, branding, web, print).
type Offering struct {
	ID           string     `json:"id"`
	Slug         string     `json:"slug"`
	Title        i18n.Text  `json:"title"`
	Summary      i18n.Text  `json:"summary"`
	Description  i18n.Text  `json:"description"`
	Icon         *string    `json:"icon"`
	PriceFromLAK *int64     `json:"price_from_lak"`
	Active       bool       `json:"active"`
	SortOrder    int        `json:"sort_order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"-"`
}

// Package is a fixed-price bundle of services sold as one deal.
type Package struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       i18n.Text  `json:"title"`
	Description i18n.Text  `json:"description"`
	Features    []i18n.Text `json:"features"`
	PriceLAK    int64      `json:"price_lak"`
	Popular     bool       `json:"popular"`
	Active      bool       `json:"active"`
	SortOrder   int        `json:"sort_order"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`
}

// OfferingView is an Offering resolved for one display language.
type OfferingView struct {
	ID           string  `json:"id"`
	Slug         string  `json:"slug"`
	Title        string  `json:"title"`
	Summary      string  `json:"summary"`
	Description  string  `json:"description"`
	Icon         *string `json:"icon"`
	PriceFromLAK *int64  `json:"price_from_lak"`
}

// PackageView is a Package resolved for one display language.
type PackageView struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	PriceLAK    int64    `json:"price_lak"`
	Popular     bool     `json:"popular"`
}

// Render resolves the offering's bilingual fields.
func (o *Offering) Render(lang i18n.Lang) *OfferingView {
	return &OfferingView{
		ID:           o.ID,
		Slug:         o.Slug,
		Title:        i18n.Resolve(o.Title, lang, ""),
		Summary:      i18n.Resolve(o.Summary, lang, ""),
		Description:  i18n.Resolve(o.Description, lang, ""),
		Icon:         o.Icon,
		PriceFromLAK: o.PriceFromLAK,
	}
}

// Render resolves the package's bilingual fields.
func (p *Package) Render(lang i18n.Lang) *PackageView {
	features := make([]string, 0, len(p.Features))
	for _, feature := range p.Features {
		features = append(features, i18n.Resolve(feature, lang, ""))
	}

	return &PackageView{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       i18n.Resolve(p.Title, lang, ""),
		Description: i18n.Resolve(p.Description, lang, ""),
		Features:    features,
		PriceLAK:    p.PriceLAK,
		Popular:     p.Popular,
	}
}

// Global field names for validation
const (
	FieldTitle       = "title"
	FieldSummary     = "summary"
	FieldDescription = "description"
	FieldPrice       = "price_lak"
	FieldSortOrder   = "sort_order"
)
