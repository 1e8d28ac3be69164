package offering_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/champastudio/champa/internal/catalog/offering"
	"github.com/champastudio/champa/internal/platform/apperr"
	"github.com/champastudio/champa/pkg/filter"
	"github.com/champastudio/champa/pkg/i18n"
	"github.com/champastudio/champa/pkg/pointer"
)

type fakeRepository struct {
	offerings   []*offering.Offering
	packages    []*offering.Package
	createCalls int
}

func (f *fakeRepository) ListOfferings(_ context.Context, _ bool) ([]*offering.Offering, error) {
	return f.offerings, nil
}

func (f *fakeRepository) GetOffering(_ context.Context, slug string) (*offering.Offering, error) {
	for _, o := range f.offerings {
		if o.Slug == slug {
			return o, nil
		}
	}
	return nil, apperr.NotFound("Service")
}

func (f *fakeRepository) CreateOffering(_ context.Context, o *offering.Offering) error {
	f.createCalls++
	f.offerings = append(f.offerings, o)
	return nil
}

func (f *fakeRepository) UpdateOffering(_ context.Context, _ *offering.Offering) error { return nil }
func (f *fakeRepository) DeleteOffering(_ context.Context, _ string) error             { return nil }

func (f *fakeRepository) ListPackages(_ context.Context, _ bool) ([]*offering.Package, error) {
	return f.packages, nil
}

func (f *fakeRepository) CreatePackage(_ context.Context, pkg *offering.Package) error {
	f.createCalls++
	f.packages = append(f.packages, pkg)
	return nil
}

func (f *fakeRepository) UpdatePackage(_ context.Context, _ *offering.Package) error { return nil }
func (f *fakeRepository) DeletePackage(_ context.Context, _ string) error            { return nil }

func seededOfferings() []*offering.Offering {
	return []*offering.Offering{
		{
			ID:   "s1",
			Slug: "logo-design",
			Title: i18n.Text{
				i18n.LangEnglish: "Logo Design",
				i18n.LangLao:     "ອອກແບບໂລໂກ້",
			},
			Summary:      i18n.Text{i18n.LangEnglish: "Marks and identity"},
			PriceFromLAK: pointer.To(int64(2_000_000)),
			SortOrder:    2,
		},
		{
			ID:           "s2",
			Slug:         "web-design",
			Title:        i18n.Text{i18n.LangEnglish: "Web Design"},
			Summary:      i18n.Text{i18n.LangEnglish: "Sites and shops"},
			PriceFromLAK: pointer.To(int64(8_000_000)),
			SortOrder:    1,
		},
	}
}

func TestService_ListOfferings_SearchAndSort(t *testing.T) {
	repo := &fakeRepository{offerings: seededOfferings()}
	service := offering.NewService(repo, slog.Default())

	// Free text matches the Lao title too.
	found, err := service.ListOfferings(context.Background(), filter.Spec{Query: "ໂລໂກ້"}, i18n.LangLao)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "logo-design", found[0].Slug)

	// Price sort is numeric.
	sorted, err := service.ListOfferings(context.Background(), filter.Spec{
		SortBy: "price", SortOrder: filter.OrderDesc,
	}, i18n.LangEnglish)
	require.NoError(t, err)
	require.Len(t, sorted, 2)
	assert.Equal(t, "web-design", sorted[0].Slug)
}

func TestService_CreateOffering_RequiresEnglishTitle(t *testing.T) {
	repo := &fakeRepository{}
	service := offering.NewService(repo, slog.Default())

	err := service.CreateOffering(context.Background(), &offering.Offering{
		Title:   i18n.Text{i18n.LangLao: "ອອກແບບ"},
		Summary: i18n.Text{i18n.LangEnglish: "x"},
	})

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Zero(t, repo.createCalls)
}

func TestService_CreateOffering_DerivesSlug(t *testing.T) {
	repo := &fakeRepository{}
	service := offering.NewService(repo, slog.Default())

	created := &offering.Offering{
		Title:   i18n.Text{i18n.LangEnglish: "Print & Packaging"},
		Summary: i18n.Text{i18n.LangEnglish: "Boxes, labels, menus"},
	}
	require.NoError(t, service.CreateOffering(context.Background(), created))

	assert.Equal(t, "print-packaging", created.Slug)
	assert.Equal(t, 1, repo.createCalls)
}

func TestService_CreatePackage_RejectsNonPositivePrice(t *testing.T) {
	repo := &fakeRepository{}
	service := offering.NewService(repo, slog.Default())

	err := service.CreatePackage(context.Background(), &offering.Package{
		Title:    i18n.Text{i18n.LangEnglish: "Starter"},
		PriceLAK: 0,
	})

	require.Error(t, err)
	assert.Zero(t, repo.createCalls)
}

func TestService_ListPackages_KeepsStoredOrder(t *testing.T) {
	repo := &fakeRepository{packages: []*offering.Package{
		{ID: "p1", Slug: "starter", Title: i18n.Text{i18n.LangEnglish: "Starter"}, PriceLAK: 1},
		{ID: "p2", Slug: "studio", Title: i18n.Text{i18n.LangEnglish: "Studio"}, PriceLAK: 2},
	}}
	service := offering.NewService(repo, slog.Default())

	packages, err := service.ListPackages(context.Background(), i18n.LangEnglish)
	require.NoError(t, err)
	require.Len(t, packages, 2)
	assert.Equal(t, "starter", packages[0].Slug)
	assert.Equal(t, "studio", packages[1].Slug)
}
