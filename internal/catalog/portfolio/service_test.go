package portfolio_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/champastudio/champa/internal/catalog/portfolio"
	"github.com/champastudio/champa/pkg/filter"
	"github.com/champastudio/champa/pkg/i18n"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	items       []*portfolio.Item
	createCalls int
}

func (f *fakeRepository) ListPublished(_ context.Context) ([]*portfolio.Item, error) {
	var published []*portfolio.Item
	for _, item := range f.items {
		if item.PublishedAt != nil {
			published = append(published, item)
		}
	}
	return published, nil
}

func (f *fakeRepository) ListAll(_ context.Context) ([]*portfolio.Item, error) {
	return f.items, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*portfolio.Item, error) {
	for _, item := range f.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, assert.AnError
}

func (f *fakeRepository) GetBySlug(_ context.Context, slug string) (*portfolio.Item, error) {
	for _, item := range f.items {
		if item.Slug == slug {
			return item, nil
		}
	}
	return nil, assert.AnError
}

func (f *fakeRepository) Create(_ context.Context, item *portfolio.Item) error {
	f.createCalls++
	f.items = append(f.items, item)
	return nil
}

func (f *fakeRepository) Update(_ context.Context, _ *portfolio.Item) error { return nil }
func (f *fakeRepository) Delete(_ context.Context, _ string) error         { return nil }

func publishedItem(id, category string, titleEN string, featured bool, publishedAt time.Time) *portfolio.Item {
	return &portfolio.Item{
		ID:          id,
		Slug:        id,
		Title:       i18n.Text{"en": titleEN},
		Description: i18n.Text{"en": "d"},
		Category:    category,
		Featured:    featured,
		PublishedAt: &publishedAt,
	}
}

func testService(repo portfolio.Repository) *portfolio.Service {
	return portfolio.NewService(repo, slog.Default())
}

/*
TestService_FeaturedItems caps the homepage preview at three items and
preserves the stored order.
*/
func TestService_FeaturedItems(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepository{items: []*portfolio.Item{
		publishedItem("a", portfolio.CategoryLogo, "Alpha", true, base),
		publishedItem("b", portfolio.CategoryWeb, "Beta", false, base),
		publishedItem("c", portfolio.CategoryPrint, "Gamma", true, base),
		publishedItem("d", portfolio.CategoryWeb, "Delta", true, base),
		publishedItem("e", portfolio.CategoryLogo, "Epsilon", true, base),
	}}

	featured, err := testService(repo).FeaturedItems(context.Background())
	require.NoError(t, err)

	require.Len(t, featured, 3)
	assert.Equal(t, "a", featured[0].ID)
	assert.Equal(t, "c", featured[1].ID)
	assert.Equal(t, "d", featured[2].ID)
}

/*
TestService_ListItems_FilterThenSort narrows by category, matches the query
against every language variant and tags, and sorts last.
*/
func TestService_ListItems_FilterThenSort(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	coffee := publishedItem("w1", portfolio.CategoryWeb, "Cafe Website", false, base)
	coffee.Tags = []string{"coffee", "hospitality"}
	shop := publishedItem("w2", portfolio.CategoryWeb, "Shop Redesign", false, base.Add(24*time.Hour))
	logo := publishedItem("l1", portfolio.CategoryLogo, "Coffee Brand Mark", false, base)

	repo := &fakeRepository{items: []*portfolio.Item{coffee, shop, logo}}
	service := testService(repo)

	// Category + query: the tag match keeps w1, the title match is excluded
	// by category.
	result, err := service.ListItems(context.Background(), filter.Spec{
		Category: portfolio.CategoryWeb,
		Query:    "coffee",
	}, i18n.LangEnglish)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "w1", result[0].ID)

	// Sort by date descending across the whole category.
	result, err = service.ListItems(context.Background(), filter.Spec{
		Category:  portfolio.CategoryWeb,
		SortBy:    "date",
		SortOrder: filter.OrderDesc,
	}, i18n.LangEnglish)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "w2", result[0].ID)
}

/*
TestService_CreateItem_ValidationBlocksStore proves a failing form performs
zero collaborator calls.
*/
func TestService_CreateItem_ValidationBlocksStore(t *testing.T) {
	repo := &fakeRepository{}
	service := testService(repo)

	// Missing the default-language title entry.
	err := service.CreateItem(context.Background(), &portfolio.Item{
		Title:       i18n.Text{"lo": "ໂລໂກ້"},
		Description: i18n.Text{"en": "d"},
		Category:    portfolio.CategoryLogo,
	})

	require.Error(t, err)
	assert.Zero(t, repo.createCalls)
}

/*
TestService_CreateItem_SlugFromEnglishTitle derives the slug from the
default-language title when none is provided.
*/
func TestService_CreateItem_SlugFromEnglishTitle(t *testing.T) {
	repo := &fakeRepository{}
	service := testService(repo)

	item := &portfolio.Item{
		Title:       i18n.Text{"en": "Mekong Riverside Café"},
		Description: i18n.Text{"en": "d"},
		Category:    portfolio.CategoryBranding,
	}

	require.NoError(t, service.CreateItem(context.Background(), item))
	assert.Equal(t, "mekong-riverside-cafe", item.Slug)
	assert.Equal(t, 1, repo.createCalls)
}
