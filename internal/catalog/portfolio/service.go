package portfolio

import (
	"context"
	"log/slog"
	"time"

	"github.com/champastudio/champa/internal/platform/validate"
	"github.com/champastudio/champa/pkg/filter"
	"github.com/champastudio/champa/pkg/i18n"
	"github.com/champastudio/champa/pkg/slug"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// adapterFor teaches the filter engine how to read portfolio items in the
// given display language. Search covers every language variant so a Lao
// query matches even when the UI is showing English.
func adapterFor(lang i18n.Lang) filter.Adapter[*Item] {
	return filter.Adapter[*Item]{
		Category: func(item *Item) string { return item.Category },
		Search: func(item *Item) []string {
			fields := make([]string, 0, 8)
			for _, value := range item.Title {
				fields = append(fields, value)
			}
			for _, value := range item.Description {
				fields = append(fields, value)
			}
			if item.ClientName != nil {
				fields = append(fields, *item.ClientName)
			}
			fields = append(fields, item.Tags...)
			return fields
		},
		Sort: map[string]filter.Key[*Item]{
			"date": {Number: func(item *Item) float64 {
				if item.PublishedAt == nil {
					return 0
				}
				return float64(item.PublishedAt.Unix())
			}},
			"title": {Text: func(item *Item) string {
				return i18n.Resolve(item.Title, lang, "")
			}},
			"order": {Number: func(item *Item) float64 {
				return float64(item.SortOrder)
			}},
		},
		Locale: lang.Tag(),
	}
}

// ListItems returns the published items narrowed and ordered by spec.
// Filtering runs in-process so every listing surface shares one engine.
func (service *Service) ListItems(context context.Context, spec filter.Spec, lang i18n.Lang) ([]*Item, error) {
	items, err := service.repo.ListPublished(context)
	if err != nil {
		return nil, err
	}

	return filter.Apply(items, spec, adapterFor(lang)), nil
}

// FeaturedItems returns the homepage preview: at most three featured items
// in their stored order.
func (service *Service) FeaturedItems(context context.Context) ([]*Item, error) {
	items, err := service.repo.ListPublished(context)
	if err != nil {
		return nil, err
	}

	featured := make([]*Item, 0, featuredLimit)
	for _, item := range items {
		if !item.Featured {
			continue
		}
		featured = append(featured, item)
		if len(featured) == featuredLimit {
			break
		}
	}

	return featured, nil
}

// GetItem resolves an item by slug for the public detail page.
func (service *Service) GetItem(context context.Context, itemSlug string) (*Item, error) {
	return service.repo.GetBySlug(context, itemSlug)
}

// ListAll returns every item including unpublished drafts (admin view).
func (service *Service) ListAll(context context.Context, spec filter.Spec, lang i18n.Lang) ([]*Item, error) {
	items, err := service.repo.ListAll(context)
	if err != nil {
		return nil, err
	}

	return filter.Apply(items, spec, adapterFor(lang)), nil
}

func (service *Service) CreateItem(context context.Context, item *Item) error {
	validator := &validate.Validator{}

	validator.
		Localized(FieldTitle, item.Title).
		Localized(FieldDescription, item.Description).
		OneOf(FieldCategory, item.Category, Categories()...)

	if item.CoverURL != nil {
		validator.URL(FieldCoverURL, *item.CoverURL)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if item.Slug == "" {
		item.Slug = slug.From(item.Title.Get(i18n.DefaultLang))
	}

	if err := service.repo.Create(context, item); err != nil {
		return err
	}

	service.logger.Info("portfolio_item_created",
		slog.String("item_id", item.ID),
		slog.String("slug", item.Slug),
	)
	return nil
}

func (service *Service) UpdateItem(context context.Context, id string, item *Item) error {
	item.ID = id
	validator := &validate.Validator{}

	validator.
		Localized(FieldTitle, item.Title).
		OneOf(FieldCategory, item.Category, Categories()...)

	if item.CoverURL != nil {
		validator.URL(FieldCoverURL, *item.CoverURL)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Update(context, item); err != nil {
		return err
	}

	service.logger.Info("portfolio_item_updated", slog.String("item_id", id))
	return nil
}

// PublishItem stamps the publication time, making the item publicly visible.
func (service *Service) PublishItem(context context.Context, id string) (*Item, error) {
	item, err := service.repo.GetByID(context, id)
	if err != nil {
		return nil, err
	}

	if item.PublishedAt == nil {
		now := time.Now().UTC()
		item.PublishedAt = &now
		if err := service.repo.Update(context, item); err != nil {
			return nil, err
		}
		service.logger.Info("portfolio_item_published", slog.String("item_id", id))
	}

	return item, nil
}

func (service *Service) DeleteItem(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("portfolio_item_deleted", slog.String("item_id", id))
	return nil
}
