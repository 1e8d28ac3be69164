package offering

import (
	"context"
	"log/slog"

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

// offeringAdapter reads offerings for the filter engine. Offerings have no
// category axis; only search and sorting apply.
func offeringAdapter(lang i18n.Lang) filter.Adapter[*Offering] {
	return filter.Adapter[*Offering]{
		Search: func(offering *Offering) []string {
			fields := make([]string, 0, 6)
			for _, value := range offering.Title {
				fields = append(fields, value)
			}
			for _, value := range offering.Summary {
				fields = append(fields, value)
			}
			return fields
		},
		Sort: map[string]filter.Key[*Offering]{
			"title": {Text: func(offering *Offering) string {
				return i18n.Resolve(offering.Title, lang, "")
			}},
			"price": {Number: func(offering *Offering) float64 {
				if offering.PriceFromLAK == nil {
					return 0
				}
				return float64(*offering.PriceFromLAK)
			}},
			"order": {Number: func(offering *Offering) float64 {
				return float64(offering.SortOrder)
			}},
		},
		Locale: lang.Tag(),
	}
}

func (service *Service) ListOfferings(context context.Context, spec filter.Spec, lang i18n.Lang) ([]*Offering, error) {
	offerings, err := service.repo.ListOfferings(context, false)
	if err != nil {
		return nil, err
	}

	return filter.Apply(offerings, spec, offeringAdapter(lang)), nil
}

func (service *Service) GetOffering(context context.Context, offeringSlug string) (*Offering, error) {
	return service.repo.GetOffering(context, offeringSlug)
}

func (service *Service) CreateOffering(context context.Context, offering *Offering) error {
	validator := &validate.Validator{}

	validator.
		Localized(FieldTitle, offering.Title).
		Localized(FieldSummary, offering.Summary)

	if err := validator.Err(); err != nil {
		return err
	}

	if offering.Slug == "" {
		offering.Slug = slug.From(offering.Title.Get(i18n.DefaultLang))
	}

	if err := service.repo.CreateOffering(context, offering); err != nil {
		return err
	}

	service.logger.Info("offering_created", slog.String("slug", offering.Slug))
	return nil
}

func (service *Service) UpdateOffering(context context.Context, id string, offering *Offering) error {
	offering.ID = id

	validator := &validate.Validator{}
	validator.Localized(FieldTitle, offering.Title)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdateOffering(context, offering); err != nil {
		return err
	}

	service.logger.Info("offering_updated", slog.String("offering_id", id))
	return nil
}

func (service *Service) DeleteOffering(context context.Context, id string) error {
	if err := service.repo.DeleteOffering(context, id); err != nil {
		return err
	}

	service.logger.Warn("offering_deleted", slog.String("offering_id", id))
	return nil
}

func (service *Service) ListPackages(context context.Context, lang i18n.Lang) ([]*Package, error) {
	packages, err := service.repo.ListPackages(context, false)
	if err != nil {
		return nil, err
	}

	// Packages are a short fixed list; stored order is the display order.
	return packages, nil
}

func (service *Service) CreatePackage(context context.Context, pkg *Package) error {
	validator := &validate.Validator{}

	validator.
		Localized(FieldTitle, pkg.Title).
		Custom(FieldPrice, pkg.PriceLAK <= 0, "Price must be positive")

	for _, feature := range pkg.Features {
		validator.Localized("features", feature)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if pkg.Slug == "" {
		pkg.Slug = slug.From(pkg.Title.Get(i18n.DefaultLang))
	}

	if err := service.repo.CreatePackage(context, pkg); err != nil {
		return err
	}

	service.logger.Info("package_created", slog.String("slug", pkg.Slug))
	return nil
}

func (service *Service) UpdatePackage(context context.Context, id string, pkg *Package) error {
	pkg.ID = id

	validator := &validate.Validator{}
	validator.
		Localized(FieldTitle, pkg.Title).
		Custom(FieldPrice, pkg.PriceLAK <= 0, "Price must be positive")
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdatePackage(context, pkg); err != nil {
		return err
	}

	service.logger.Info("package_updated", slog.String("package_id", id))
	return nil
}

func (service *Service) DeletePackage(context context.Context, id string) error {
	if err := service.repo.DeletePackage(context, id); err != nil {
		return err
	}

	service.logger.Warn("package_deleted", slog.String("package_id", id))
	return nil
}
