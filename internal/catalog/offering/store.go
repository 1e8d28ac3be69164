package offering

import "context"

type Repository interface {
	ListOfferings(context context.Context, includeInactive bool) ([]*Offering, error)
	GetOffering(context context.Context, slug string) (*Offering, error)
	CreateOffering(context context.Context, offering *Offering) error
	UpdateOffering(context context.Context, offering *Offering) error
	DeleteOffering(context context.Context, id string) error

	ListPackages(context context.Context, includeInactive bool) ([]*Package, error)
	CreatePackage(context context.Context, pkg *Package) error
	UpdatePackage(context context.Context, pkg *Package) error
	DeletePackage(context context.Context, id string) error
}
