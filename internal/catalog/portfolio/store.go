package portfolio

import "context"

type Repository interface {
	ListPublished(context context.Context) ([]*Item, error)
	ListAll(context context.Context) ([]*Item, error)
	GetByID(context context.Context, id string) (*Item, error)
	GetBySlug(context context.Context, slug string) (*Item, error)
	Create(context context.Context, item *Item) error
	Update(context context.Context, item *Item) error
	Delete(context context.Context, id string) error
}
