package invoice

import "context"

// Repository is the persistence contract for invoices.
type Repository interface {
	ListByClient(context context.Context, clientID string) ([]*Invoice, error)
	ListAll(context context.Context) ([]*Invoice, error)
	GetByID(context context.Context, id string) (*Invoice, error)
	Create(context context.Context, invoice *Invoice) error
	Update(context context.Context, invoice *Invoice) error
	Delete(context context.Context, id string) error
}
