package order

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/champastudio/champa/internal/platform/database/schema"
	"github.com/champastudio/champa/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// orderColumns is the shared projection for order queries.
func orderColumns() string {
	t := schema.Order
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.ClientID, t.ServiceID, t.PackageID, t.Name, t.Email,
		t.Phone, t.Note, t.Status, t.IdempotencyKey, t.CreatedAt, t.UpdatedAt,
	)
}

func scanOrder(row interface{ Scan(...any) error }) (*Order, error) {
	ord := &Order{}
	err := row.Scan(
		&ord.ID, &ord.ClientID, &ord.ServiceID, &ord.PackageID, &ord.Name,
		&ord.Email, &ord.Phone, &ord.Note, &ord.Status, &ord.IdempotencyKey,
		&ord.CreatedAt, &ord.UpdatedAt,
	)
	return ord, err
}

func (repository *PostgresRepository) ListAll(context context.Context) ([]*Order, error) {
	t := schema.Order
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC`,
		orderColumns(), t.Table, t.CreatedAt,
	)

	return repository.list(context, query)
}

func (repository *PostgresRepository) ListByClient(context context.Context, clientID string) ([]*Order, error) {
	t := schema.Order
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC`,
		orderColumns(), t.Table, t.ClientID, t.CreatedAt,
	)

	return repository.list(context, query, clientID)
}

func (repository *PostgresRepository) list(context context.Context, query string, args ...any) ([]*Order, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Order")
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "Order")
		}
		orders = append(orders, ord)
	}

	return orders, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Order, error) {
	t := schema.Order
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		orderColumns(), t.Table, t.ID,
	)

	ord, err := scanOrder(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Order")
	}
	return ord, nil
}

func (repository *PostgresRepository) Create(context context.Context, order *Order) error {
	t := schema.Order
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.ClientID, t.ServiceID, t.PackageID, t.Name, t.Email,
		t.Phone, t.Note, t.Status, t.IdempotencyKey, t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		order.ID, order.ClientID, order.ServiceID, order.PackageID, order.Name,
		order.Email, order.Phone, order.Note, order.Status, order.IdempotencyKey,
	).Scan(&order.CreatedAt, &order.UpdatedAt)

	return dberr.Wrap(err, "Order")
}

func (repository *PostgresRepository) UpdateStatus(context context.Context, id, status string) (*Order, error) {
	t := schema.Order
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Status, t.UpdatedAt, t.ID, orderColumns(),
	)

	ord, err := scanOrder(repository.db.QueryRow(context, query, id, status))
	if err != nil {
		return nil, dberr.Wrap(err, "Order")
	}
	return ord, nil
}
