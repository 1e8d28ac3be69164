package invoice

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

// invoiceColumns is the shared projection for invoice queries.
func invoiceColumns() string {
	t := schema.Invoice
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Number, t.ClientID, t.ProjectID, t.AmountLAK, t.Status,
		t.IssuedAt, t.DueDate, t.ViewedAt, t.PaidAt, t.Note,
		t.CreatedAt, t.UpdatedAt,
	)
}

func scanInvoice(row interface{ Scan(...any) error }) (*Invoice, error) {
	inv := &Invoice{}
	err := row.Scan(
		&inv.ID, &inv.Number, &inv.ClientID, &inv.ProjectID, &inv.AmountLAK,
		&inv.Status, &inv.IssuedAt, &inv.DueDate, &inv.ViewedAt, &inv.PaidAt,
		&inv.Note, &inv.CreatedAt, &inv.UpdatedAt,
	)
	return inv, err
}

func (repository *PostgresRepository) ListByClient(context context.Context, clientID string) ([]*Invoice, error) {
	t := schema.Invoice
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
		ORDER BY %s DESC
	`,
		invoiceColumns(), t.Table, t.ClientID, t.DeletedAt, t.CreatedAt,
	)

	return repository.list(context, query, clientID)
}

func (repository *PostgresRepository) ListAll(context context.Context) ([]*Invoice, error) {
	t := schema.Invoice
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s IS NULL
		ORDER BY %s DESC
	`,
		invoiceColumns(), t.Table, t.DeletedAt, t.CreatedAt,
	)

	return repository.list(context, query)
}

func (repository *PostgresRepository) list(context context.Context, query string, args ...any) ([]*Invoice, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Invoice")
	}
	defer rows.Close()

	var invoices []*Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "Invoice")
		}
		invoices = append(invoices, inv)
	}

	return invoices, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Invoice, error) {
	t := schema.Invoice
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		invoiceColumns(), t.Table, t.ID, t.DeletedAt,
	)

	inv, err := scanInvoice(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Invoice")
	}
	return inv, nil
}

func (repository *PostgresRepository) Create(context context.Context, invoice *Invoice) error {
	t := schema.Invoice
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.Number, t.ClientID, t.ProjectID, t.AmountLAK, t.Status,
		t.IssuedAt, t.DueDate, t.ViewedAt, t.PaidAt, t.Note,
		t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		invoice.ID, invoice.Number, invoice.ClientID, invoice.ProjectID,
		invoice.AmountLAK, invoice.Status, invoice.IssuedAt, invoice.DueDate,
		invoice.ViewedAt, invoice.PaidAt, invoice.Note,
	).Scan(&invoice.CreatedAt, &invoice.UpdatedAt)

	return dberr.Wrap(err, "Invoice")
}

func (repository *PostgresRepository) Update(context context.Context, invoice *Invoice) error {
	t := schema.Invoice
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		t.Table, t.AmountLAK, t.Status, t.IssuedAt, t.DueDate, t.ViewedAt,
		t.PaidAt, t.Note, t.UpdatedAt, t.ID, t.DeletedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		invoice.ID, invoice.AmountLAK, invoice.Status, invoice.IssuedAt,
		invoice.DueDate, invoice.ViewedAt, invoice.PaidAt, invoice.Note,
	).Scan(&invoice.UpdatedAt)

	return dberr.Wrap(err, "Invoice")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	t := schema.Invoice
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		t.Table, t.DeletedAt, t.ID, t.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "Invoice")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
