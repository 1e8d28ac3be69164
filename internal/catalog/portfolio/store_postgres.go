package portfolio

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/champastudio/champa/internal/platform/database/schema"
	"github.com/champastudio/champa/internal/platform/dberr"
	"github.com/champastudio/champa/pkg/uuid"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectColumns is the shared projection for item queries.
func selectColumns() string {
	t := schema.PortfolioItem
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Slug, t.Title, t.Description, t.Category, t.ClientName,
		t.CoverURL, t.Images, t.Tags, t.Featured, t.SortOrder,
		t.PublishedAt, t.CreatedAt, t.UpdatedAt,
	)
}

func scanItem(row interface{ Scan(...any) error }) (*Item, error) {
	item := &Item{}
	err := row.Scan(
		&item.ID, &item.Slug, &item.Title, &item.Description, &item.Category,
		&item.ClientName, &item.CoverURL, &item.Images, &item.Tags,
		&item.Featured, &item.SortOrder, &item.PublishedAt,
		&item.CreatedAt, &item.UpdatedAt,
	)
	return item, err
}

func (repository *PostgresRepository) ListPublished(context context.Context) ([]*Item, error) {
	t := schema.PortfolioItem
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s IS NULL AND %s IS NOT NULL
		ORDER BY %s ASC, %s DESC
	`,
		selectColumns(), t.Table, t.DeletedAt, t.PublishedAt, t.SortOrder, t.PublishedAt,
	)

	return repository.list(context, query)
}

func (repository *PostgresRepository) ListAll(context context.Context) ([]*Item, error) {
	t := schema.PortfolioItem
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s IS NULL
		ORDER BY %s ASC, %s DESC
	`,
		selectColumns(), t.Table, t.DeletedAt, t.SortOrder, t.CreatedAt,
	)

	return repository.list(context, query)
}

func (repository *PostgresRepository) list(context context.Context, query string) ([]*Item, error) {
	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Portfolio")
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "Portfolio")
		}
		items = append(items, item)
	}

	return items, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Item, error) {
	t := schema.PortfolioItem
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		selectColumns(), t.Table, t.ID, t.DeletedAt,
	)

	item, err := scanItem(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Portfolio item")
	}
	return item, nil
}

func (repository *PostgresRepository) GetBySlug(context context.Context, slug string) (*Item, error) {
	t := schema.PortfolioItem

	// Detail pages accept either the slug or a raw UUID.
	column := t.Slug
	if uuid.IsValid(slug) {
		column = t.ID
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL AND %s IS NOT NULL`,
		selectColumns(), t.Table, column, t.DeletedAt, t.PublishedAt,
	)

	item, err := scanItem(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "Portfolio item")
	}
	return item, nil
}

func (repository *PostgresRepository) Create(context context.Context, item *Item) error {
	t := schema.PortfolioItem

	if item.ID == "" {
		item.ID = uuid.New()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.Slug, t.Title, t.Description, t.Category, t.ClientName,
		t.CoverURL, t.Images, t.Tags, t.Featured, t.SortOrder, t.PublishedAt,
		t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		item.ID, item.Slug, item.Title, item.Description, item.Category,
		item.ClientName, item.CoverURL, item.Images, item.Tags,
		item.Featured, item.SortOrder, item.PublishedAt,
	).Scan(&item.CreatedAt, &item.UpdatedAt)

	return dberr.Wrap(err, "Portfolio item")
}

func (repository *PostgresRepository) Update(context context.Context, item *Item) error {
	t := schema.PortfolioItem
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8,
		    %s = $9, %s = $10, %s = $11, %s = $12, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		t.Table, t.Slug, t.Title, t.Description, t.Category, t.ClientName,
		t.CoverURL, t.Images, t.Tags, t.Featured, t.SortOrder, t.PublishedAt,
		t.UpdatedAt, t.ID, t.DeletedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		item.ID, item.Slug, item.Title, item.Description, item.Category,
		item.ClientName, item.CoverURL, item.Images, item.Tags,
		item.Featured, item.SortOrder, item.PublishedAt,
	).Scan(&item.UpdatedAt)

	return dberr.Wrap(err, "Portfolio item")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	t := schema.PortfolioItem
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		t.Table, t.DeletedAt, t.ID, t.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "Portfolio item")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
