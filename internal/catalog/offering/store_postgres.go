package offering

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

// ── 1. Offerings ──────────────────────────────────────────────────────────

func offeringColumns() string {
	t := schema.CatalogService
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Slug, t.Title, t.Summary, t.Description, t.Icon,
		t.PriceFromLAK, t.Active, t.SortOrder, t.CreatedAt, t.UpdatedAt,
	)
}

func scanOffering(row interface{ Scan(...any) error }) (*Offering, error) {
	offering := &Offering{}
	err := row.Scan(
		&offering.ID, &offering.Slug, &offering.Title, &offering.Summary,
		&offering.Description, &offering.Icon, &offering.PriceFromLAK,
		&offering.Active, &offering.SortOrder,
		&offering.CreatedAt, &offering.UpdatedAt,
	)
	return offering, err
}

func (repository *PostgresRepository) ListOfferings(context context.Context, includeInactive bool) ([]*Offering, error) {
	t := schema.CatalogService
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s IS NULL`, offeringColumns(), t.Table, t.DeletedAt)
	if !includeInactive {
		query += fmt.Sprintf(` AND %s = true`, t.Active)
	}
	query += fmt.Sprintf(` ORDER BY %s ASC`, t.SortOrder)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Service")
	}
	defer rows.Close()

	var offerings []*Offering
	for rows.Next() {
		offering, err := scanOffering(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "Service")
		}
		offerings = append(offerings, offering)
	}

	return offerings, nil
}

func (repository *PostgresRepository) GetOffering(context context.Context, slug string) (*Offering, error) {
	t := schema.CatalogService

	column := t.Slug
	if uuid.IsValid(slug) {
		column = t.ID
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		offeringColumns(), t.Table, column, t.DeletedAt,
	)

	offering, err := scanOffering(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "Service")
	}
	return offering, nil
}

func (repository *PostgresRepository) CreateOffering(context context.Context, offering *Offering) error {
	t := schema.CatalogService

	if offering.ID == "" {
		offering.ID = uuid.New()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.Slug, t.Title, t.Summary, t.Description, t.Icon,
		t.PriceFromLAK, t.Active, t.SortOrder, t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		offering.ID, offering.Slug, offering.Title, offering.Summary,
		offering.Description, offering.Icon, offering.PriceFromLAK,
		offering.Active, offering.SortOrder,
	).Scan(&offering.CreatedAt, &offering.UpdatedAt)

	return dberr.Wrap(err, "Service")
}

func (repository *PostgresRepository) UpdateOffering(context context.Context, offering *Offering) error {
	t := schema.CatalogService
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		t.Table, t.Slug, t.Title, t.Summary, t.Description, t.Icon,
		t.PriceFromLAK, t.Active, t.SortOrder, t.UpdatedAt,
		t.ID, t.DeletedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		offering.ID, offering.Slug, offering.Title, offering.Summary,
		offering.Description, offering.Icon, offering.PriceFromLAK,
		offering.Active, offering.SortOrder,
	).Scan(&offering.UpdatedAt)

	return dberr.Wrap(err, "Service")
}

func (repository *PostgresRepository) DeleteOffering(context context.Context, id string) error {
	t := schema.CatalogService
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		t.Table, t.DeletedAt, t.ID, t.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "Service")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// ── 2. Packages ───────────────────────────────────────────────────────────

func packageColumns() string {
	t := schema.CatalogPackage
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Slug, t.Title, t.Description, t.Features, t.PriceLAK,
		t.Popular, t.Active, t.SortOrder, t.CreatedAt, t.UpdatedAt,
	)
}

func scanPackage(row interface{ Scan(...any) error }) (*Package, error) {
	pkg := &Package{}
	err := row.Scan(
		&pkg.ID, &pkg.Slug, &pkg.Title, &pkg.Description, &pkg.Features,
		&pkg.PriceLAK, &pkg.Popular, &pkg.Active, &pkg.SortOrder,
		&pkg.CreatedAt, &pkg.UpdatedAt,
	)
	return pkg, err
}

func (repository *PostgresRepository) ListPackages(context context.Context, includeInactive bool) ([]*Package, error) {
	t := schema.CatalogPackage
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s IS NULL`, packageColumns(), t.Table, t.DeletedAt)
	if !includeInactive {
		query += fmt.Sprintf(` AND %s = true`, t.Active)
	}
	query += fmt.Sprintf(` ORDER BY %s ASC`, t.SortOrder)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Package")
	}
	defer rows.Close()

	var packages []*Package
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "Package")
		}
		packages = append(packages, pkg)
	}

	return packages, nil
}

func (repository *PostgresRepository) CreatePackage(context context.Context, pkg *Package) error {
	t := schema.CatalogPackage

	if pkg.ID == "" {
		pkg.ID = uuid.New()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.Slug, t.Title, t.Description, t.Features, t.PriceLAK,
		t.Popular, t.Active, t.SortOrder, t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		pkg.ID, pkg.Slug, pkg.Title, pkg.Description, pkg.Features,
		pkg.PriceLAK, pkg.Popular, pkg.Active, pkg.SortOrder,
	).Scan(&pkg.CreatedAt, &pkg.UpdatedAt)

	return dberr.Wrap(err, "Package")
}

func (repository *PostgresRepository) UpdatePackage(context context.Context, pkg *Package) error {
	t := schema.CatalogPackage
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		t.Table, t.Slug, t.Title, t.Description, t.Features, t.PriceLAK,
		t.Popular, t.Active, t.SortOrder, t.UpdatedAt,
		t.ID, t.DeletedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		pkg.ID, pkg.Slug, pkg.Title, pkg.Description, pkg.Features,
		pkg.PriceLAK, pkg.Popular, pkg.Active, pkg.SortOrder,
	).Scan(&pkg.UpdatedAt)

	return dberr.Wrap(err, "Package")
}

func (repository *PostgresRepository) DeletePackage(context context.Context, id string) error {
	t := schema.CatalogPackage
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		t.Table, t.DeletedAt, t.ID, t.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "Package")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
