package project

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

// ── 1. Projects ───────────────────────────────────────────────────────────

// projectColumns is the shared projection for project queries.
func projectColumns() string {
	t := schema.Project
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.ClientID, t.Title, t.Description, t.Status,
		t.StartDate, t.DueDate, t.CreatedAt, t.UpdatedAt,
	)
}

func scanProject(row interface{ Scan(...any) error }) (*Project, error) {
	proj := &Project{}
	err := row.Scan(
		&proj.ID, &proj.ClientID, &proj.Title, &proj.Description, &proj.Status,
		&proj.StartDate, &proj.DueDate, &proj.CreatedAt, &proj.UpdatedAt,
	)
	return proj, err
}

func (repository *PostgresRepository) ListByClient(context context.Context, clientID string) ([]*Project, error) {
	t := schema.Project
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
		ORDER BY %s DESC
	`,
		projectColumns(), t.Table, t.ClientID, t.DeletedAt, t.CreatedAt,
	)

	return repository.listProjects(context, query, clientID)
}

func (repository *PostgresRepository) ListAll(context context.Context) ([]*Project, error) {
	t := schema.Project
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s IS NULL
		ORDER BY %s DESC
	`,
		projectColumns(), t.Table, t.DeletedAt, t.CreatedAt,
	)

	return repository.listProjects(context, query)
}

func (repository *PostgresRepository) listProjects(context context.Context, query string, args ...any) ([]*Project, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Project")
	}
	defer rows.Close()

	var projects []*Project
	for rows.Next() {
		proj, err := scanProject(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "Project")
		}
		projects = append(projects, proj)
	}

	return projects, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Project, error) {
	t := schema.Project
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		projectColumns(), t.Table, t.ID, t.DeletedAt,
	)

	proj, err := scanProject(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Project")
	}
	return proj, nil
}

func (repository *PostgresRepository) Create(context context.Context, project *Project) error {
	t := schema.Project
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.ClientID, t.Title, t.Description, t.Status,
		t.StartDate, t.DueDate, t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		project.ID, project.ClientID, project.Title, project.Description,
		project.Status, project.StartDate, project.DueDate,
	).Scan(&project.CreatedAt, &project.UpdatedAt)

	return dberr.Wrap(err, "Project")
}

func (repository *PostgresRepository) Update(context context.Context, project *Project) error {
	t := schema.Project
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		t.Table, t.Title, t.Description, t.Status, t.StartDate, t.DueDate,
		t.UpdatedAt, t.ID, t.DeletedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		project.ID, project.Title, project.Description, project.Status,
		project.StartDate, project.DueDate,
	).Scan(&project.UpdatedAt)

	return dberr.Wrap(err, "Project")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	t := schema.Project
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		t.Table, t.DeletedAt, t.ID, t.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "Project")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// ── 2. Message Thread ─────────────────────────────────────────────────────

func (repository *PostgresRepository) ListMessages(context context.Context, projectID string) ([]*Message, error) {
	t := schema.ProjectMessage
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`,
		t.ID, t.ProjectID, t.AuthorID, t.Body, t.CreatedAt,
		t.Table, t.ProjectID, t.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, projectID)
	if err != nil {
		return nil, dberr.Wrap(err, "Project message")
	}
	defer rows.Close()

	var messages []*Message
	for rows.Next() {
		message := &Message{}
		if err := rows.Scan(&message.ID, &message.ProjectID, &message.AuthorID, &message.Body, &message.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "Project message")
		}
		messages = append(messages, message)
	}

	return messages, nil
}

func (repository *PostgresRepository) CreateMessage(context context.Context, message *Message) error {
	t := schema.ProjectMessage
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING %s
	`,
		t.Table, t.ID, t.ProjectID, t.AuthorID, t.Body, t.CreatedAt,
		t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		message.ID, message.ProjectID, message.AuthorID, message.Body,
	).Scan(&message.CreatedAt)

	return dberr.Wrap(err, "Project message")
}

// ── 3. Shared Files ───────────────────────────────────────────────────────

func fileColumns() string {
	t := schema.ProjectFile
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.ProjectID, t.UploaderID, t.FileName, t.ObjectKey,
		t.ContentType, t.SizeBytes, t.CreatedAt,
	)
}

func scanFile(row interface{ Scan(...any) error }) (*File, error) {
	file := &File{}
	err := row.Scan(
		&file.ID, &file.ProjectID, &file.UploaderID, &file.FileName,
		&file.ObjectKey, &file.ContentType, &file.SizeBytes, &file.CreatedAt,
	)
	return file, err
}

func (repository *PostgresRepository) ListFiles(context context.Context, projectID string) ([]*File, error) {
	t := schema.ProjectFile
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
	`,
		fileColumns(), t.Table, t.ProjectID, t.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, projectID)
	if err != nil {
		return nil, dberr.Wrap(err, "Project file")
	}
	defer rows.Close()

	var files []*File
	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "Project file")
		}
		files = append(files, file)
	}

	return files, nil
}

func (repository *PostgresRepository) GetFile(context context.Context, projectID, fileID string) (*File, error) {
	t := schema.ProjectFile
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		fileColumns(), t.Table, t.ID, t.ProjectID,
	)

	file, err := scanFile(repository.db.QueryRow(context, query, fileID, projectID))
	if err != nil {
		return nil, dberr.Wrap(err, "Project file")
	}
	return file, nil
}

func (repository *PostgresRepository) CreateFile(context context.Context, file *File) error {
	t := schema.ProjectFile
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING %s
	`,
		t.Table, t.ID, t.ProjectID, t.UploaderID, t.FileName, t.ObjectKey,
		t.ContentType, t.SizeBytes, t.CreatedAt,
		t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		file.ID, file.ProjectID, file.UploaderID, file.FileName,
		file.ObjectKey, file.ContentType, file.SizeBytes,
	).Scan(&file.CreatedAt)

	return dberr.Wrap(err, "Project file")
}

func (repository *PostgresRepository) DeleteFile(context context.Context, projectID, fileID string) error {
	t := schema.ProjectFile
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		t.Table, t.ID, t.ProjectID,
	)

	cmd, err := repository.db.Exec(context, query, fileID, projectID)
	if err != nil {
		return dberr.Wrap(err, "Project file")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
