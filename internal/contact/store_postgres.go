// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

package contact

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

// messageColumns is the shared projection for contact message queries.
func messageColumns() string {
	t := schema.ContactMessage
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Name, t.Email, t.Subject, t.Message, t.Lang, t.Status, t.CreatedAt,
	)
}

func scanMessage(row interface{ Scan(...any) error }) (*Message, error) {
	message := &Message{}
	err := row.Scan(
		&message.ID, &message.Name, &message.Email, &message.Subject,
		&message.Message, &message.Lang, &message.Status, &message.CreatedAt,
	)
	return message, err
}

func (repository *PostgresRepository) List(context context.Context) ([]*Message, error) {
	t := schema.ContactMessage
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC`,
		messageColumns(), t.Table, t.CreatedAt,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Contact message")
	}
	defer rows.Close()

	var messages []*Message
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "Contact message")
		}
		messages = append(messages, message)
	}

	return messages, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Message, error) {
	t := schema.ContactMessage
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		messageColumns(), t.Table, t.ID,
	)

	message, err := scanMessage(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Contact message")
	}
	return message, nil
}

func (repository *PostgresRepository) Create(context context.Context, message *Message) error {
	t := schema.ContactMessage
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING %s
	`,
		t.Table, t.ID, t.Name, t.Email, t.Subject, t.Message, t.Lang,
		t.Status, t.CreatedAt,
		t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		message.ID, message.Name, message.Email, message.Subject,
		message.Message, message.Lang, message.Status,
	).Scan(&message.CreatedAt)

	return dberr.Wrap(err, "Contact message")
}

func (repository *PostgresRepository) UpdateStatus(context context.Context, id, status string) (*Message, error) {
	t := schema.ContactMessage
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Status, t.ID, messageColumns(),
	)

	message, err := scanMessage(repository.db.QueryRow(context, query, id, status))
	if err != nil {
		return nil, dberr.Wrap(err, "Contact message")
	}
	return message, nil
}
