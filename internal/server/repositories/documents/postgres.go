package documents

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dkraev/inkpress/internal/common"
	"github.com/dkraev/inkpress/internal/dbx"
	"github.com/dkraev/inkpress/internal/server/models"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, doc *models.Document) (*models.Document, error) {

	fields, err := json.Marshal(doc.Fields)
	if err != nil {
		return nil, fmt.Errorf("encoding fields: %w", err)
	}

	query :=
		`INSERT INTO documents (collection, id, owner_id, fields)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		doc.Collection, doc.ID, doc.OwnerID, fields).Scan(&doc.CreatedAt, &doc.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return doc, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, collection, id string) (*models.Document, error) {
	query :=
		`SELECT collection, id, owner_id, fields, created_at, updated_at FROM documents
		 WHERE collection = $1 AND id = $2
		 `

	return scanDocument(r.db.QueryRowContext(ctx, query, collection, id))
}

func (r *PostgresRepository) List(ctx context.Context, collection string) ([]models.Document, error) {
	query :=
		`SELECT collection, id, owner_id, fields, created_at, updated_at FROM documents
		 WHERE collection = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		var doc models.Document
		var fields []byte
		if err := rows.Scan(&doc.Collection, &doc.ID, &doc.OwnerID, &fields, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if err := json.Unmarshal(fields, &doc.Fields); err != nil {
			return nil, fmt.Errorf("decoding fields: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return docs, nil
}

func (r *PostgresRepository) Update(ctx context.Context, doc *models.Document) (*models.Document, error) {

	fields, err := json.Marshal(doc.Fields)
	if err != nil {
		return nil, fmt.Errorf("encoding fields: %w", err)
	}

	query :=
		`UPDATE documents SET fields = $3, updated_at = now()
		 WHERE collection = $1 AND id = $2
		 RETURNING created_at, updated_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		doc.Collection, doc.ID, fields).Scan(&doc.CreatedAt, &doc.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return doc, nil
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, collection, id string) error {
	query := `DELETE FROM documents WHERE collection = $1 AND id = $2`

	res, err := r.db.ExecContext(ctx, query, collection, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func scanDocument(row *sql.Row) (*models.Document, error) {
	doc := &models.Document{}
	var fields []byte

	err := row.Scan(&doc.Collection, &doc.ID, &doc.OwnerID, &fields, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := json.Unmarshal(fields, &doc.Fields); err != nil {
		return nil, fmt.Errorf("decoding fields: %w", err)
	}

	return doc, nil
}
