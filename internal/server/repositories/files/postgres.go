package files

import (
	"context"
	"database/sql"
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

func (r *PostgresRepository) Create(ctx context.Context, file *models.File) (*models.File, error) {

	query :=
		`INSERT INTO files (bucket, id, owner_id, size, content_type)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		file.Bucket, file.ID, file.OwnerID, file.Size, file.ContentType).Scan(&file.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return file, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, bucket, id string) (*models.File, error) {
	query :=
		`SELECT bucket, id, owner_id, size, content_type, created_at FROM files
		 WHERE bucket = $1 AND id = $2
		 `

	file := &models.File{}
	err := r.db.QueryRowContext(ctx, query, bucket, id).Scan(
		&file.Bucket, &file.ID, &file.OwnerID, &file.Size, &file.ContentType, &file.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return file, nil
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, bucket, id string) error {
	query := `DELETE FROM files WHERE bucket = $1 AND id = $2`

	res, err := r.db.ExecContext(ctx, query, bucket, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}
