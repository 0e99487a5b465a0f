package uploads

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"imagevault/internal/common"
	"imagevault/internal/models"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, up *models.Upload) (*models.Upload, error) {
	tags, err := json.Marshal(up.Tags)
	if err != nil {
		return nil, fmt.Errorf("encoding tags: %w", err)
	}

	query := `
		INSERT INTO uploads (filename, original_name, mimetype, size, title, tags, storage_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
		`

	err = r.db.QueryRowContext(ctx, query,
		up.Filename, up.OriginalName, up.Mimetype, up.Size, up.Title, string(tags), up.StorageKey).
		Scan(&up.ID, &up.CreatedAt, &up.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return up, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Upload, error) {
	query := `
		SELECT id, filename, original_name, mimetype, size, title, tags, storage_key, created_at, updated_at
		FROM uploads
		WHERE id = $1
		`

	up, err := scanUpload(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return up, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Upload, error) {
	query := `
		SELECT id, filename, original_name, mimetype, size, title, tags, storage_key, created_at, updated_at
		FROM uploads
		ORDER BY id
		`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Upload
	for rows.Next() {
		up, err := scanUpload(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, up)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUpload(row rowScanner) (*models.Upload, error) {
	up := &models.Upload{}
	var tags string
	if err := row.Scan(&up.ID, &up.Filename, &up.OriginalName, &up.Mimetype, &up.Size,
		&up.Title, &tags, &up.StorageKey, &up.CreatedAt, &up.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(tags), &up.Tags); err != nil {
		return nil, fmt.Errorf("decoding tags: %w", err)
	}
	return up, nil
}
