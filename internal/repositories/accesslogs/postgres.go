package accesslogs

import (
	"context"
	"database/sql"
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

func (r *PostgresRepository) Create(ctx context.Context, username string) (*models.AccessLog, error) {
	query := `
		INSERT INTO access_logs (username)
		VALUES ($1)
		RETURNING id, username, timestamp
		`

	rec := &models.AccessLog{}
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&rec.ID, &rec.Username, &rec.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rec, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM access_logs`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) UniqueUsernames(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT username FROM access_logs
		`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		result = append(result, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Last(ctx context.Context) (*models.AccessLog, error) {
	query := `
		SELECT id, username, timestamp FROM access_logs
		ORDER BY timestamp DESC, id DESC
		LIMIT 1
		`

	rec := &models.AccessLog{}
	err := r.db.QueryRowContext(ctx, query).Scan(&rec.ID, &rec.Username, &rec.Timestamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rec, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.AccessLog, error) {
	query := `
		SELECT id, username, timestamp FROM access_logs
		ORDER BY timestamp DESC, id DESC
		`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.AccessLog
	for rows.Next() {
		rec := &models.AccessLog{}
		if err := rows.Scan(&rec.ID, &rec.Username, &rec.Timestamp); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `TRUNCATE access_logs`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
