package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"imagevault/internal/common"
	"imagevault/internal/dbx"
	"imagevault/internal/models"
)

// uniqueViolation is the PostgreSQL error code raised by the
// users_email_key constraint.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rec *models.UserRecord) (*models.UserRecord, error) {
	query := `
		INSERT INTO users (name, email, role, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
		`

	err := r.db.QueryRowContext(ctx, query,
		rec.Name, rec.Email, rec.Role, rec.PasswordHash).
		Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, mapPgError(err)
	}

	return rec, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.UserRecord, error) {
	return r.getByID(ctx, r.db, id, false)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.UserRecord, error) {
	query := `
		SELECT id, name, email, role, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
		`

	rec := &models.UserRecord{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Role, &rec.PasswordHash, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, mapPgError(err)
	}

	return rec, nil
}

// Update locks the row (SELECT ... FOR UPDATE), applies mutate and writes the
// result back inside one transaction, so concurrent updates of the same id
// serialize at the database. Email collisions surface as common.ErrConflict
// via the unique constraint, not via a pre-check.
func (r *PostgresRepository) Update(ctx context.Context, id int64, mutate func(rec *models.UserRecord) error) (*models.UserRecord, error) {
	var rec *models.UserRecord

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		rec, err = r.getByID(ctx, tx, id, true)
		if err != nil {
			return err
		}

		if err := mutate(rec); err != nil {
			return err
		}
		rec.UpdatedAt = time.Now()

		query := `
			UPDATE users
			SET name = $1, email = $2, role = $3, password_hash = $4, updated_at = $5
			WHERE id = $6
			`
		if _, err := tx.ExecContext(ctx, query,
			rec.Name, rec.Email, rec.Role, rec.PasswordHash, rec.UpdatedAt, rec.ID); err != nil {
			return mapPgError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rec, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (*models.UserRecord, error) {
	query := `
		DELETE FROM users
		WHERE id = $1
		RETURNING id, name, email, role, password_hash, created_at, updated_at
		`

	rec := &models.UserRecord{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Role, &rec.PasswordHash, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, mapPgError(err)
	}

	return rec, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.UserRecord, error) {
	query := `
		SELECT id, name, email, role, password_hash, created_at, updated_at
		FROM users
		ORDER BY id
		`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.UserRecord
	for rows.Next() {
		rec := &models.UserRecord{}
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Role, &rec.PasswordHash, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) getByID(ctx context.Context, q dbx.DBTX, id int64, forUpdate bool) (*models.UserRecord, error) {
	query := `
		SELECT id, name, email, role, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
		`
	if forUpdate {
		query += " FOR UPDATE"
	}

	rec := &models.UserRecord{}
	err := q.QueryRowContext(ctx, query, id).
		Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Role, &rec.PasswordHash, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, mapPgError(err)
	}

	return rec, nil
}

func mapPgError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return common.ErrConflict
	}
	return fmt.Errorf("db error: %w", err)
}
