// Package services contains the business logic: the user registry, the auth
// orchestrator, upload bookkeeping and access tracking.
package services

import (
	"context"
	"fmt"

	"imagevault/internal/auth"
	"imagevault/internal/common"
	"imagevault/internal/logging"
	"imagevault/internal/models"
	"imagevault/internal/repositories/users"
)

// UserService is the user registry. Every method returns the sanitized
// projection; the stored hash never crosses this boundary. The one
// exception, credentialByEmail, is package-private and reserved for the
// auth orchestrator.
type UserService struct {
	repo   users.Repository
	hasher *auth.Hasher
	logger logging.Logger
}

func NewUserService(repo users.Repository, hasher *auth.Hasher, logger logging.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, logger: logger}
}

// CreateUserParams are the fields accepted at registration. Role defaults
// to models.RoleUser when empty.
type CreateUserParams struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
}

// UpdateUserParams are the optional fields of a partial update; nil means
// "leave unchanged".
type UpdateUserParams struct {
	Name     *string
	Email    *string
	Password *string
	Role     *models.Role
}

func (s *UserService) Create(ctx context.Context, p CreateUserParams) (models.User, error) {
	if p.Name == "" || p.Email == "" || p.Password == "" {
		return models.User{}, common.ErrInvalidInput
	}
	if p.Role == "" {
		p.Role = models.RoleUser
	}
	if !p.Role.Valid() {
		return models.User{}, common.ErrInvalidInput
	}

	hash, err := s.hasher.Hash(p.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing password: %w", err)
	}

	rec, err := s.repo.Create(ctx, &models.UserRecord{
		Name:         p.Name,
		Email:        p.Email,
		Role:         p.Role,
		PasswordHash: hash,
	})
	if err != nil {
		return models.User{}, err
	}

	s.logger.Info(ctx, "user created", "id", rec.ID, "email", rec.Email, "role", rec.Role)
	return rec.Sanitized(), nil
}

func (s *UserService) Get(ctx context.Context, id int64) (models.User, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	return rec.Sanitized(), nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (models.User, error) {
	rec, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	return rec.Sanitized(), nil
}

// credentialByEmail exposes the stored hash to the auth orchestrator. It is
// deliberately unexported so no transport-facing caller can reach it.
func (s *UserService) credentialByEmail(ctx context.Context, email string) (*models.UserRecord, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *UserService) Update(ctx context.Context, id int64, p UpdateUserParams) (models.User, error) {
	rec, err := s.repo.Update(ctx, id, func(rec *models.UserRecord) error {
		if p.Name != nil {
			if *p.Name == "" {
				return common.ErrInvalidInput
			}
			rec.Name = *p.Name
		}
		if p.Email != nil {
			if *p.Email == "" {
				return common.ErrInvalidInput
			}
			rec.Email = *p.Email
		}
		if p.Role != nil {
			if !p.Role.Valid() {
				return common.ErrInvalidInput
			}
			rec.Role = *p.Role
		}
		if p.Password != nil {
			hash, err := s.hasher.Hash(*p.Password)
			if err != nil {
				return err
			}
			rec.PasswordHash = hash
		}
		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	s.logger.Info(ctx, "user updated", "id", rec.ID)
	return rec.Sanitized(), nil
}

func (s *UserService) Delete(ctx context.Context, id int64) (models.User, error) {
	rec, err := s.repo.Delete(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	s.logger.Info(ctx, "user removed", "id", rec.ID, "email", rec.Email)
	return rec.Sanitized(), nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.User, 0, len(recs))
	for _, rec := range recs {
		result = append(result, rec.Sanitized())
	}
	return result, nil
}
