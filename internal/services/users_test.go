package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imagevault/internal/auth"
	"imagevault/internal/common"
	"imagevault/internal/models"
	"imagevault/internal/repositories/users"
)

func newUserService(t *testing.T) (*UserService, *users.MemoryRepository) {
	t.Helper()
	repo := users.NewMemoryRepository()
	return NewUserService(repo, auth.NewHasher(4), newTestLogger()), repo
}

func TestUserService_Create(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateUserParams{
		Name:     "Regular User",
		Email:    "user@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "Regular User", u.Name)
	assert.Equal(t, models.RoleUser, u.Role, "role defaults to user")
	assert.False(t, u.CreatedAt.IsZero())
}

func TestUserService_CreateAdmin(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateUserParams{
		Name:     "Admin User",
		Email:    "admin@example.com",
		Password: "admin123",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, u.Role)

	rec, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", rec.PasswordHash, "password must be stored hashed")
	assert.NotEmpty(t, rec.PasswordHash)
}

func TestUserService_CreateValidation(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		params CreateUserParams
	}{
		{"missing name", CreateUserParams{Email: "a@b.c", Password: "x"}},
		{"missing email", CreateUserParams{Name: "A", Password: "x"}},
		{"missing password", CreateUserParams{Name: "A", Email: "a@b.c"}},
		{"unknown role", CreateUserParams{Name: "A", Email: "a@b.c", Password: "x", Role: "superuser"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.params)
			assert.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}
}

func TestUserService_CreateDuplicateEmail(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateUserParams{Name: "A", Email: "dup@example.com", Password: "x1"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateUserParams{Name: "B", Email: "dup@example.com", Password: "x2"})
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestUserService_GetNotFound(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, 42)
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = svc.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUserService_Update(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateUserParams{Name: "Old", Email: "old@example.com", Password: "oldpass"})
	require.NoError(t, err)

	before, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	name := "New"
	pass := "newpass"
	updated, err := svc.Update(ctx, created.ID, UpdateUserParams{Name: &name, Password: &pass})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, "old@example.com", updated.Email)

	after, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, before.PasswordHash, after.PasswordHash, "password change rehashes")
}

func TestUserService_UpdateValidation(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateUserParams{Name: "A", Email: "a@example.com", Password: "x"})
	require.NoError(t, err)

	empty := ""
	_, err = svc.Update(ctx, created.ID, UpdateUserParams{Name: &empty})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	badRole := models.Role("root")
	_, err = svc.Update(ctx, created.ID, UpdateUserParams{Role: &badRole})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name, "failed update leaves the record untouched")
}

func TestUserService_UpdateEmailConflict(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateUserParams{Name: "A", Email: "a@example.com", Password: "x"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, CreateUserParams{Name: "B", Email: "b@example.com", Password: "x"})
	require.NoError(t, err)

	taken := "a@example.com"
	_, err = svc.Update(ctx, b.ID, UpdateUserParams{Email: &taken})
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestUserService_Delete(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateUserParams{Name: "A", Email: "a@example.com", Password: "x"})
	require.NoError(t, err)

	removed, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUserService_List(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := svc.Create(ctx, CreateUserParams{Name: "U", Email: email, Password: "x"})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a@example.com", list[0].Email)
	assert.Equal(t, "c@example.com", list[2].Email)
}
