package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imagevault/internal/auth"
	"imagevault/internal/common"
	"imagevault/internal/models"
	"imagevault/internal/repositories/users"
)

func newAuthService(t *testing.T) (*AuthService, *UserService, *users.MemoryRepository) {
	t.Helper()
	repo := users.NewMemoryRepository()
	hasher := auth.NewHasher(4)
	usersSvc := NewUserService(repo, hasher, newTestLogger())
	tokens := auth.NewTokenIssuer([]byte("test-secret"), time.Hour)
	return NewAuthService(usersSvc, hasher, tokens, newTestLogger()), usersSvc, repo
}

func TestAuthService_Login(t *testing.T) {
	svc, usersSvc, _ := newAuthService(t)
	ctx := context.Background()

	created, err := usersSvc.Create(ctx, CreateUserParams{
		Name:     "Admin User",
		Email:    "admin@example.com",
		Password: "admin123",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)

	res, err := svc.Login(ctx, "admin@example.com", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)
	assert.Equal(t, created.ID, res.User.ID)

	claims, err := svc.VerifyToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID())
	assert.Equal(t, "Admin User", claims.Name)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	svc, usersSvc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := usersSvc.Create(ctx, CreateUserParams{Name: "A", Email: "a@example.com", Password: "rightpass"})
	require.NoError(t, err)

	_, errUnknown := svc.Login(ctx, "nobody@example.com", "whatever")
	_, errWrongPass := svc.Login(ctx, "a@example.com", "wrongpass")

	assert.ErrorIs(t, errUnknown, common.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, common.ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPass, "unknown email and wrong password must be the same error")
}

func TestAuthService_LoginEmptyInput(t *testing.T) {
	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "", "pass")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "a@example.com", "")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestAuthService_LoginCorruptHash(t *testing.T) {
	svc, _, repo := newAuthService(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.UserRecord{
		Name:         "Broken",
		Email:        "broken@example.com",
		Role:         models.RoleUser,
		PasswordHash: "not-a-bcrypt-hash",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "broken@example.com", "anything")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials, "integrity fault must not leak to the caller")
}

func TestAuthService_Authenticate(t *testing.T) {
	svc, usersSvc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := usersSvc.Create(ctx, CreateUserParams{Name: "Regular User", Email: "user@example.com", Password: "pass"})
	require.NoError(t, err)

	res, err := svc.Login(ctx, "user@example.com", "pass")
	require.NoError(t, err)

	id, err := svc.Authenticate(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, id.ID)
	assert.Equal(t, "Regular User", id.Name)
	assert.Equal(t, "user@example.com", id.Email)
	assert.Equal(t, models.RoleUser, id.Role)
}

func TestAuthService_AuthenticateInvalidToken(t *testing.T) {
	svc, _, _ := newAuthService(t)

	_, err := svc.Authenticate("not.a.token")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestAuthService_AuthenticateIncompleteClaims(t *testing.T) {
	svc, _, _ := newAuthService(t)
	issuer := auth.NewTokenIssuer([]byte("test-secret"), time.Hour)

	// Valid signature, but no display name.
	noName, err := issuer.Issue(models.User{ID: 7, Email: "x@example.com", Role: models.RoleUser})
	require.NoError(t, err)
	_, err = svc.Authenticate(noName)
	assert.ErrorIs(t, err, common.ErrForbidden)

	// Valid signature, but no usable subject.
	noSubject, err := issuer.Issue(models.User{ID: 0, Name: "Ghost", Role: models.RoleUser})
	require.NoError(t, err)
	_, err = svc.Authenticate(noSubject)
	assert.ErrorIs(t, err, common.ErrForbidden)
}
