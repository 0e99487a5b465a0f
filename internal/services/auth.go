package services

import (
	"context"
	"errors"

	"imagevault/internal/auth"
	"imagevault/internal/common"
	"imagevault/internal/logging"
	"imagevault/internal/models"
)

// AuthService orchestrates login and request authentication on top of the
// user registry and the token issuer.
type AuthService struct {
	users  *UserService
	hasher *auth.Hasher
	tokens *auth.TokenIssuer
	logger logging.Logger
}

func NewAuthService(users *UserService, hasher *auth.Hasher, tokens *auth.TokenIssuer, logger logging.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, logger: logger}
}

// LoginResult is the successful login payload: a signed access token and the
// sanitized user it was issued for.
type LoginResult struct {
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}

// Identity is the authenticated caller attached to a request.
type Identity struct {
	ID    int64
	Name  string
	Email string
	Role  models.Role
}

// Login verifies the credentials and issues a token. Unknown email and wrong
// password both return common.ErrInvalidCredentials; the response must not
// reveal which of the two failed. A stored hash that bcrypt cannot parse is
// logged as an integrity fault but also surfaces as invalid credentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, common.ErrInvalidCredentials
	}

	rec, err := s.users.credentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(password, rec.PasswordHash)
	if err != nil {
		if errors.Is(err, common.ErrCorruptCredential) {
			s.logger.Error(ctx, "stored credential is unreadable", "user_id", rec.ID)
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}
	if !ok {
		return nil, common.ErrInvalidCredentials
	}

	user := rec.Sanitized()
	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "login succeeded", "user_id", user.ID)
	return &LoginResult{AccessToken: token, User: user}, nil
}

// VerifyToken checks the signature and expiry of a presented token and
// returns its claims.
func (s *AuthService) VerifyToken(tokenString string) (*auth.Claims, error) {
	return s.tokens.Verify(tokenString)
}

// Authenticate turns a bearer token into a caller identity. A token that
// verifies cryptographically but lacks a subject or a name is rejected with
// common.ErrForbidden: it was signed with our key but does not describe a
// complete principal.
func (s *AuthService) Authenticate(tokenString string) (*Identity, error) {
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	id := claims.UserID()
	if id == 0 || claims.Name == "" {
		return nil, common.ErrForbidden
	}

	return &Identity{
		ID:    id,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}
