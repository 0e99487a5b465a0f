package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"imagevault/internal/common"
	"imagevault/internal/models"
)

const issuer = "imagevault"

// Claims is the signed token payload: the registered claims plus a snapshot
// of the user's profile at issuance time. A later profile change does not
// alter tokens that are already out.
type Claims struct {
	jwt.RegisteredClaims
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// TokenIssuer signs and verifies HS256 tokens with a process-wide secret.
type TokenIssuer struct {
	secretKey []byte
	ttl       time.Duration
}

func NewTokenIssuer(secretKey []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secretKey: secretKey, ttl: ttl}
}

// Issue signs a claims snapshot for the given user.
func (t *TokenIssuer) Issue(user models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	})

	signed, err := token.SignedString(t.secretKey)
	if err != nil {
		return "", err
	}

	return signed, nil
}

// Verify parses and validates a presented token. Signature mismatch, a
// malformed token, a non-HMAC signing method and expiry all collapse to
// common.ErrInvalidToken; no partially trusted claims escape.
func (t *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(tk *jwt.Token) (interface{}, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return t.secretKey, nil
	})
	if err != nil {
		return nil, common.ErrInvalidToken
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

// UserID returns the numeric subject, or 0 if it is missing or malformed.
func (c *Claims) UserID() int64 {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
