// Package auth implements the credential hasher and the JWT issuer/verifier.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"imagevault/internal/common"
)

// Hasher performs one-way password hashing with bcrypt. The cost is fixed at
// construction; hashes self-describe their cost, so raising it later leaves
// previously stored hashes verifiable.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost. Costs outside the
// valid bcrypt range fall back to the default cost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt hash of plaintext. Empty input is rejected with
// common.ErrInvalidInput.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", common.ErrInvalidInput
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify compares plaintext against a stored hash. A mismatch returns
// (false, nil). A stored hash bcrypt cannot parse returns
// common.ErrCorruptCredential so callers can log the integrity fault
// separately from an ordinary wrong password.
func (h *Hasher) Verify(plaintext, hashValue string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashValue), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, common.ErrCorruptCredential
}
