// pkg/crypto/bcrypt.go

package crypto

import (
	cerr "github.com/cockroachdb/errors"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCost is returned for bcrypt costs outside the range the
// algorithm accepts.
var ErrInvalidCost = cerr.Newf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)

// HashPassword hashes the given password using bcrypt at the default cost (10).
func HashPassword(password string) (string, error) {
	return HashPasswordWithCost(password, bcrypt.DefaultCost)
}

// HashPasswordWithCost hashes a password with a custom cost.
func HashPasswordWithCost(password string, cost int) (string, error) {
	return HashBytesWithCost([]byte(password), cost)
}

// HashBytesWithCost is the []byte variant for callers that SecureZero
// the password afterwards.
func HashBytesWithCost(password []byte, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return "", ErrInvalidCost
	}
	hash, err := bcrypt.GenerateFromPassword(password, cost)
	if err != nil {
		return "", cerr.Wrap(err, "bcrypt hash failed")
	}
	return string(hash), nil
}

// ComparePassword checks if password matches the bcrypt hash.
func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// ComparePasswordBool returns true if password matches hash, false
// otherwise. Only use when you don't care about *why* it failed.
func ComparePasswordBool(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsHashCostWeak checks if a hash uses less than minCost rounds
// (e.g., upgrade on login).
func IsHashCostWeak(hash string, minCost int) bool {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return true // treat errors as "unsafe"
	}
	return cost < minCost
}
