package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the default hashing cost for stored passwords
const BcryptCost = 12

// HashPasswordCost hashes a password with the given bcrypt cost.
// Costs outside bcrypt's accepted range fall back to BcryptCost.
func HashPasswordCost(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = BcryptCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether password matches the stored hash
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
