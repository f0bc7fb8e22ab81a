package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordCostRoundTrip(t *testing.T) {
	hash, err := HashPasswordCost("admin123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "admin123" {
		t.Fatalf("expected hashed value, got plaintext")
	}
	if !CheckPassword(hash, "admin123") {
		t.Errorf("expected password to match its hash")
	}
	if CheckPassword(hash, "password123") {
		t.Errorf("expected different password to be rejected")
	}
}

func TestHashPasswordCostOutOfRangeUsesDefault(t *testing.T) {
	hash, err := HashPasswordCost("x", bcrypt.MaxCost+1)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("cost failed: %v", err)
	}
	if cost != BcryptCost {
		t.Errorf("expected cost %d, got %d", BcryptCost, cost)
	}
}
