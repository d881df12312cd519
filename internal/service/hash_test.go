package service

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("s3cr3t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if digest == "s3cr3t" {
		t.Fatal("digest must not equal the plain-text password")
	}
	if !strings.HasPrefix(digest, "$2a$") {
		t.Errorf("expected bcrypt digest, got %s", digest)
	}

	if !hasher.Verify("s3cr3t", digest) {
		t.Error("expected matching password to verify")
	}
	if hasher.Verify("wrong", digest) {
		t.Error("expected mismatching password to fail verification")
	}
}

func TestPasswordHasher_DistinctSalts(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	first, _ := hasher.Hash("same-password")
	second, _ := hasher.Hash("same-password")

	if first == second {
		t.Error("expected distinct digests for the same password")
	}
}

func TestNewPasswordHasher_CostFallback(t *testing.T) {
	tests := []struct {
		name string
		cost int
	}{
		{"zero cost", 0},
		{"negative cost", -1},
		{"above max", bcrypt.MaxCost + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewPasswordHasher(tt.cost)
			if hasher.cost != bcrypt.DefaultCost {
				t.Errorf("expected fallback to default cost %d, got %d", bcrypt.DefaultCost, hasher.cost)
			}
		})
	}
}
