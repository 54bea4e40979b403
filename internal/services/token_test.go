package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func parseClaims(t *testing.T, tok string, secret []byte) *Claims {
	t.Helper()
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if !parsed.Valid {
		t.Fatal("token not valid")
	}
	return claims
}

func TestGenerateToken_CarriesUserID(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	userID := "account-123"

	tok, err := GenerateToken(userID, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims := parseClaims(t, tok, secret)
	if claims.UserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", claims.UserID, userID)
	}
}

func TestGenerateToken_SetsExpiry(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u1", []byte("secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims := parseClaims(t, tok, []byte("secret"))
	if claims.ExpiresAt == nil {
		t.Fatal("expiry claim missing")
	}
	if until := time.Until(claims.ExpiresAt.Time); until <= 0 || until > time.Hour {
		t.Fatalf("expiry out of range: %v", until)
	}
}

func TestGenerateToken_RejectedWithWrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u2", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = jwt.ParseWithClaims(tok, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	if err == nil {
		t.Fatal("expected error for invalid signature, got nil")
	}
}
