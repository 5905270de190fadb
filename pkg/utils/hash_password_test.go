package utils

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(hash, ".") {
		t.Fatalf("hash %q missing salt separator", hash)
	}

	t.Run("matching password verifies", func(t *testing.T) {
		ok, err := VerifyPassword("correct horse battery staple", hash)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Error("expected match")
		}
	})

	t.Run("wrong password does not verify", func(t *testing.T) {
		ok, err := VerifyPassword("wrong password", hash)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected mismatch")
		}
	})

	t.Run("same password hashes differently each time", func(t *testing.T) {
		second, err := HashPassword("correct horse battery staple")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second == hash {
			t.Error("salts should differ between calls")
		}
	})
}

func TestHashPasswordRejectsBlank(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Error("blank password should be rejected")
	}
}

func TestVerifyPasswordBadEncoding(t *testing.T) {
	if _, err := VerifyPassword("password", "not-a-stored-hash"); err == nil {
		t.Error("missing separator should be an error")
	}
	if _, err := VerifyPassword("password", "!!!.!!!"); err == nil {
		t.Error("invalid base64 should be an error")
	}
}
