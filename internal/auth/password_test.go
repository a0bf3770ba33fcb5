package auth

import "testing"

func TestHashPasswordNeverEqualsPlaintext(t *testing.T) {
	hash, err := HashPassword("pw1", 4)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "pw1" {
		t.Fatal("digest equals plaintext")
	}
}

func TestHashPasswordSaltsPerCall(t *testing.T) {
	first, err := HashPassword("same-password", 4)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := HashPassword("same-password", 4)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same plaintext are identical; salt is not fresh")
	}
}

func TestComparePassword(t *testing.T) {
	hash, err := HashPassword("correct horse", 4)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if err := ComparePassword(hash, "correct horse"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if err := ComparePassword(hash, "battery staple"); err == nil {
		t.Fatal("expected mismatch for wrong password")
	}
}
