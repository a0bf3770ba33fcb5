package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted one-way digest of the plaintext. bcrypt
// embeds a fresh random salt, so hashing the same password twice yields
// different digests.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a plaintext password against its stored digest.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
