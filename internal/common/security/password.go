package security

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the 10 rounds the original service used.
const bcryptCost = 10

// HashPassword computes a salted bcrypt hash of the plaintext password.
// The salt is generated per call, so hashing the same password twice
// yields different outputs.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// CheckPasswordHash reports whether the plaintext password matches the hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
