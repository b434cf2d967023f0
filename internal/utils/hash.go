package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// GenerateHash erzeugt einen bcrypt-Hash des Passworts.
func GenerateHash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("Passwort hashen: %w", err)
	}
	return string(hash), nil
}

// VerifyHash vergleicht Klartext-Passwort und Hash. false bedeutet: falsches
// Passwort, nie ein Systemfehler.
func VerifyHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
