package auth

//go:generate mockgen -source=hash.go -destination=mock_hash.go -package=auth

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"
)

type HashServiceInterface interface {
	HashPassword(password, salt string) (string, error)
	ComparePassword(hashedPassword, password, salt string) bool
}

// HashService hashes passwords as lowercase hex SHA-512 of password followed by salt.
type HashService struct{}

func (h *HashService) HashPassword(password, salt string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	if salt == "" {
		return "", errors.New("salt cannot be empty")
	}
	sum := sha512.Sum512([]byte(password + salt))
	return hex.EncodeToString(sum[:]), nil
}

func (h *HashService) ComparePassword(hashedPassword, password, salt string) bool {
	hash, err := h.HashPassword(password, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(hash), []byte(strings.ToLower(hashedPassword))) == 1
}
