// Package hash provides one-way password hashing.
package hash

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrTooLong is returned for passwords bcrypt cannot hash (over 72 bytes).
var ErrTooLong = errors.New("hash: password exceeds 72 bytes")

// Cost is the bcrypt work factor. Tests lower it to bcrypt.MinCost.
var Cost = bcrypt.DefaultCost

// Password returns a salted bcrypt hash of plain. Each call draws a fresh
// salt, so hashing the same input twice yields different strings.
func Password(plain string) (string, error) {
	if len(plain) > 72 {
		return "", ErrTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	return string(b), err
}

// Check reports whether plain matches hashed.
func Check(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
