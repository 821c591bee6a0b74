package id

import (
	"crypto/rand"
	"encoding/hex"
)

// Len is the length of an id produced by NewID32.
const Len = 32

// NewID32 returns exactly 32 lowercase hex characters. The shell stamps one
// on every form it renders so a resubmitted form can be recognised.
func NewID32() string {
	b := make([]byte, Len/2)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// IsID32 reports whether s has the NewID32 shape.
func IsID32(s string) bool {
	if len(s) != Len {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
