package utils

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

var addressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// IsHexAddress reports whether s is a 0x-prefixed 20-byte hex address.
func IsHexAddress(s string) bool {
	return addressRe.MatchString(s)
}

// NewTransactionRef fabricates a 0x-prefixed 32-byte hex reference,
// standing in for a settlement transaction hash.
func NewTransactionRef() string {
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	return "0x" + hex.EncodeToString(buf)
}
