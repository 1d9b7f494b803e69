package utils

import (
	"crypto/rand"
	"regexp"
)

const cuidAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// CUIDs are 25-character tokens starting with 'c', as issued by the store.
var cuidPattern = regexp.MustCompile(`^c[a-z0-9]{24}$`)

// NewCUID generates a new CUID-shaped identifier.
func NewCUID() string {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}

	out := make([]byte, 25)
	out[0] = 'c'
	for i, v := range b {
		out[i+1] = cuidAlphabet[int(v)%len(cuidAlphabet)]
	}
	return string(out)
}

// IsCUID reports whether s is a valid CUID.
func IsCUID(s string) bool {
	return cuidPattern.MatchString(s)
}
