// Package hasher turns a password into a fixed-length lowercase hex digest.
//
// The digest is unsalted and single-round. It is fine for a demo and unfit
// for storing real credentials.
package hasher

import (
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"sort"
	"strings"

	"login-test/internal/errors"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

const (
	SHA512     = "sha512"
	SHA3_512   = "sha3-512"
	BLAKE2b512 = "blake2b-512"

	// DigestHexLen is the length of every digest string: 64 bytes, two hex
	// characters each.
	DigestHexLen = 128
)

var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

var constructors = map[string]func() hash.Hash{
	SHA512:   sha512.New,
	SHA3_512: sha3.New512,
	BLAKE2b512: func() hash.Hash {
		// Only fails for keys longer than 64 bytes.
		h, _ := blake2b.New512(nil)
		return h
	},
}

type Hasher struct {
	algorithm string
	newHash   func() hash.Hash
}

// New returns a Hasher for the named algorithm. An empty name selects SHA-512.
func New(algorithm string) (*Hasher, error) {
	if algorithm == "" {
		algorithm = SHA512
	}

	ctor, ok := constructors[algorithm]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q (supported: %s)", algorithm, strings.Join(Algorithms(), ", "))
	}

	return &Hasher{algorithm: algorithm, newHash: ctor}, nil
}

// Default returns the SHA-512 hasher.
func Default() *Hasher {
	return &Hasher{algorithm: SHA512, newHash: sha512.New}
}

func (h *Hasher) Algorithm() string {
	return h.algorithm
}

// Hash is total: every byte sequence, including nil, has a digest.
func (h *Hasher) Hash(password []byte) string {
	d := h.newHash()
	d.Write(password)
	return hex.EncodeToString(d.Sum(nil))
}

// Hash digests password with SHA-512.
func Hash(password []byte) string {
	sum := sha512.Sum512(password)
	return hex.EncodeToString(sum[:])
}

// Algorithms lists the supported algorithm names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
