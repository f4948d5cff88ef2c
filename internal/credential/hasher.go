package credential

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	credentialerrors "go-payroll/internal/credential/errors"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

const (
	AlgorithmSHA256     = "sha256"
	AlgorithmSHA3256    = "sha3-256"
	AlgorithmBLAKE2b256 = "blake2b-256"
)

// Hasher turns a plaintext credential into a deterministic hex digest.
type Hasher interface {
	Algorithm() string
	Digest(plaintext string) string
}

type digestFunc func([]byte) [32]byte

type hasher struct {
	name string
	sum  digestFunc
}

func (h hasher) Algorithm() string { return h.name }

func (h hasher) Digest(plaintext string) string {
	sum := h.sum([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

var algorithms = map[string]digestFunc{
	AlgorithmSHA256:     sha256.Sum256,
	AlgorithmSHA3256:    sha3.Sum256,
	AlgorithmBLAKE2b256: blake2b.Sum256,
}

// NewHasher returns the hasher for algorithm. An empty name selects sha256.
// There is no plaintext fallback; an unknown name is an error.
func NewHasher(algorithm string) (Hasher, error) {
	name := strings.ToLower(strings.TrimSpace(algorithm))
	if name == "" {
		name = AlgorithmSHA256
	}

	sum, ok := algorithms[name]
	if !ok {
		return nil, credentialerrors.ErrUnsupportedAlgorithm.WithCause(
			fmt.Errorf("algorithm %q", algorithm),
		)
	}

	return hasher{name: name, sum: sum}, nil
}

// Matches reports whether plaintext hashes to digest.
func Matches(h Hasher, plaintext, digest string) bool {
	got := h.Digest(plaintext)
	return subtle.ConstantTimeCompare([]byte(got), []byte(digest)) == 1
}
