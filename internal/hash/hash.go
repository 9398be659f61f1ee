// Package hash computes content fingerprints for tracked files.
package hash

import (
	"fmt"
	"os"

	"github.com/twmb/murmur3"
)

// ErrUnsupportedAlgorithm is returned when a config names an algorithm
// with no registered hasher.
var ErrUnsupportedAlgorithm = fmt.Errorf("unsupported algorithm")

// Hasher turns file content into a fixed-width lowercase hex fingerprint.
type Hasher interface {
	Sum(data []byte) string
	Name() string
}

var hashers = map[string]Hasher{
	"murmur128": murmur128{},
}

// Lookup resolves an algorithm name to its Hasher. Unknown names fail
// here, before any scanning starts.
func Lookup(name string) (Hasher, error) {
	h, ok := hashers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, name)
	}

	return h, nil
}

// File hashes the full content of the file at path.
func File(path string, h Hasher) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return h.Sum(data), nil
}

// murmur128 is the default fingerprint: MurmurHash3 x64 128-bit,
// rendered as the 32-hex-char big-endian form of the 128-bit value.
type murmur128 struct{}

func (murmur128) Sum(data []byte) string {
	h1, h2 := murmur3.Sum128(data)
	return fmt.Sprintf("%016x%016x", h2, h1)
}

func (murmur128) Name() string {
	return "murmur128"
}
