package dump

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"time"

	"paranoid/pkg/spec"

	"golang.org/x/crypto/blake2b"
)

var (
	ErrDigestMismatch = errors.New("dump: digest mismatch")
	ErrSizeMismatch   = errors.New("dump: size mismatch")
)

// Manifest describes one capture.
type Manifest struct {
	Mode      string    `json:"mode"`
	Port      string    `json:"port,omitempty"`
	Started   time.Time `json:"started"`
	Blocks    int       `json:"blocks"`
	BlockSize int       `json:"block_size"`
	Bytes     int64     `json:"bytes"`
	Digest    string    `json:"blake2b_256"`
}

// ManifestPath returns where the manifest for dumpPath lives.
func ManifestPath(dumpPath string) string {
	return dumpPath + spec.ManifestSuffix
}

// NewDigest returns the hash used for capture digests.
func NewDigest() hash.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		// only fails for keys longer than 64 bytes
		panic(err)
	}
	return h
}

// SumHex formats the digest of h.
func SumHex(h hash.Hash) string {
	return hex.EncodeToString(h.Sum(nil))
}

func WriteManifest(path string, m Manifest) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0644)
}

func ReadManifest(path string) (Manifest, error) {
	var m Manifest
	b, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	if err := json.Unmarshal(b, &m); err != nil {
		return m, fmt.Errorf("dump: parse manifest %s: %w", path, err)
	}
	return m, nil
}

// Verify hashes r and compares it against the manifest.
func Verify(r io.Reader, m Manifest) error {
	h := NewDigest()
	n, err := io.Copy(h, r)
	if err != nil {
		return err
	}
	if n != m.Bytes {
		return fmt.Errorf("%w: %d bytes, manifest says %d", ErrSizeMismatch, n, m.Bytes)
	}
	if got := SumHex(h); got != m.Digest {
		return fmt.Errorf("%w: %s, manifest says %s", ErrDigestMismatch, got, m.Digest)
	}
	return nil
}

// VerifyFile checks dumpPath against its manifest next to it.
func VerifyFile(dumpPath string) (Manifest, error) {
	m, err := ReadManifest(ManifestPath(dumpPath))
	if err != nil {
		return m, err
	}
	f, err := os.Open(dumpPath)
	if err != nil {
		return m, err
	}
	defer f.Close()
	return m, Verify(f, m)
}
