// Package cryptox implements the password digest policy: a deterministic,
// salted one-way transform of a plaintext password.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	"github.com/dmitrijs2005/addrkeeper/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	DefaultSaltSize       = 16
	MinSaltSize           = 8
	DefaultMaxPasswordLen = 1024
)

// DigestPolicy derives a password digest from a plaintext and a per-account
// salt. Implementations must be deterministic for fixed parameters.
type DigestPolicy interface {
	Digest(password string, salt []byte) (string, error)
	NewSalt() []byte
}

// Argon2Policy derives digests with argon2id.
type Argon2Policy struct {
	Time           uint32
	Memory         uint32 // KiB
	Threads        uint8
	KeyLen         uint32
	SaltSize       int
	MaxPasswordLen int
}

// DefaultArgon2Policy returns the parameters used for stored accounts.
// Changing them invalidates every existing digest.
func DefaultArgon2Policy() Argon2Policy {
	return Argon2Policy{
		Time:           1,
		Memory:         64 * 1024,
		Threads:        4,
		KeyLen:         32,
		SaltSize:       DefaultSaltSize,
		MaxPasswordLen: DefaultMaxPasswordLen,
	}
}

// Digest returns base64(argon2id(password, salt)). It fails with
// common.ErrHashFailure when the input cannot be hashed under the policy.
func (p Argon2Policy) Digest(password string, salt []byte) (string, error) {
	if !utf8.ValidString(password) {
		return "", fmt.Errorf("%w: password is not valid UTF-8", common.ErrHashFailure)
	}
	if p.MaxPasswordLen > 0 && len(password) > p.MaxPasswordLen {
		return "", fmt.Errorf("%w: password longer than %d bytes", common.ErrHashFailure, p.MaxPasswordLen)
	}
	if len(salt) < MinSaltSize {
		return "", fmt.Errorf("%w: salt shorter than %d bytes", common.ErrHashFailure, MinSaltSize)
	}
	if p.Time == 0 || p.Threads == 0 || p.KeyLen == 0 {
		return "", fmt.Errorf("%w: invalid argon2 parameters", common.ErrHashFailure)
	}

	key := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Threads, p.KeyLen)
	return base64.RawStdEncoding.EncodeToString(key), nil
}

// NewSalt returns a fresh random salt of the policy's size.
func (p Argon2Policy) NewSalt() []byte {
	size := p.SaltSize
	if size < MinSaltSize {
		size = DefaultSaltSize
	}
	return common.GenerateRandByteArray(size)
}

// EqualDigest compares two digests in constant time.
func EqualDigest(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
