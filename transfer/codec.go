//go:generate go run go.uber.org/mock/mockgen -source=codec.go -destination=../mocks/mock_codec.go -package=mocks
package transfer

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"strings"

	"account-vault/domain"
	"account-vault/errors"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// Define Argon2 parameters based on OWASP/CNIL recommendations
const (
	Memory      = 64 * 1024 // 64 MB
	Iterations  = 3
	Parallelism = 2
	SaltLength  = 16
	KeyLength   = chacha20poly1305.KeySize
)

// versionPrefix identifies the envelope format. Payloads produced by a newer
// incompatible export side carry a different prefix and are rejected cleanly.
const versionPrefix = "avt1"

// ICodec turns an account into an opaque transfer payload and back.
// Every payload producer (paste, file, a future camera scan) feeds the same
// Decode contract; there is no per-source decoding path.
type ICodec interface {
	Encode(account domain.Account) (string, error)
	Decode(payload string) (domain.Account, error)
}

// Codec seals the account JSON with XChaCha20-Poly1305 under a key derived
// from the shared transfer secret via Argon2id. The salt travels inside the
// payload, so Decode is a pure function of (payload, secret).
type Codec struct {
	secret []byte
}

func NewCodec(secret string) ICodec {
	return &Codec{secret: []byte(secret)}
}

// Encode produces "avt1" + base58(salt || nonce || ciphertext).
func (c *Codec) Encode(account domain.Account) (string, error) {
	plaintext, err := json.Marshal(account)
	if err != nil {
		return "", err
	}

	salt := make([]byte, SaltLength)
	if _, err = rand.Read(salt); err != nil {
		return "", err
	}

	aead, err := chacha20poly1305.NewX(c.deriveKey(salt))
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err = rand.Read(nonce); err != nil {
		return "", err
	}

	// The version prefix is bound as additional data so it cannot be
	// swapped without breaking the tag.
	ciphertext := aead.Seal(nil, nonce, plaintext, []byte(versionPrefix))

	blob := make([]byte, 0, len(salt)+len(nonce)+len(ciphertext))
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = append(blob, ciphertext...)

	return versionPrefix + base58.Encode(blob), nil
}

// Decode reverses Encode. Every malformed, corrupted or incompatible input
// maps to ErrDecode; the registry is never reached with a partial account.
func (c *Codec) Decode(payload string) (domain.Account, error) {
	payload = strings.TrimSpace(payload)
	if !strings.HasPrefix(payload, versionPrefix) {
		return domain.Account{}, fmt.Errorf("%w: unsupported payload version", errors.ErrDecode)
	}

	blob, err := base58.Decode(payload[len(versionPrefix):])
	if err != nil {
		return domain.Account{}, fmt.Errorf("%w: %v", errors.ErrDecode, err)
	}
	if len(blob) < SaltLength+chacha20poly1305.NonceSizeX+chacha20poly1305.Overhead {
		return domain.Account{}, fmt.Errorf("%w: payload truncated", errors.ErrDecode)
	}

	salt := blob[:SaltLength]
	nonce := blob[SaltLength : SaltLength+chacha20poly1305.NonceSizeX]
	ciphertext := blob[SaltLength+chacha20poly1305.NonceSizeX:]

	aead, err := chacha20poly1305.NewX(c.deriveKey(salt))
	if err != nil {
		return domain.Account{}, err
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, []byte(versionPrefix))
	if err != nil {
		// Wrong secret and tampering are indistinguishable here on purpose.
		return domain.Account{}, fmt.Errorf("%w: authentication failed", errors.ErrDecode)
	}

	var account domain.Account
	if err = json.Unmarshal(plaintext, &account); err != nil {
		return domain.Account{}, fmt.Errorf("%w: %v", errors.ErrDecode, err)
	}
	if err = account.Validate(); err != nil {
		return domain.Account{}, fmt.Errorf("%w: %v", errors.ErrDecode, err)
	}
	return account, nil
}

func (c *Codec) deriveKey(salt []byte) []byte {
	return argon2.IDKey(c.secret, salt, Iterations, Memory, Parallelism, KeyLength)
}
