package domain

import (
	"crypto/ed25519"
	"fmt"
	"strings"
	"time"
	"unicode"

	"account-vault/errors"

	"github.com/go-playground/validator/v10"
	"github.com/mr-tron/base58"
)

var validate = validator.New()

// Account is one local identity held in a slot. The ID is the canonical
// handle: the base58 encoding of an ed25519 public key, so it survives a
// transfer between devices unchanged.
type Account struct {
	ID        string    `json:"id" validate:"required,min=32,max=64"`
	Name      string    `json:"name" validate:"required,max=64"`
	Avatar    string    `json:"avatar,omitempty" validate:"max=8"`
	CreatedAt time.Time `json:"created_at" validate:"required"`
}

// NewAccount mints a fresh identity: a new ed25519 keypair provides the ID,
// the private half is deliberately discarded (nothing in the registry signs).
func NewAccount(name, avatar string) (Account, error) {
	publicKey, _, err := ed25519.GenerateKey(nil)
	if err != nil {
		return Account{}, fmt.Errorf("keypair generation failed: %w", err)
	}

	account := Account{
		ID:        base58.Encode(publicKey),
		Name:      strings.TrimSpace(name),
		Avatar:    strings.TrimSpace(avatar),
		CreatedAt: time.Now().UTC(),
	}
	if err = account.Validate(); err != nil {
		return Account{}, err
	}
	return account, nil
}

// Validate checks structural rules (tags) and nothing domain-external.
func (a Account) Validate() error {
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidAccount, err)
	}
	return nil
}

// DisplayAvatar returns the explicit avatar token when present, otherwise
// initials derived from the name.
func (a Account) DisplayAvatar() string {
	if a.Avatar != "" {
		return a.Avatar
	}
	return Initials(a.Name)
}

// Initials builds a display token from a free-form name: first letter of
// each space-separated word, uppercased, truncated to 2 characters.
func Initials(name string) string {
	var initials []rune
	for _, word := range strings.Fields(name) {
		initials = append(initials, unicode.ToUpper([]rune(word)[0]))
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}
