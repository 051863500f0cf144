package domain

import (
	"testing"
	"time"

	"account-vault/errors"

	"github.com/stretchr/testify/require"
)

func Test_Initials_Derivation(t *testing.T) {
	req := require.New(t)

	req.Equal("A", Initials("alice"))
	req.Equal("AB", Initials("Alice Bright"))
	req.Equal("AB", Initials("alice bright carter"))
	req.Equal("", Initials(""))
	req.Equal("", Initials("   "))
	req.Equal("ÉD", Initials("élise durand"))
}

func Test_DisplayAvatar_Prefers_Explicit_Token(t *testing.T) {
	req := require.New(t)

	account := Account{Name: "Alice Bright", Avatar: "🦊"}
	req.Equal("🦊", account.DisplayAvatar())

	account.Avatar = ""
	req.Equal("AB", account.DisplayAvatar())
}

func Test_NewAccount_Generates_Stable_Unique_IDs(t *testing.T) {
	req := require.New(t)

	first, err := NewAccount("Alice", "")
	req.NoError(err)
	second, err := NewAccount("Alice", "")
	req.NoError(err)

	req.NotEmpty(first.ID)
	req.NotEqual(first.ID, second.ID)
	req.False(first.CreatedAt.IsZero())
	req.Equal(time.UTC, first.CreatedAt.Location())
	req.NoError(first.Validate())
}

func Test_Account_Validation_Rejects_Incomplete_Records(t *testing.T) {
	req := require.New(t)

	account, err := NewAccount("Alice", "")
	req.NoError(err)

	nameless := account
	nameless.Name = ""
	req.ErrorIs(nameless.Validate(), errors.ErrInvalidAccount)

	shortID := account
	shortID.ID = "abc"
	req.ErrorIs(shortID.Validate(), errors.ErrInvalidAccount)
}
