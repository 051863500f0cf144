package services

import (
	"log/slog"

	"account-vault/domain"
	"account-vault/errors"
	"account-vault/transfer"
)

// AccountService covers the local side of the account lifecycle: creating a
// fresh account into an empty slot and exporting a bound one as a transfer
// payload for another device.
type AccountService struct {
	registry IRegistry
	codec    transfer.ICodec
	log      *slog.Logger
}

func NewAccountService(registry IRegistry, codec transfer.ICodec, log *slog.Logger) *AccountService {
	return &AccountService{registry: registry, codec: codec, log: log}
}

// Create mints a new account and binds it into the requested slot.
func (s *AccountService) Create(slot int, name, avatar string) (domain.Account, error) {
	account, err := domain.NewAccount(name, avatar)
	if err != nil {
		return domain.Account{}, err
	}
	if err = s.registry.BindAccount(slot, account); err != nil {
		return domain.Account{}, err
	}
	s.log.Info("Account created", "slot", slot, "account", account.ID)
	return account, nil
}

// Export encodes the account bound to the slot as an opaque payload.
func (s *AccountService) Export(slot int) (string, error) {
	slots := s.registry.ListSlots()
	if slot < 1 || slot > len(slots) {
		return "", errors.ErrInvalidSlot
	}
	if slots[slot-1].IsEmpty() {
		return "", errors.ErrSlotAlreadyEmpty
	}
	return s.codec.Encode(*slots[slot-1].Account)
}
