//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=../mocks/mock_registry.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"sync"

	"account-vault/domain"
	"account-vault/errors"
	"account-vault/repositories"

	"github.com/samber/lo"
)

// IRegistry is the single source of truth for slot occupancy.
type IRegistry interface {
	ListSlots() []domain.AccountSlot
	FindEmptySlot() (int, error)
	BindAccount(slot int, account domain.Account) error
	UnbindAccount(slot int) error
}

// SlotRegistry keeps the slot configuration in memory and mirrors every
// successful mutation to the store. Binds and unbinds are serialized by a
// mutex: these are rare, user-initiated operations, so a single writer is
// enough and guarantees two concurrent binds can never claim the same slot.
type SlotRegistry struct {
	mu    sync.Mutex
	log   *slog.Logger
	store repositories.ISlotStore
	slots []domain.AccountSlot
}

// NewSlotRegistry loads the persisted configuration once; from then on the
// registry owns it.
func NewSlotRegistry(store repositories.ISlotStore, log *slog.Logger) (*SlotRegistry, error) {
	slots, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading slot configuration failed: %w", err)
	}
	return &SlotRegistry{log: log, store: store, slots: slots}, nil
}

// ListSlots returns all configured slots in slot order. The result is a deep
// copy: after a successful bind, callers refresh by calling ListSlots again
// instead of holding on to earlier results.
func (r *SlotRegistry) ListSlots() []domain.AccountSlot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return lo.Map(r.slots, func(slot domain.AccountSlot, _ int) domain.AccountSlot {
		return slot.Clone()
	})
}

// FindEmptySlot returns the lowest-numbered empty slot.
func (r *SlotRegistry) FindEmptySlot() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, slot := range r.slots {
		if slot.IsEmpty() {
			return slot.Slot, nil
		}
	}
	return 0, errors.ErrAllSlotsOccupied
}

// BindAccount is the single empty-to-occupied transition. The in-memory
// mutation and the persisted configuration move together: if the store
// rejects the save, the mutation is rolled back and the slot stays empty.
func (r *SlotRegistry) BindAccount(slot int, account domain.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	index, err := r.index(slot)
	if err != nil {
		return err
	}
	if !r.slots[index].IsEmpty() {
		return errors.ErrSlotOccupied
	}

	r.slots[index].Account = &account
	if err = r.store.Save(r.slots); err != nil {
		r.slots[index].Account = nil
		return fmt.Errorf("%w: %v", errors.ErrPersistenceFailure, err)
	}

	r.log.Info("Account bound", "slot", slot, "account", account.ID)
	return nil
}

// UnbindAccount frees a slot, with the same persist-or-rollback discipline.
func (r *SlotRegistry) UnbindAccount(slot int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	index, err := r.index(slot)
	if err != nil {
		return err
	}
	previous := r.slots[index].Account
	if previous == nil {
		return errors.ErrSlotAlreadyEmpty
	}

	r.slots[index].Account = nil
	if err = r.store.Save(r.slots); err != nil {
		r.slots[index].Account = previous
		return fmt.Errorf("%w: %v", errors.ErrPersistenceFailure, err)
	}

	r.log.Info("Account unbound", "slot", slot, "account", previous.ID)
	return nil
}

// index must be called with the mutex held.
func (r *SlotRegistry) index(slot int) (int, error) {
	if slot < 1 || slot > len(r.slots) {
		return 0, errors.ErrInvalidSlot
	}
	return slot - 1, nil
}
