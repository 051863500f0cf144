//go:generate go run go.uber.org/mock/mockgen -source=slots.go -destination=../mocks/mock_slot_store.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"account-vault/domain"

	"github.com/dgraph-io/badger/v4"
)

type ISlotStore interface {
	Load() ([]domain.AccountSlot, error)
	Save(slots []domain.AccountSlot) error
}

type SlotStore struct {
	db        *badger.DB
	log       *slog.Logger
	slotCount int
}

func NewSlotStore(db *badger.DB, log *slog.Logger, slotCount int) ISlotStore {
	return &SlotStore{db: db, log: log, slotCount: slotCount}
}

// slotKey pads the slot number so keys iterate in slot order.
func slotKey(slot int) []byte {
	return []byte(fmt.Sprintf("slot:%03d", slot))
}

// Load materializes the full slot configuration: exactly slotCount entries in
// slot order. A key missing from Badger (first run, or a slot never bound) is
// returned as an empty slot rather than an error.
func (s SlotStore) Load() ([]domain.AccountSlot, error) {
	slots := make([]domain.AccountSlot, 0, s.slotCount)

	err := s.db.View(func(txn *badger.Txn) error {
		for number := 1; number <= s.slotCount; number++ {
			item, err := txn.Get(slotKey(number))
			if err == badger.ErrKeyNotFound {
				slots = append(slots, domain.AccountSlot{Slot: number})
				continue
			}
			if err != nil {
				return err
			}

			var slot domain.AccountSlot
			if err = item.Value(func(val []byte) error {
				return json.Unmarshal(val, &slot)
			}); err != nil {
				return fmt.Errorf("slot %d is corrupted: %w", number, err)
			}
			// The key is authoritative for the slot number.
			slot.Slot = number
			slots = append(slots, slot)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("Slot configuration loaded", "slots", len(slots))
	return slots, nil
}

// Save persists the whole configuration in a single transaction so a crash
// can never leave a half-written layout behind.
func (s SlotStore) Save(slots []domain.AccountSlot) error {
	return s.db.Update(func(txn *badger.Txn) error {
		for _, slot := range slots {
			data, err := json.Marshal(slot)
			if err != nil {
				return err
			}
			if err = txn.Set(slotKey(slot.Slot), data); err != nil {
				return err
			}
		}
		return nil
	})
}
