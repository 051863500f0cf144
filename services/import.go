package services

import (
	"log/slog"
	"strings"

	"account-vault/domain"
	"account-vault/errors"
	"account-vault/transfer"

	"github.com/google/uuid"
)

// AttemptState tracks a single import attempt. Bound and Failed are terminal:
// retrying means beginning a fresh attempt, there is no resumable state.
type AttemptState string

const (
	StateAwaitingPayload AttemptState = "AWAITING_PAYLOAD"
	StateDecoding        AttemptState = "DECODING"
	StateBound           AttemptState = "BOUND"
	StateFailed          AttemptState = "FAILED"
)

// Attempt is one pass through AwaitingPayload -> Decoding -> Bound | Failed.
type Attempt struct {
	ID    string
	Slot  int
	state AttemptState
}

func (a *Attempt) State() AttemptState {
	return a.state
}

// ImportService turns an externally produced transfer payload into a bound
// account. It never mutates the registry on a failed decode and never
// retries on its own.
type ImportService struct {
	registry IRegistry
	codec    transfer.ICodec
	log      *slog.Logger
}

func NewImportService(registry IRegistry, codec transfer.ICodec, log *slog.Logger) *ImportService {
	return &ImportService{registry: registry, codec: codec, log: log}
}

// Begin opens an attempt targeting the given slot. Occupancy is checked here,
// before the caller is ever prompted for a payload: a full registry is
// rejected with ErrAllSlotsOccupied without any decode work.
func (s *ImportService) Begin(slot int) (*Attempt, error) {
	if _, err := s.registry.FindEmptySlot(); err != nil {
		return nil, err
	}

	slots := s.registry.ListSlots()
	if slot < 1 || slot > len(slots) {
		return nil, errors.ErrInvalidSlot
	}
	if !slots[slot-1].IsEmpty() {
		return nil, errors.ErrSlotOccupied
	}

	attempt := &Attempt{ID: uuid.New().String(), Slot: slot, state: StateAwaitingPayload}
	s.log.Debug("Import attempt opened", "attempt", attempt.ID, "slot", slot)
	return attempt, nil
}

// Submit feeds the payload into the attempt. The blank check runs before any
// decode; a decode failure leaves the registry untouched; a bind failure
// (the slot state changed since Begin) is propagated as-is.
func (s *ImportService) Submit(attempt *Attempt, payload string) (domain.Account, error) {
	if attempt.state != StateAwaitingPayload {
		return domain.Account{}, errors.ErrAttemptFinished
	}

	payload = strings.TrimSpace(payload)
	if payload == "" {
		attempt.state = StateFailed
		return domain.Account{}, errors.ErrEmptyPayload
	}

	attempt.state = StateDecoding
	account, err := s.codec.Decode(payload)
	if err != nil {
		attempt.state = StateFailed
		s.log.Debug("Import attempt failed to decode", "attempt", attempt.ID)
		return domain.Account{}, err
	}

	if err = s.registry.BindAccount(attempt.Slot, account); err != nil {
		attempt.state = StateFailed
		return domain.Account{}, err
	}

	attempt.state = StateBound
	s.log.Info("Account imported", "attempt", attempt.ID, "slot", attempt.Slot, "account", account.ID)
	return account, nil
}

// Import is the one-shot path used when the payload is already at hand.
func (s *ImportService) Import(slot int, payload string) (domain.Account, error) {
	attempt, err := s.Begin(slot)
	if err != nil {
		return domain.Account{}, err
	}
	return s.Submit(attempt, payload)
}
