package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"account-vault/domain"
	"account-vault/errors"

	"github.com/gorilla/mux"
	"github.com/samber/lo"
)

type accountDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Avatar        string    `json:"avatar,omitempty"`
	DisplayAvatar string    `json:"display_avatar"`
	CreatedAt     time.Time `json:"created_at"`
}

type slotDTO struct {
	Slot    int         `json:"slot"`
	IsEmpty bool        `json:"is_empty"`
	Account *accountDTO `json:"account,omitempty"`
}

func toSlotDTO(slot domain.AccountSlot) slotDTO {
	dto := slotDTO{Slot: slot.Slot, IsEmpty: slot.IsEmpty()}
	if slot.Account != nil {
		dto.Account = &accountDTO{
			ID:            slot.Account.ID,
			Name:          slot.Account.Name,
			Avatar:        slot.Account.Avatar,
			DisplayAvatar: slot.Account.DisplayAvatar(),
			CreatedAt:     slot.Account.CreatedAt,
		}
	}
	return dto
}

// ListSlotsHandler returns every configured slot in slot order.
func (s *Server) ListSlotsHandler(w http.ResponseWriter, r *http.Request) {
	slots := s.registry.ListSlots()
	writeJSON(w, http.StatusOK, lo.Map(slots, func(slot domain.AccountSlot, _ int) slotDTO {
		return toSlotDTO(slot)
	}))
}

// FindEmptySlotHandler returns the lowest-numbered empty slot.
func (s *Server) FindEmptySlotHandler(w http.ResponseWriter, r *http.Request) {
	slot, err := s.registry.FindEmptySlot()
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"slot": slot})
}

type createAccountRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// CreateAccountHandler mints a new account into the given empty slot.
func (s *Server) CreateAccountHandler(w http.ResponseWriter, r *http.Request) {
	slot, ok := slotNumber(w, r)
	if !ok {
		return
	}
	var body createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	account, err := s.accounts.Create(slot, body.Name, body.Avatar)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSlotDTO(domain.AccountSlot{Slot: slot, Account: &account}))
}

type importAccountRequest struct {
	Payload string `json:"payload"`
}

// ImportAccountHandler installs an externally produced transfer payload.
func (s *Server) ImportAccountHandler(w http.ResponseWriter, r *http.Request) {
	slot, ok := slotNumber(w, r)
	if !ok {
		return
	}
	var body importAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	account, err := s.imports.Import(slot, body.Payload)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSlotDTO(domain.AccountSlot{Slot: slot, Account: &account}))
}

// ExportAccountHandler encodes the bound account as a transfer payload.
func (s *Server) ExportAccountHandler(w http.ResponseWriter, r *http.Request) {
	slot, ok := slotNumber(w, r)
	if !ok {
		return
	}
	payload, err := s.accounts.Export(slot)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"payload": payload})
}

// RemoveAccountHandler frees a slot.
func (s *Server) RemoveAccountHandler(w http.ResponseWriter, r *http.Request) {
	slot, ok := slotNumber(w, r)
	if !ok {
		return
	}
	if err := s.registry.UnbindAccount(slot); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func slotNumber(w http.ResponseWriter, r *http.Request) (int, bool) {
	slot, err := strconv.Atoi(mux.Vars(r)["slot"])
	if err != nil {
		http.Error(w, "invalid slot number", http.StatusBadRequest)
		return 0, false
	}
	return slot, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps each domain error to its own status so the caller can show
// a distinct, non-destructive notification per failure.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case stderrors.Is(err, errors.ErrInvalidSlot):
		status = http.StatusNotFound
	case stderrors.Is(err, errors.ErrSlotOccupied),
		stderrors.Is(err, errors.ErrAllSlotsOccupied),
		stderrors.Is(err, errors.ErrSlotAlreadyEmpty):
		status = http.StatusConflict
	case stderrors.Is(err, errors.ErrEmptyPayload),
		stderrors.Is(err, errors.ErrInvalidAccount):
		status = http.StatusBadRequest
	case stderrors.Is(err, errors.ErrDecode):
		status = http.StatusUnprocessableEntity
	case stderrors.Is(err, errors.ErrPersistenceFailure):
		s.log.Error("Persistence failure", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
