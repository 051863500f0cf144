package domain

// AccountSlot is one of the fixed local storage locations. A slot is either
// fully empty (Account == nil) or fully bound, never anything in between.
type AccountSlot struct {
	Slot    int      `json:"slot"`
	Account *Account `json:"account,omitempty"`
}

func (s AccountSlot) IsEmpty() bool {
	return s.Account == nil
}

// Clone returns a deep copy so callers can never reach the registry's
// in-memory state through a returned slice.
func (s AccountSlot) Clone() AccountSlot {
	out := AccountSlot{Slot: s.Slot}
	if s.Account != nil {
		account := *s.Account
		out.Account = &account
	}
	return out
}
