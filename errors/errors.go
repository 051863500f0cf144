package errors

import "fmt"

var (
	ErrInvalidSlot        = fmt.Errorf("slot does not exist")
	ErrSlotOccupied       = fmt.Errorf("slot is already occupied")
	ErrSlotAlreadyEmpty   = fmt.Errorf("slot is already empty")
	ErrAllSlotsOccupied   = fmt.Errorf("all slots are occupied")
	ErrEmptyPayload       = fmt.Errorf("transfer payload is empty")
	ErrDecode             = fmt.Errorf("transfer payload could not be decoded")
	ErrPersistenceFailure = fmt.Errorf("slot configuration could not be persisted")
	ErrInvalidAccount     = fmt.Errorf("account record is invalid")
	ErrAttemptFinished    = fmt.Errorf("import attempt already finished")
)
