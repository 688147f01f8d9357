package types

import (
	"encoding/hex"

	"go.uber.org/zap/zapcore"
)

// Slot is a sequence number of the batch of transactions applied together.
type Slot uint64

// Account is the state of the account after the Slot was applied.
//
// Data is opaque to the runtime and interpreted only by the Owner program.
type Account struct {
	Key        Pubkey
	Owner      Pubkey
	Lamports   uint64
	Executable bool
	Data       []byte
	Slot       Slot
}

// Copy returns a deep copy of the account.
func (a *Account) Copy() Account {
	cp := *a
	if a.Data != nil {
		cp.Data = make([]byte, len(a.Data))
		copy(cp.Data, a.Data)
	}
	return cp
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (a *Account) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("key", a.Key.String())
	encoder.AddString("owner", a.Owner.String())
	encoder.AddUint64("lamports", a.Lamports)
	encoder.AddBool("executable", a.Executable)
	encoder.AddString("data", hex.EncodeToString(a.Data))
	encoder.AddUint64("slot", uint64(a.Slot))
	return nil
}
