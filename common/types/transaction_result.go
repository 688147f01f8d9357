package types

import (
	"github.com/spacemeshos/go-scale"
	"go.uber.org/zap/zapcore"
)

const (
	// MaxResultMessage limits the size of the failure message.
	MaxResultMessage = 1024
	// MaxResultLogs limits the number of log lines kept for a transaction.
	MaxResultLogs = 4096
	// MaxResultAccounts is the largest number of accounts a transaction can modify.
	MaxResultAccounts = MaxTransactionInstructions * MaxInstructionAccounts
)

// TransactionStatus is the outcome of the applied transaction.
type TransactionStatus uint8

const (
	// TransactionSuccess is a status for a transaction where every instruction succeeded.
	TransactionSuccess TransactionStatus = iota
	// TransactionFailure is a status for a transaction that was aborted without state changes.
	TransactionFailure
)

// String implements human readable representation of the status.
func (t TransactionStatus) String() string {
	switch t {
	case TransactionSuccess:
		return "success"
	case TransactionFailure:
		return "failure"
	}
	return "unknown"
}

// EncodeScale implements scale codec interface.
func (t TransactionStatus) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeCompact8(e, uint8(t))
}

// DecodeScale implements scale codec interface.
func (t TransactionStatus) DecodeScale(d *scale.Decoder) (uint8, int, error) {
	return scale.DecodeCompact8(d)
}

// TransactionResult is created after the transaction is applied.
type TransactionResult struct {
	ID           TransactionID
	Slot         Slot
	Status       TransactionStatus
	Message      string `scale:"max=1024"`
	ComputeUnits uint64
	// Logs are the lines emitted by the runtime and by the invoked programs.
	Logs []string `scale:"max=4096"`
	// Accounts contains keys of the accounts that were modified.
	Accounts []Pubkey `scale:"max=1024"`
}

// EncodeScale implements scale codec interface.
func (r *TransactionResult) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := r.ID.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeCompact64(enc, uint64(r.Slot))
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := r.Status.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeStringWithLimit(enc, r.Message, MaxResultMessage)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeCompact64(enc, r.ComputeUnits)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeLen(enc, uint32(len(r.Logs)), MaxResultLogs)
		if err != nil {
			return total, err
		}
		total += n
		for i := range r.Logs {
			n, err := scale.EncodeString(enc, r.Logs[i])
			if err != nil {
				return total, err
			}
			total += n
		}
	}
	{
		n, err := scale.EncodeLen(enc, uint32(len(r.Accounts)), MaxResultAccounts)
		if err != nil {
			return total, err
		}
		total += n
		for i := range r.Accounts {
			n, err := EncodePubkey(enc, &r.Accounts[i])
			if err != nil {
				return total, err
			}
			total += n
		}
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (r *TransactionResult) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		n, err := r.ID.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		field, n, err := scale.DecodeCompact64(dec)
		if err != nil {
			return total, err
		}
		total += n
		r.Slot = Slot(field)
	}
	{
		field, n, err := r.Status.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
		r.Status = TransactionStatus(field)
	}
	{
		field, n, err := scale.DecodeStringWithLimit(dec, MaxResultMessage)
		if err != nil {
			return total, err
		}
		total += n
		r.Message = field
	}
	{
		field, n, err := scale.DecodeCompact64(dec)
		if err != nil {
			return total, err
		}
		total += n
		r.ComputeUnits = field
	}
	{
		length, n, err := scale.DecodeLen(dec, MaxResultLogs)
		if err != nil {
			return total, err
		}
		total += n
		if length > 0 {
			r.Logs = make([]string, length)
		}
		for i := range r.Logs {
			field, n, err := scale.DecodeString(dec)
			if err != nil {
				return total, err
			}
			total += n
			r.Logs[i] = field
		}
	}
	{
		length, n, err := scale.DecodeLen(dec, MaxResultAccounts)
		if err != nil {
			return total, err
		}
		total += n
		if length > 0 {
			r.Accounts = make([]Pubkey, length)
		}
		for i := range r.Accounts {
			n, err := DecodePubkey(dec, &r.Accounts[i])
			if err != nil {
				return total, err
			}
			total += n
		}
	}
	return total, nil
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (r *TransactionResult) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("id", r.ID.String())
	encoder.AddUint64("slot", uint64(r.Slot))
	encoder.AddString("status", r.Status.String())
	if r.Status != TransactionSuccess {
		encoder.AddString("message", r.Message)
	}
	encoder.AddUint64("compute_units", r.ComputeUnits)
	encoder.AddArray("accounts", zapcore.ArrayMarshalerFunc(func(encoder zapcore.ArrayEncoder) error {
		for i := range r.Accounts {
			encoder.AppendString(r.Accounts[i].String())
		}
		return nil
	}))
	return nil
}
