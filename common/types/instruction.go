package types

import (
	"fmt"

	"github.com/spacemeshos/go-scale"
)

const (
	// MaxInstructionData limits the size of the instruction payload.
	MaxInstructionData = 1232
	// MaxInstructionAccounts limits the number of accounts referenced by a single instruction.
	MaxInstructionAccounts = 64
)

// AccountMeta references an account from an instruction together with the access it requires.
type AccountMeta struct {
	Pubkey     Pubkey
	IsSigner   bool
	IsWritable bool
}

// NewAccountMeta returns AccountMeta for the key.
func NewAccountMeta(key Pubkey, writable, signer bool) AccountMeta {
	return AccountMeta{Pubkey: key, IsWritable: writable, IsSigner: signer}
}

func encodeBool(e *scale.Encoder, value bool) (int, error) {
	var b byte
	if value {
		b = 1
	}
	return scale.EncodeByte(e, b)
}

func decodeBool(d *scale.Decoder) (bool, int, error) {
	b, n, err := scale.DecodeByte(d)
	if err != nil {
		return false, n, err
	}
	switch b {
	case 0:
		return false, n, nil
	case 1:
		return true, n, nil
	}
	return false, n, fmt.Errorf("invalid bool value %d", b)
}

// EncodeScale implements scale codec interface.
func (m *AccountMeta) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := EncodePubkey(enc, &m.Pubkey)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := encodeBool(enc, m.IsSigner)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := encodeBool(enc, m.IsWritable)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (m *AccountMeta) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		n, err := DecodePubkey(dec, &m.Pubkey)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		field, n, err := decodeBool(dec)
		if err != nil {
			return total, err
		}
		total += n
		m.IsSigner = field
	}
	{
		field, n, err := decodeBool(dec)
		if err != nil {
			return total, err
		}
		total += n
		m.IsWritable = field
	}
	return total, nil
}

// Instruction invokes ProgramID with the positional Accounts and opaque Data.
type Instruction struct {
	ProgramID Pubkey
	Accounts  []AccountMeta
	Data      []byte
}

// EncodeScale implements scale codec interface.
// Limits are enforced only when decoding, so that id can be computed for any instruction.
func (i *Instruction) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := EncodePubkey(enc, &i.ProgramID)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeCompact32(enc, uint32(len(i.Accounts)))
		if err != nil {
			return total, err
		}
		total += n
		for j := range i.Accounts {
			n, err := i.Accounts[j].EncodeScale(enc)
			if err != nil {
				return total, err
			}
			total += n
		}
	}
	{
		n, err := scale.EncodeCompact32(enc, uint32(len(i.Data)))
		if err != nil {
			return total, err
		}
		total += n
		n, err = scale.EncodeByteArray(enc, i.Data)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (i *Instruction) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		n, err := DecodePubkey(dec, &i.ProgramID)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		length, n, err := scale.DecodeCompact32(dec)
		if err != nil {
			return total, err
		}
		total += n
		if length > MaxInstructionAccounts {
			return total, fmt.Errorf("instruction references %d accounts, max %d",
				length, MaxInstructionAccounts)
		}
		i.Accounts = make([]AccountMeta, length)
		for j := range i.Accounts {
			n, err := i.Accounts[j].DecodeScale(dec)
			if err != nil {
				return total, err
			}
			total += n
		}
	}
	{
		field, n, err := scale.DecodeByteSliceWithLimit(dec, MaxInstructionData)
		if err != nil {
			return total, err
		}
		total += n
		i.Data = field
	}
	return total, nil
}
