package types

import (
	"fmt"

	"github.com/spacemeshos/go-scale"

	"github.com/aicredit/go-aicredit/codec"
	"github.com/aicredit/go-aicredit/hash"
)

// MaxTransactionInstructions limits the number of instructions in a single transaction.
const MaxTransactionInstructions = 16

// TransactionID is a blake3 digest of the encoded transaction.
type TransactionID Hash32

// EmptyTransactionID is a zeroed id.
var EmptyTransactionID = TransactionID{}

// String implements fmt.Stringer.
func (id TransactionID) String() string { return Hash32(id).String() }

// ShortString returns a prefix of the hex representation.
func (id TransactionID) ShortString() string { return Hash32(id).ShortString() }

// Bytes returns the underlying byte slice.
func (id TransactionID) Bytes() []byte { return id[:] }

// EncodeScale implements scale codec interface.
func (id *TransactionID) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, id[:])
}

// DecodeScale implements scale codec interface.
func (id *TransactionID) DecodeScale(d *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(d, id[:])
}

// Transaction is an ordered list of instructions applied atomically.
//
// Nonce is chosen by the submitter and only makes otherwise identical transactions distinct.
type Transaction struct {
	Nonce        uint64
	Instructions []Instruction
}

// ID computes the transaction id.
func (t *Transaction) ID() TransactionID {
	buf, err := codec.Encode(t)
	if err != nil {
		panic(fmt.Sprintf("encode transaction: %v", err))
	}
	return TransactionID(hash.Sum(buf))
}

// EncodeScale implements scale codec interface.
func (t *Transaction) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := scale.EncodeCompact64(enc, t.Nonce)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeCompact32(enc, uint32(len(t.Instructions)))
		if err != nil {
			return total, err
		}
		total += n
		for i := range t.Instructions {
			n, err := t.Instructions[i].EncodeScale(enc)
			if err != nil {
				return total, err
			}
			total += n
		}
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (t *Transaction) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		field, n, err := scale.DecodeCompact64(dec)
		if err != nil {
			return total, err
		}
		total += n
		t.Nonce = field
	}
	{
		length, n, err := scale.DecodeCompact32(dec)
		if err != nil {
			return total, err
		}
		total += n
		if length > MaxTransactionInstructions {
			return total, fmt.Errorf("transaction has %d instructions, max %d",
				length, MaxTransactionInstructions)
		}
		t.Instructions = make([]Instruction, length)
		for i := range t.Instructions {
			n, err := t.Instructions[i].DecodeScale(dec)
			if err != nil {
				return total, err
			}
			total += n
		}
	}
	return total, nil
}
