package sdk

import (
	"github.com/aicredit/go-aicredit/common/types"
)

// Opt modifies Options.
type Opt func(*Options)

// Defaults returns default Options.
func Defaults() *Options {
	return &Options{}
}

// Options to modify common instruction fields.
type Options struct {
	// Trailing is appended to the instruction data.
	Trailing []byte
	// Signers are the accounts that are marked as signers in addition to the required ones.
	Signers []types.Pubkey
}

// WithTrailing appends raw bytes to the instruction data.
func WithTrailing(data []byte) Opt {
	return func(opts *Options) {
		opts.Trailing = append(opts.Trailing, data...)
	}
}

// WithSigner marks account as a signer.
func WithSigner(key types.Pubkey) Opt {
	return func(opts *Options) {
		opts.Signers = append(opts.Signers, key)
	}
}

// Apply options to the instruction.
func (o *Options) Apply(ix *types.Instruction) {
	ix.Data = append(ix.Data, o.Trailing...)
	for _, signer := range o.Signers {
		found := false
		for i := range ix.Accounts {
			if ix.Accounts[i].Pubkey == signer {
				ix.Accounts[i].IsSigner = true
				found = true
			}
		}
		if !found {
			ix.Accounts = append(ix.Accounts, types.NewAccountMeta(signer, false, true))
		}
	}
}

// Transaction wraps instructions into a transaction.
// Nonce distinguishes transactions with the same instructions.
func Transaction(nonce uint64, instructions ...types.Instruction) types.Transaction {
	return types.Transaction{Nonce: nonce, Instructions: instructions}
}
