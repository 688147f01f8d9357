package core

import (
	"github.com/aicredit/go-aicredit/common/types"
)

type (
	// Pubkey is an alias to types.Pubkey.
	Pubkey = types.Pubkey
	// Account is an alias to types.Account.
	Account = types.Account
	// Instruction is an alias to types.Instruction.
	Instruction = types.Instruction
)

//go:generate mockgen -package=mocks -destination=./mocks/program.go github.com/aicredit/go-aicredit/vm/core Program

// Program is executed by the runtime for every instruction addressed to its id.
//
// Accounts are passed in the order they were listed by the instruction. Only Data
// of the account may be modified, and only if the account is writable and owned by the program.
type Program interface {
	Process(ctx *Context, accounts []*AccountInfo, data []byte) error
}

// AccountInfo is a view of the account borrowed by the program for a single instruction.
type AccountInfo struct {
	Key        Pubkey
	Owner      Pubkey
	Lamports   uint64
	Executable bool
	IsSigner   bool
	IsWritable bool
	Data       []byte
}

//go:generate mockgen -package=mocks -destination=./mocks/loader.go github.com/aicredit/go-aicredit/vm/core AccountLoader

// AccountLoader is an interface for loading accounts.
type AccountLoader interface {
	Get(Pubkey) (Account, error)
}

//go:generate mockgen -package=mocks -destination=./mocks/updater.go github.com/aicredit/go-aicredit/vm/core AccountUpdater

// AccountUpdater is an interface for updating accounts.
type AccountUpdater interface {
	Update(Account) error
}
