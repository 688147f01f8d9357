package wallet

import (
	"github.com/aicredit/go-aicredit/common/types"
	"github.com/aicredit/go-aicredit/vm/programs/wallet"
	"github.com/aicredit/go-aicredit/vm/sdk"
)

// Initialize creates instruction for the wallet program.
func Initialize(opts ...sdk.Opt) types.Instruction {
	options := sdk.Defaults()
	for _, opt := range opts {
		opt(options)
	}
	ix := types.Instruction{
		ProgramID: wallet.ProgramID,
		Data:      append([]byte(nil), wallet.InitializeDiscriminator[:]...),
	}
	options.Apply(&ix)
	return ix
}
