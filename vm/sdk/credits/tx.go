package credits

import (
	"github.com/aicredit/go-aicredit/common/types"
	"github.com/aicredit/go-aicredit/vm/programs/credits"
	"github.com/aicredit/go-aicredit/vm/sdk"
)

// AddCredits creates instruction that adds amount to the user account.
func AddCredits(user, token types.Pubkey, amount uint8, opts ...sdk.Opt) types.Instruction {
	options := sdk.Defaults()
	for _, opt := range opts {
		opt(options)
	}
	ix := types.Instruction{
		ProgramID: credits.ProgramID,
		Accounts: []types.AccountMeta{
			types.NewAccountMeta(user, true, false),
			types.NewAccountMeta(token, false, false),
		},
		Data: []byte{amount},
	}
	options.Apply(&ix)
	return ix
}
