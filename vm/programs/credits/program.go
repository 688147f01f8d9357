package credits

import (
	"github.com/aicredit/go-aicredit/vm/core"
	"github.com/aicredit/go-aicredit/vm/registry"
)

// ProgramID is the id of the credits program.
var ProgramID core.Pubkey

func init() {
	ProgramID[len(ProgramID)-1] = 1
}

// Register credits program in the registry.
func Register(reg *registry.Registry) {
	reg.Register(ProgramID, New())
}

// New returns credits program.
func New() core.Program {
	return &handler{}
}

type handler struct{}

// Process adds credits to the user account.
//
// Accounts: user account (writable), token account (not inspected).
// Data: first byte is the amount, trailing bytes are ignored.
func (*handler) Process(ctx *core.Context, accounts []*core.AccountInfo, data []byte) error {
	if len(accounts) < 2 {
		return core.ErrNotEnoughAccountKeys
	}
	user := accounts[0]
	if len(data) == 0 || data[0] == 0 {
		return core.ErrInvalidInstructionData
	}
	amount := uint64(data[0])

	state, err := load(user.Data)
	if err != nil {
		return err
	}
	first := !state.IsInitialized
	if err := state.AddCredits(amount); err != nil {
		return err
	}
	if err := state.Encode(user.Data); err != nil {
		return err
	}
	ctx.Log("User %s received %d credits", user.Key, amount)

	creditedTotal.Add(float64(amount))
	if first {
		firstUpdates.Inc()
	} else {
		repeatUpdates.Inc()
	}
	return nil
}
