package wallet

import (
	"github.com/gagliardetto/solana-go"

	"github.com/aicredit/go-aicredit/hash"
	"github.com/aicredit/go-aicredit/vm/core"
	"github.com/aicredit/go-aicredit/vm/registry"
)

// DiscriminatorSize is the length of the instruction prefix that selects the handler.
const DiscriminatorSize = 8

var (
	// ProgramID is the id of the wallet program.
	ProgramID = solana.MustPublicKeyFromBase58("5hhRuXxQLfAMMXzj3CSVZmn2tays19tWPepNmzmRKUZZ")
	// InitializeDiscriminator selects Initialize instruction.
	InitializeDiscriminator = Discriminator("initialize")
)

// Discriminator computes prefix for the instruction with the name.
func Discriminator(name string) [DiscriminatorSize]byte {
	sum := hash.Sha256([]byte("global:" + name))
	var rst [DiscriminatorSize]byte
	copy(rst[:], sum[:])
	return rst
}

// Register wallet program in the registry.
func Register(reg *registry.Registry) {
	reg.Register(ProgramID, New())
}

// New returns wallet program.
func New() core.Program {
	return &handler{}
}

type handler struct{}

// Process dispatches the instruction by its discriminator.
func (*handler) Process(ctx *core.Context, accounts []*core.AccountInfo, data []byte) error {
	if len(data) < DiscriminatorSize {
		return core.ErrInstructionMissing
	}
	switch [DiscriminatorSize]byte(data[:DiscriminatorSize]) {
	case InitializeDiscriminator:
		ctx.Log("Instruction: Initialize")
		return Initialize(ctx)
	}
	return core.ErrInstructionFallbackNotFound
}

// Initialize greets the caller with the id of the program.
func Initialize(ctx *core.Context) error {
	ctx.Log("Greetings from: %s", ctx.ProgramID)
	return nil
}
