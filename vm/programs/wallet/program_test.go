package wallet_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/aicredit/go-aicredit/common/types"
	"github.com/aicredit/go-aicredit/vm/core"
	"github.com/aicredit/go-aicredit/vm/programs/wallet"
)

func newContext(tb testing.TB) *core.Context {
	return core.NewContext(wallet.ProgramID, core.NewComputeMeter(core.DefaultComputeLimit), zaptest.NewLogger(tb))
}

func TestDiscriminator(t *testing.T) {
	require.Equal(t, "afaf6d1f0d989bed", hex.EncodeToString(wallet.InitializeDiscriminator[:]))
}

func TestInitialize(t *testing.T) {
	data := []byte{1, 2, 3}
	accounts := []*core.AccountInfo{
		{Key: types.Pubkey{1}, Owner: wallet.ProgramID, IsWritable: true, Data: data},
	}
	ctx := newContext(t)
	require.NoError(t, wallet.New().Process(ctx, accounts, wallet.InitializeDiscriminator[:]))
	require.Equal(t, []string{
		"Program log: Instruction: Initialize",
		"Program log: Greetings from: 5hhRuXxQLfAMMXzj3CSVZmn2tays19tWPepNmzmRKUZZ",
	}, ctx.Logs())
	require.Equal(t, []byte{1, 2, 3}, data)
}

func TestInitializeWithArguments(t *testing.T) {
	ctx := newContext(t)
	data := append(wallet.InitializeDiscriminator[:], 7, 7, 7)
	require.NoError(t, wallet.New().Process(ctx, nil, data))
	require.Len(t, ctx.Logs(), 2)
}

func TestDispatchErrors(t *testing.T) {
	for _, tc := range []struct {
		desc string
		data []byte
		err  error
	}{
		{desc: "empty", err: core.ErrInstructionMissing},
		{desc: "short", data: wallet.InitializeDiscriminator[:7], err: core.ErrInstructionMissing},
		{desc: "unknown", data: make([]byte, wallet.DiscriminatorSize), err: core.ErrInstructionFallbackNotFound},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			ctx := newContext(t)
			require.ErrorIs(t, wallet.New().Process(ctx, nil, tc.data), tc.err)
			require.Empty(t, ctx.Logs())
		})
	}
}
