package vm

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
	"golang.org/x/sync/errgroup"

	"github.com/aicredit/go-aicredit/common/types"
	"github.com/aicredit/go-aicredit/sql"
	"github.com/aicredit/go-aicredit/vm/core"
	"github.com/aicredit/go-aicredit/vm/core/mocks"
	"github.com/aicredit/go-aicredit/vm/programs/credits"
	"github.com/aicredit/go-aicredit/vm/programs/wallet"
	"github.com/aicredit/go-aicredit/vm/registry"
	"github.com/aicredit/go-aicredit/vm/sdk"
	sdkcredits "github.com/aicredit/go-aicredit/vm/sdk/credits"
	sdkwallet "github.com/aicredit/go-aicredit/vm/sdk/wallet"
)

var genesisTime = time.Unix(1_700_000_000, 0)

func newTester(tb testing.TB, opts ...Opt) *tester {
	clock := clockwork.NewFakeClockAt(genesisTime)
	db := sql.InMemory()
	tb.Cleanup(func() { require.NoError(tb, db.Close()) })
	opts = append([]Opt{WithLogger(zaptest.NewLogger(tb)), WithClock(clock)}, opts...)
	return &tester{
		TB:    tb,
		VM:    New(db, opts...),
		db:    db,
		clock: clock,
		token: types.Pubkey{0xff},
	}
}

type tester struct {
	testing.TB
	*VM

	db    *sql.Database
	clock clockwork.FakeClock
	users []types.Pubkey
	token types.Pubkey
	nonce uint64
}

func (t *tester) persistent() *tester {
	db, err := sql.Open("file:" + filepath.Join(t.TempDir(), "test.sql"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, db.Close()) })
	t.db = db
	t.VM = New(db, WithLogger(zaptest.NewLogger(t)), WithClock(t.clock))
	return t
}

// reopen creates new instance of the vm on the same database.
func (t *tester) reopen() *tester {
	t.VM = New(t.db, WithLogger(zaptest.NewLogger(t)), WithClock(t.clock))
	return t
}

func userAccount(tb testing.TB, key types.Pubkey, state credits.UserAccount) types.Account {
	data := make([]byte, credits.UserAccountSize)
	require.NoError(tb, state.Encode(data))
	return types.Account{Key: key, Owner: credits.ProgramID, Data: data}
}

func (t *tester) withUsers(states ...credits.UserAccount) *tester {
	genesis := []types.Account{{Key: t.token, Lamports: 1}}
	for i, state := range states {
		key := types.Pubkey{byte(i + 1)}
		t.users = append(t.users, key)
		genesis = append(genesis, userAccount(t, key, state))
	}
	require.NoError(t, t.ApplyGenesis(genesis))
	return t
}

func (t *tester) credit(user int, amount uint8) types.Instruction {
	return sdkcredits.AddCredits(t.users[user], t.token, amount)
}

func (t *tester) tx(instructions ...types.Instruction) types.Transaction {
	t.nonce++
	return sdk.Transaction(t.nonce, instructions...)
}

func (t *tester) state(user int) credits.UserAccount {
	account, err := t.Account(t.users[user])
	require.NoError(t, err)
	state, err := credits.DecodeUnchecked(account.Data)
	require.NoError(t, err)
	return state
}

func TestCredits(t *testing.T) {
	tt := newTester(t).withUsers(credits.UserAccount{}, credits.UserAccount{IsInitialized: true, Credits: 10})

	tx := tt.tx(tt.credit(0, 5), tt.credit(1, 5))
	rsts, err := tt.Apply(context.Background(), 1, []types.Transaction{tx})
	require.NoError(t, err)
	require.Len(t, rsts, 1)

	rst := rsts[0]
	require.Equal(t, types.TransactionSuccess, rst.Status, rst.Message)
	require.Equal(t, tx.ID(), rst.ID)
	require.Equal(t, []types.Pubkey{tt.users[0], tt.users[1]}, rst.Accounts)
	require.Equal(t, uint64(2*1460), rst.ComputeUnits)
	require.Equal(t, []string{
		fmt.Sprintf("Program %s invoke [1]", credits.ProgramID),
		fmt.Sprintf("Program log: User %s received 5 credits", tt.users[0]),
		fmt.Sprintf("Program %s consumed 1460 of 200000 compute units", credits.ProgramID),
		fmt.Sprintf("Program %s success", credits.ProgramID),
		fmt.Sprintf("Program %s invoke [1]", credits.ProgramID),
		fmt.Sprintf("Program log: User %s received 5 credits", tt.users[1]),
		fmt.Sprintf("Program %s consumed 1460 of 198540 compute units", credits.ProgramID),
		fmt.Sprintf("Program %s success", credits.ProgramID),
	}, rst.Logs)

	require.Equal(t, credits.UserAccount{IsInitialized: true, Credits: 5}, tt.state(0))
	require.Equal(t, credits.UserAccount{IsInitialized: true, Credits: 15}, tt.state(1))

	stored, err := tt.Result(tx.ID())
	require.NoError(t, err)
	require.Equal(t, &rst, stored)

	account, err := tt.Account(tt.users[0])
	require.NoError(t, err)
	require.Equal(t, types.Slot(1), account.Slot)
	require.Equal(t, credits.ProgramID, account.Owner)
}

func TestAtomicity(t *testing.T) {
	for _, tc := range []struct {
		desc   string
		states []credits.UserAccount
		ixs    func(*tester) []types.Instruction
		err    error
	}{
		{
			desc:   "empty data",
			states: []credits.UserAccount{{}},
			ixs: func(tt *tester) []types.Instruction {
				ix := tt.credit(0, 1)
				ix.Data = nil
				return []types.Instruction{tt.credit(0, 5), ix}
			},
			err: core.ErrInvalidInstructionData,
		},
		{
			desc:   "zero amount",
			states: []credits.UserAccount{{}},
			ixs: func(tt *tester) []types.Instruction {
				return []types.Instruction{tt.credit(0, 5), tt.credit(0, 0)}
			},
			err: core.ErrInvalidInstructionData,
		},
		{
			desc:   "overflow",
			states: []credits.UserAccount{{}, {IsInitialized: true, Credits: math.MaxUint64}},
			ixs: func(tt *tester) []types.Instruction {
				return []types.Instruction{tt.credit(0, 5), tt.credit(1, 1)}
			},
			err: core.ErrArithmeticOverflow,
		},
		{
			desc:   "not enough accounts",
			states: []credits.UserAccount{{}},
			ixs: func(tt *tester) []types.Instruction {
				ix := tt.credit(0, 1)
				ix.Accounts = ix.Accounts[:1]
				return []types.Instruction{tt.credit(0, 5), ix}
			},
			err: core.ErrNotEnoughAccountKeys,
		},
		{
			desc:   "readonly user",
			states: []credits.UserAccount{{}},
			ixs: func(tt *tester) []types.Instruction {
				ix := tt.credit(0, 1)
				ix.Accounts[0].IsWritable = false
				return []types.Instruction{tt.credit(0, 5), ix}
			},
			err: core.ErrReadonlyDataModified,
		},
		{
			desc:   "unknown program",
			states: []credits.UserAccount{{}},
			ixs: func(tt *tester) []types.Instruction {
				return []types.Instruction{tt.credit(0, 5), {ProgramID: types.Pubkey{7}}}
			},
			err: core.ErrUnknownProgram,
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			tt := newTester(t).withUsers(tc.states...)
			rsts, err := tt.Apply(context.Background(), 1, []types.Transaction{tt.tx(tc.ixs(tt)...)})
			require.NoError(t, err)
			require.Len(t, rsts, 1)
			require.Equal(t, types.TransactionFailure, rsts[0].Status)
			require.Contains(t, rsts[0].Message, tc.err.Error())
			require.Empty(t, rsts[0].Accounts)
			for i, state := range tc.states {
				require.Equal(t, state, tt.state(i))
			}
		})
	}
}

func TestUserAccountNotOwned(t *testing.T) {
	tt := newTester(t)
	user := types.Pubkey{1}
	account := userAccount(t, user, credits.UserAccount{})
	account.Owner = wallet.ProgramID
	require.NoError(t, tt.ApplyGenesis([]types.Account{account}))
	tt.users = append(tt.users, user)

	rsts, err := tt.Apply(context.Background(), 1, []types.Transaction{tt.tx(tt.credit(0, 1))})
	require.NoError(t, err)
	require.Equal(t, types.TransactionFailure, rsts[0].Status)
	require.Contains(t, rsts[0].Message, core.ErrExternalAccountDataModified.Error())
	require.Equal(t, credits.UserAccount{}, tt.state(0))
}

func TestUnknownAccount(t *testing.T) {
	tt := newTester(t).withUsers()
	tt.users = append(tt.users, types.Pubkey{9})
	rsts, err := tt.Apply(context.Background(), 1, []types.Transaction{tt.tx(tt.credit(0, 1))})
	require.NoError(t, err)
	require.Equal(t, types.TransactionFailure, rsts[0].Status)
	require.Contains(t, rsts[0].Message, core.ErrInvalidAccountData.Error())

	account, err := tt.Account(types.Pubkey{9})
	require.NoError(t, err)
	require.Equal(t, types.Account{Key: types.Pubkey{9}}, account)
}

func TestFailedTransactionIsolated(t *testing.T) {
	tt := newTester(t).withUsers(credits.UserAccount{})
	rsts, err := tt.Apply(context.Background(), 1, []types.Transaction{
		tt.tx(tt.credit(0, 5)),
		tt.tx(tt.credit(0, 0)),
		tt.tx(tt.credit(0, 7)),
	})
	require.NoError(t, err)
	require.Len(t, rsts, 3)
	require.Equal(t, types.TransactionSuccess, rsts[0].Status)
	require.Equal(t, types.TransactionFailure, rsts[1].Status)
	require.Equal(t, types.TransactionSuccess, rsts[2].Status)
	require.Equal(t, credits.UserAccount{IsInitialized: true, Credits: 12}, tt.state(0))

	// failed instruction still logs the invocation and the error
	require.Equal(t, []string{
		fmt.Sprintf("Program %s invoke [1]", credits.ProgramID),
		fmt.Sprintf("Program %s failed: %s", credits.ProgramID, core.ErrInvalidInstructionData),
	}, rsts[1].Logs)
}

func TestWalletInitialize(t *testing.T) {
	tt := newTester(t).withUsers(credits.UserAccount{IsInitialized: true, Credits: 3})
	ix := sdkwallet.Initialize()
	ix.Accounts = append(ix.Accounts, types.NewAccountMeta(tt.users[0], true, true))

	rsts, err := tt.Apply(context.Background(), 1, []types.Transaction{tt.tx(ix)})
	require.NoError(t, err)
	require.Equal(t, types.TransactionSuccess, rsts[0].Status, rsts[0].Message)
	require.Empty(t, rsts[0].Accounts)
	require.Contains(t, rsts[0].Logs, "Program log: Instruction: Initialize")
	require.Contains(t, rsts[0].Logs, fmt.Sprintf("Program log: Greetings from: %s", wallet.ProgramID))
	require.Equal(t, credits.UserAccount{IsInitialized: true, Credits: 3}, tt.state(0))

	ix.Data = ix.Data[:4]
	rsts, err = tt.Apply(context.Background(), 2, []types.Transaction{tt.tx(ix)})
	require.NoError(t, err)
	require.Equal(t, types.TransactionFailure, rsts[0].Status)
	require.Contains(t, rsts[0].Message, core.ErrInstructionMissing.Error())
}

func TestHostChecks(t *testing.T) {
	program := types.Pubkey{0xaa}
	owned := types.Account{Key: types.Pubkey{1}, Owner: program, Data: []byte{1, 2, 3}}
	foreign := types.Account{Key: types.Pubkey{2}, Owner: credits.ProgramID, Data: []byte{4, 5, 6}}

	for _, tc := range []struct {
		desc     string
		accounts []types.AccountMeta
		process  func(*core.Context, []*core.AccountInfo, []byte) error
		err      error
		changed  []byte
	}{
		{
			desc:     "modify writable owned",
			accounts: []types.AccountMeta{types.NewAccountMeta(owned.Key, true, false)},
			process: func(_ *core.Context, accounts []*core.AccountInfo, _ []byte) error {
				accounts[0].Data[0] = 9
				return nil
			},
			changed: []byte{9, 2, 3},
		},
		{
			desc:     "modify readonly",
			accounts: []types.AccountMeta{types.NewAccountMeta(owned.Key, false, false)},
			process: func(_ *core.Context, accounts []*core.AccountInfo, _ []byte) error {
				accounts[0].Data[0] = 9
				return nil
			},
			err: core.ErrReadonlyDataModified,
		},
		{
			desc: "duplicate reference is writable",
			accounts: []types.AccountMeta{
				types.NewAccountMeta(owned.Key, false, false),
				types.NewAccountMeta(owned.Key, true, false),
			},
			process: func(_ *core.Context, accounts []*core.AccountInfo, _ []byte) error {
				if accounts[0] != accounts[1] {
					return fmt.Errorf("expected shared account")
				}
				accounts[0].Data[0] = 9
				return nil
			},
			changed: []byte{9, 2, 3},
		},
		{
			desc:     "modify external",
			accounts: []types.AccountMeta{types.NewAccountMeta(foreign.Key, true, false)},
			process: func(_ *core.Context, accounts []*core.AccountInfo, _ []byte) error {
				accounts[0].Data[0] = 9
				return nil
			},
			err: core.ErrExternalAccountDataModified,
		},
		{
			desc:     "resize",
			accounts: []types.AccountMeta{types.NewAccountMeta(owned.Key, true, false)},
			process: func(_ *core.Context, accounts []*core.AccountInfo, _ []byte) error {
				accounts[0].Data = append(accounts[0].Data, 0)
				return nil
			},
			err: core.ErrAccountDataSizeChanged,
		},
		{
			desc:     "budget",
			accounts: []types.AccountMeta{types.NewAccountMeta(owned.Key, true, false)},
			process: func(ctx *core.Context, _ []*core.AccountInfo, _ []byte) error {
				_ = ctx.Consume(core.DefaultComputeLimit)
				return nil
			},
			err: core.ErrComputeBudgetExceeded,
		},
		{
			desc:     "program error",
			accounts: []types.AccountMeta{types.NewAccountMeta(owned.Key, true, false)},
			process: func(_ *core.Context, accounts []*core.AccountInfo, _ []byte) error {
				accounts[0].Data[0] = 9
				return core.ErrInvalidAccountData
			},
			err: core.ErrInvalidAccountData,
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			mock := mocks.NewMockProgram(gomock.NewController(t))
			mock.EXPECT().Process(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(tc.process)
			reg := registry.New()
			reg.Register(program, mock)

			tt := newTester(t, WithRegistry(reg))
			require.NoError(t, tt.ApplyGenesis([]types.Account{owned.Copy(), foreign.Copy()}))
			rsts, err := tt.Apply(context.Background(), 1, []types.Transaction{
				tt.tx(types.Instruction{ProgramID: program, Accounts: tc.accounts}),
			})
			require.NoError(t, err)
			require.Len(t, rsts, 1)

			got, err := tt.Account(owned.Key)
			require.NoError(t, err)
			if tc.err != nil {
				require.Equal(t, types.TransactionFailure, rsts[0].Status)
				require.Contains(t, rsts[0].Message, tc.err.Error())
				require.Equal(t, owned.Data, got.Data)
			} else {
				require.Equal(t, types.TransactionSuccess, rsts[0].Status, rsts[0].Message)
				require.Equal(t, tc.changed, got.Data)
			}
			other, err := tt.Account(foreign.Key)
			require.NoError(t, err)
			require.Equal(t, foreign.Data, other.Data)
		})
	}
}

func TestComputeLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ComputeLimit = 1200
	tt := newTester(t, WithConfig(cfg)).withUsers(credits.UserAccount{})

	rsts, err := tt.Apply(context.Background(), 1, []types.Transaction{tt.tx(tt.credit(0, 1))})
	require.NoError(t, err)
	require.Equal(t, types.TransactionFailure, rsts[0].Status)
	require.Contains(t, rsts[0].Message, core.ErrComputeBudgetExceeded.Error())
	require.Equal(t, cfg.ComputeLimit, rsts[0].ComputeUnits)
	require.Equal(t, credits.UserAccount{}, tt.state(0))
}

func TestMalformed(t *testing.T) {
	tt := newTester(t).withUsers(credits.UserAccount{})
	oversized := tt.credit(0, 1)
	oversized.Data = make([]byte, types.MaxInstructionData+1)
	oversized.Data[0] = 1

	rsts, err := tt.Apply(context.Background(), 1, []types.Transaction{
		tt.tx(),
		tt.tx(oversized),
	})
	require.NoError(t, err)
	require.Len(t, rsts, 2)
	for _, rst := range rsts {
		require.Equal(t, types.TransactionFailure, rst.Status)
		require.Contains(t, rst.Message, core.ErrMalformed.Error())
		require.Zero(t, rst.ComputeUnits)
	}
}

func TestSkipDuplicates(t *testing.T) {
	tt := newTester(t).withUsers(credits.UserAccount{})
	tx := tt.tx(tt.credit(0, 1))

	rsts, err := tt.Apply(context.Background(), 1, []types.Transaction{tx, tx})
	require.NoError(t, err)
	require.Len(t, rsts, 1)

	rsts, err = tt.Apply(context.Background(), 2, []types.Transaction{tx})
	require.NoError(t, err)
	require.Empty(t, rsts)
	require.Equal(t, credits.UserAccount{IsInitialized: true, Credits: 1}, tt.state(0))
}

func TestSlots(t *testing.T) {
	tt := newTester(t).withUsers(credits.UserAccount{})
	_, err := tt.Apply(context.Background(), 0, nil)
	require.ErrorIs(t, err, ErrSlotApplied)

	tt.clock.Advance(time.Minute)
	_, err = tt.Apply(context.Background(), 2, []types.Transaction{tt.tx(tt.credit(0, 1))})
	require.NoError(t, err)
	_, err = tt.Apply(context.Background(), 2, nil)
	require.ErrorIs(t, err, ErrSlotApplied)
	_, err = tt.Apply(context.Background(), 1, nil)
	require.ErrorIs(t, err, ErrSlotApplied)

	last, err := tt.LastSlot()
	require.NoError(t, err)
	require.Equal(t, types.Slot(2), last)

	blockTime, err := tt.BlockTime(2)
	require.NoError(t, err)
	require.Equal(t, genesisTime.Add(time.Minute).Unix(), blockTime.Unix())

	require.Error(t, tt.ApplyGenesis(nil))
}

func TestCanceled(t *testing.T) {
	tt := newTester(t).withUsers(credits.UserAccount{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := tt.Apply(ctx, 1, []types.Transaction{tt.tx(tt.credit(0, 1))})
	require.ErrorIs(t, err, context.Canceled)

	last, err := tt.LastSlot()
	require.NoError(t, err)
	require.Zero(t, last)
	require.Equal(t, credits.UserAccount{}, tt.state(0))
}

func TestStateRoot(t *testing.T) {
	apply := func(tt *tester) types.Hash32 {
		for slot := types.Slot(1); slot <= 3; slot++ {
			_, err := tt.Apply(context.Background(), slot, []types.Transaction{
				tt.tx(tt.credit(0, uint8(slot)), tt.credit(1, 1)),
			})
			require.NoError(tt, err)
		}
		root, err := tt.StateRoot(3)
		require.NoError(tt, err)
		return root
	}
	first := newTester(t).withUsers(credits.UserAccount{}, credits.UserAccount{})
	second := newTester(t).withUsers(credits.UserAccount{}, credits.UserAccount{})
	require.Equal(t, apply(first), apply(second))

	genesis, err := first.StateRoot(0)
	require.NoError(t, err)
	root, err := first.StateRoot(3)
	require.NoError(t, err)
	require.NotEqual(t, genesis, root)

	third := newTester(t).withUsers(credits.UserAccount{}, credits.UserAccount{IsInitialized: true, Credits: 1})
	require.NotEqual(t, root, apply(third))
}

func TestRevert(t *testing.T) {
	tt := newTester(t).withUsers(credits.UserAccount{})
	first := tt.tx(tt.credit(0, 1))
	_, err := tt.Apply(context.Background(), 1, []types.Transaction{first})
	require.NoError(t, err)
	second := tt.tx(tt.credit(0, 2))
	_, err = tt.Apply(context.Background(), 2, []types.Transaction{second})
	require.NoError(t, err)
	require.Equal(t, credits.UserAccount{IsInitialized: true, Credits: 3}, tt.state(0))

	require.NoError(t, tt.Revert(1))
	require.Equal(t, credits.UserAccount{IsInitialized: true, Credits: 1}, tt.state(0))
	_, err = tt.Result(second.ID())
	require.ErrorIs(t, err, sql.ErrNotFound)
	_, err = tt.Result(first.ID())
	require.NoError(t, err)

	at, err := tt.AccountAt(tt.users[0], 0)
	require.NoError(t, err)
	state, err := credits.DecodeUnchecked(at.Data)
	require.NoError(t, err)
	require.Equal(t, credits.UserAccount{}, state)

	// slot can be applied again after revert
	_, err = tt.Apply(context.Background(), 2, []types.Transaction{second})
	require.NoError(t, err)
	require.Equal(t, credits.UserAccount{IsInitialized: true, Credits: 3}, tt.state(0))
}

func TestPersistent(t *testing.T) {
	tt := newTester(t).persistent().withUsers(credits.UserAccount{})
	_, err := tt.Apply(context.Background(), 1, []types.Transaction{tt.tx(tt.credit(0, 4))})
	require.NoError(t, err)

	tt.reopen()
	require.Equal(t, credits.UserAccount{IsInitialized: true, Credits: 4}, tt.state(0))
	_, err = tt.Apply(context.Background(), 2, []types.Transaction{tt.tx(tt.credit(0, 4))})
	require.NoError(t, err)
	require.Equal(t, credits.UserAccount{IsInitialized: true, Credits: 8}, tt.state(0))
}

func TestReadersDontShadowCommittedState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CacheSize = 1
	tt := newTester(t, WithConfig(cfg)).persistent()
	tt.VM = New(tt.db, WithLogger(zaptest.NewLogger(t)), WithClock(tt.clock), WithConfig(cfg))
	tt.withUsers(credits.UserAccount{})

	const applies = 300
	ctx, cancel := context.WithCancel(context.Background())
	var eg errgroup.Group
	for range 8 {
		eg.Go(func() error {
			for ctx.Err() == nil {
				if _, err := tt.Account(tt.users[0]); err != nil {
					return err
				}
				if _, err := tt.Account(tt.token); err != nil {
					return err
				}
			}
			return nil
		})
	}
	for i := 1; i <= applies; i++ {
		rsts, err := tt.Apply(context.Background(), types.Slot(i), []types.Transaction{tt.tx(tt.credit(0, 1))})
		require.NoError(t, err)
		require.Equal(t, types.TransactionSuccess, rsts[0].Status, rsts[0].Message)
	}
	cancel()
	require.NoError(t, eg.Wait())
	require.Equal(t, credits.UserAccount{IsInitialized: true, Credits: applies}, tt.state(0))
}

func TestResultBounds(t *testing.T) {
	program := types.Pubkey{0xaa}
	mock := mocks.NewMockProgram(gomock.NewController(t))
	mock.EXPECT().Process(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx *core.Context, _ []*core.AccountInfo, _ []byte) error {
			for range types.MaxResultLogs {
				ctx.Log("line")
			}
			return fmt.Errorf("%w: %s", core.ErrInvalidInstructionData, strings.Repeat("x\n", types.MaxResultMessage))
		})
	reg := registry.New()
	reg.Register(program, mock)

	cfg := DefaultConfig()
	cfg.ComputeLimit = math.MaxUint64
	tt := newTester(t, WithRegistry(reg), WithConfig(cfg))
	require.NoError(t, tt.ApplyGenesis(nil))

	tx := tt.tx(types.Instruction{ProgramID: program})
	rsts, err := tt.Apply(context.Background(), 1, []types.Transaction{tx})
	require.NoError(t, err)
	rst := rsts[0]
	require.Equal(t, types.TransactionFailure, rst.Status)
	require.Len(t, rst.Logs, types.MaxResultLogs)
	require.Equal(t, logTruncated, rst.Logs[len(rst.Logs)-1])
	require.Len(t, rst.Message, types.MaxResultMessage)

	stored, err := tt.Result(tx.ID())
	require.NoError(t, err)
	require.Equal(t, &rst, stored)
}
