package vm

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jonboulle/clockwork"
	"github.com/zeebo/blake3"
	"go.uber.org/zap"

	"github.com/aicredit/go-aicredit/common/types"
	"github.com/aicredit/go-aicredit/hash"
	"github.com/aicredit/go-aicredit/sql"
	"github.com/aicredit/go-aicredit/sql/accounts"
	"github.com/aicredit/go-aicredit/sql/results"
	"github.com/aicredit/go-aicredit/sql/slots"
	"github.com/aicredit/go-aicredit/vm/core"
	"github.com/aicredit/go-aicredit/vm/programs/credits"
	"github.com/aicredit/go-aicredit/vm/programs/wallet"
	"github.com/aicredit/go-aicredit/vm/registry"
)

// ErrSlotApplied is returned if transactions are applied to a slot that is not after the last applied slot.
var ErrSlotApplied = errors.New("slot already applied")

// Opt is for changing VM during initialization.
type Opt func(*VM)

// WithLogger sets logger for VM.
func WithLogger(logger *zap.Logger) Opt {
	return func(vm *VM) {
		vm.logger = logger
	}
}

// Config defines the configuration options for vm.
type Config struct {
	// ComputeLimit is the number of compute units a single transaction may consume.
	ComputeLimit uint64 `mapstructure:"compute-limit"`
	// CacheSize is the number of accounts kept in memory.
	CacheSize int `mapstructure:"cache-size"`
}

// DefaultConfig returns the default config.
func DefaultConfig() Config {
	return Config{
		ComputeLimit: core.DefaultComputeLimit,
		CacheSize:    10_000,
	}
}

// WithConfig updates config on the vm.
func WithConfig(cfg Config) Opt {
	return func(vm *VM) {
		vm.cfg = cfg
	}
}

// WithClock sets the clock used to record block time.
func WithClock(clock clockwork.Clock) Opt {
	return func(vm *VM) {
		vm.clock = clock
	}
}

// WithRegistry replaces the set of programs available to transactions.
func WithRegistry(reg *registry.Registry) Opt {
	return func(vm *VM) {
		vm.registry = reg
	}
}

// New returns VM instance.
func New(db *sql.Database, opts ...Opt) *VM {
	vm := &VM{
		logger: zap.NewNop(),
		db:     db,
		cfg:    DefaultConfig(),
		clock:  clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(vm)
	}
	if vm.registry == nil {
		vm.registry = registry.New()
		credits.Register(vm.registry)
		wallet.Register(vm.registry)
	}
	cache, err := lru.New[types.Pubkey, types.Account](vm.cfg.CacheSize)
	if err != nil {
		panic(fmt.Sprintf("create account cache: %v", err))
	}
	vm.cache = cache
	return vm
}

// VM handles modifications to the account state.
type VM struct {
	logger   *zap.Logger
	db       *sql.Database
	cfg      Config
	clock    clockwork.Clock
	registry *registry.Registry

	// mu serializes writers. cache is filled only under mu, and updated after the database transaction is committed.
	mu    sync.Mutex
	cache *accountCache
}

func (v *VM) loader(fill bool) *accountLoader {
	return &accountLoader{db: v.db, cache: v.cache, fill: fill}
}

// Account returns latest state of the account.
// Account that was never written is returned with empty data and zero owner.
func (v *VM) Account(key types.Pubkey) (types.Account, error) {
	return v.loader(false).Get(key)
}

// AccountAt returns state of the account after the slot was applied.
func (v *VM) AccountAt(key types.Pubkey, slot types.Slot) (types.Account, error) {
	account, err := accounts.Get(v.db, key, slot)
	if errors.Is(err, sql.ErrNotFound) {
		return types.Account{Key: key}, nil
	}
	return account, err
}

// StateRoot returns the state root recorded for the slot.
func (v *VM) StateRoot(slot types.Slot) (types.Hash32, error) {
	return slots.StateRoot(v.db, slot)
}

// BlockTime returns the time when the slot was applied.
func (v *VM) BlockTime(slot types.Slot) (time.Time, error) {
	return slots.BlockTime(v.db, slot)
}

// LastSlot returns the last applied slot.
func (v *VM) LastSlot() (types.Slot, error) {
	return slots.Last(v.db)
}

// Result returns the stored result of the transaction.
func (v *VM) Result(id types.TransactionID) (*types.TransactionResult, error) {
	return results.Get(v.db, id)
}

// ApplyGenesis saves list of accounts for genesis.
func (v *VM) ApplyGenesis(genesis []types.Account) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	hasher := hash.GetHasher()
	defer hash.PutHasher(hasher)
	err := v.db.WithTx(context.Background(), func(tx *sql.Tx) error {
		for i := range genesis {
			account := &genesis[i]
			account.Slot = 0
			v.logger.Info("genesis account", zap.Object("account", account))
			if err := accounts.Update(tx, account); err != nil {
				return fmt.Errorf("inserting genesis account %w", err)
			}
			writeAccount(hasher, account)
		}
		var root types.Hash32
		hasher.Sum(root[:0])
		if err := slots.Add(tx, 0, root, v.clock.Now()); err != nil {
			return fmt.Errorf("genesis slot: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	for i := range genesis {
		v.cache.Add(genesis[i].Key, genesis[i].Copy())
	}
	return nil
}

// Apply transactions in the slot.
//
// Transactions that fail are recorded with the failure status and leave no changes.
// Error is returned only if the slot can't be applied, in such case no changes are persisted.
func (v *VM) Apply(ctx context.Context, slot types.Slot, txs []types.Transaction) ([]types.TransactionResult, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	start := time.Now()
	last, err := slots.Last(v.db)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrInternal, err)
	}
	if slot <= last {
		return nil, fmt.Errorf("%w: slot %d, last applied %d", ErrSlotApplied, slot, last)
	}

	var (
		ss   = core.NewStagedCache(v.loader(true))
		rsts = make([]types.TransactionResult, 0, len(txs))
		seen = make(map[types.TransactionID]struct{}, len(txs))
	)
	for i := range txs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tx := &txs[i]
		id := tx.ID()
		if _, exist := seen[id]; exist {
			v.logger.Warn("skipping duplicate transaction", zap.Stringer("id", id))
			transactionsSkipped.Inc()
			continue
		}
		seen[id] = struct{}{}
		if _, err := results.Get(v.db, id); err == nil {
			v.logger.Warn("skipping applied transaction", zap.Stringer("id", id))
			transactionsSkipped.Inc()
			continue
		} else if !errors.Is(err, sql.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", core.ErrInternal, err)
		}

		rst, err := v.execute(ss, slot, id, tx)
		computeUnits.Observe(float64(rst.ComputeUnits))
		if err != nil {
			if errors.Is(err, core.ErrInternal) {
				return nil, err
			}
			v.logger.Debug("transaction failed", zap.Object("result", &rst), zap.Error(err))
			failuresTotal.WithLabelValues(failureReason(err)).Inc()
		} else {
			v.logger.Debug("transaction applied", zap.Object("result", &rst))
			transactionsSuccess.Inc()
		}
		rsts = append(rsts, rst)
	}

	hasher := hash.GetHasher()
	defer hash.PutHasher(hasher)
	var root types.Hash32
	err = v.db.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		ss.IterateChanged(func(account *core.Account) bool {
			account.Slot = slot
			v.logger.Debug("update account state", zap.Object("account", account))
			if err = accounts.Update(tx, account); err != nil {
				return false
			}
			writeAccount(hasher, account)
			return true
		})
		if err != nil {
			return err
		}
		for i := range rsts {
			if err := results.Add(tx, &rsts[i]); err != nil {
				return err
			}
		}
		hasher.Sum(root[:0])
		return slots.Add(tx, slot, root, v.clock.Now())
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrInternal, err)
	}
	ss.IterateChanged(func(account *core.Account) bool {
		v.cache.Add(account.Key, account.Copy())
		return true
	})

	changedAccounts.Set(float64(ss.Changed()))
	applyDuration.Observe(time.Since(start).Seconds())
	v.logger.Info("applied transactions",
		zap.Uint64("slot", uint64(slot)),
		zap.Int("count", len(rsts)),
		zap.Int("skipped", len(txs)-len(rsts)),
		zap.Int("changed", ss.Changed()),
		zap.Stringer("root", root),
		zap.Duration("duration", time.Since(start)),
	)
	return rsts, nil
}

// Revert state to the slot, removing every change applied after it.
func (v *VM) Revert(slot types.Slot) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	err := v.db.WithTx(context.Background(), func(tx *sql.Tx) error {
		if err := accounts.Revert(tx, slot); err != nil {
			return err
		}
		if err := results.Revert(tx, slot); err != nil {
			return err
		}
		return slots.Revert(tx, slot)
	})
	if err != nil {
		return fmt.Errorf("revert to %d: %w", slot, err)
	}
	v.cache.Purge()
	v.logger.Info("reverted state", zap.Uint64("slot", uint64(slot)))
	return nil
}

// writeAccount appends account state to the state root.
func writeAccount(hasher *blake3.Hasher, account *types.Account) {
	var buf [8]byte
	hasher.Write(account.Key[:])
	hasher.Write(account.Owner[:])
	binary.LittleEndian.PutUint64(buf[:], account.Lamports)
	hasher.Write(buf[:])
	if account.Executable {
		hasher.Write([]byte{1})
	} else {
		hasher.Write([]byte{0})
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(len(account.Data)))
	hasher.Write(buf[:])
	hasher.Write(account.Data)
}

// Results returns results of the transactions applied in the slot, in the order of execution.
func (v *VM) Results(slot types.Slot) ([]*types.TransactionResult, error) {
	return results.InSlot(v.db, slot)
}
