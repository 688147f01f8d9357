// Package node wires storage, the vm and metrics into a single application.
package node

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aicredit/go-aicredit/checkpoint"
	"github.com/aicredit/go-aicredit/common/types"
	"github.com/aicredit/go-aicredit/config"
	"github.com/aicredit/go-aicredit/metrics"
	"github.com/aicredit/go-aicredit/sql"
	dbaccounts "github.com/aicredit/go-aicredit/sql/accounts"
	"github.com/aicredit/go-aicredit/vm"
)

var (
	// ErrNotStarted is returned when the app is used before Start.
	ErrNotStarted = errors.New("app is not started")
	// ErrNoGenesis is returned when transactions are submitted before genesis was applied.
	ErrNoGenesis = errors.New("genesis is not applied")
	// ErrGenesisMismatch is returned when genesis file differs from the applied genesis.
	ErrGenesisMismatch = errors.New("genesis accounts differ from the applied genesis")
)

// Option to modify an App instance.
type Option func(app *App)

// WithLog enables logger for an App.
func WithLog(logger *zap.Logger) Option {
	return func(app *App) {
		app.log = logger
	}
}

// WithConfig overwrites default App config.
func WithConfig(conf *config.Config) Option {
	return func(app *App) {
		app.Config = conf
	}
}

// WithClock overwrites clock that is used to record block time.
func WithClock(clock clockwork.Clock) Option {
	return func(app *App) {
		app.clock = clock
	}
}

// WithFs overwrites filesystem used for genesis and checkpoint files.
func WithFs(fs afero.Fs) Option {
	return func(app *App) {
		app.fs = fs
	}
}

// New creates an instance of the aicredit app.
func New(opts ...Option) *App {
	defaultConfig := config.DefaultConfig()
	app := &App{
		Config:  &defaultConfig,
		log:     zap.NewNop(),
		clock:   clockwork.NewRealClock(),
		fs:      afero.NewOsFs(),
		loggers: make(map[string]*zap.AtomicLevel),
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// App owns the database and the vm that applies transactions to it.
type App struct {
	Config *config.Config

	log      *zap.Logger
	loggers  map[string]*zap.AtomicLevel
	clock    clockwork.Clock
	fs       afero.Fs
	fileLock *flock.Flock

	db      *sql.Database
	vm      *vm.VM
	metrics *metrics.Server
	eg      errgroup.Group
}

// Lock locks the app for exclusive use. It returns an error if the app is already locked.
func (app *App) Lock() error {
	path := app.Config.LockPath()
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("creating dir %s for lock %s: %w", filepath.Dir(path), path, err)
	}
	fl := flock.New(path)
	locked, err := fl.TryLock()
	if err != nil {
		return fmt.Errorf("flock %s: %w", path, err)
	} else if !locked {
		return fmt.Errorf("only one aicredit instance should be running (locking file %s)", fl.Path())
	}
	app.fileLock = fl
	return nil
}

// Unlock unlocks the app. It is a no-op if the app is not locked.
func (app *App) Unlock() {
	if app.fileLock == nil {
		return
	}
	if err := app.fileLock.Unlock(); err != nil {
		app.log.Error("failed to unlock file",
			zap.String("path", app.fileLock.Path()),
			zap.Error(err),
		)
	}
	app.fileLock = nil
}

// Start opens the database and creates the vm on top of it.
// Metrics server is started if it is enabled in the config.
func (app *App) Start(ctx context.Context) error {
	logger, err := app.addLogger(config.AppLogger, app.log)
	if err != nil {
		return err
	}
	if err := app.setupDBs(ctx); err != nil {
		return err
	}
	vmlog, err := app.addLogger(config.VMLogger, app.log)
	if err != nil {
		return err
	}
	app.vm = vm.New(app.db,
		vm.WithLogger(vmlog),
		vm.WithConfig(app.Config.VM),
		vm.WithClock(app.clock),
	)
	if app.Config.CollectMetrics {
		app.metrics = metrics.NewServer(logger, app.Config.MetricsPort)
		app.eg.Go(app.metrics.ListenAndServe)
	}
	last, err := app.vm.LastSlot()
	if err != nil {
		return err
	}
	logger.Info("app started",
		zap.String("data dir", app.Config.DataDir()),
		zap.Uint64("last slot", uint64(last)),
	)
	app.log = logger
	return nil
}

func (app *App) setupDBs(ctx context.Context) error {
	dbPath := app.Config.DataDir()
	if err := os.MkdirAll(dbPath, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create %s: %w", dbPath, err)
	}
	dbLog, err := app.addLogger(config.SQLLogger, app.log)
	if err != nil {
		return err
	}
	sqlDB, err := sql.Open("file:"+app.Config.DBPath(),
		sql.WithLogger(dbLog),
		sql.WithConnections(app.Config.DatabaseConnections),
		sql.WithLatencyMetering(app.Config.DatabaseLatencyMetering),
	)
	if err != nil {
		return fmt.Errorf("open sqlite db %w", err)
	}
	app.db = sqlDB
	return nil
}

// Now returns current time of the app clock.
func (app *App) Now() time.Time {
	return app.clock.Now()
}

// VM returns the vm. Nil before Start.
func (app *App) VM() *vm.VM {
	return app.vm
}

// Genesis applies accounts from the file in the checkpoint format as the genesis slot.
func (app *App) Genesis(path string) ([]types.Account, error) {
	if app.vm == nil {
		return nil, ErrNotStarted
	}
	data, err := checkpoint.Read(app.fs, path)
	if err != nil {
		return nil, err
	}
	accounts, err := data.Accounts()
	if err != nil {
		return nil, err
	}
	slices.SortFunc(accounts, func(a, b types.Account) int {
		return bytes.Compare(a.Key[:], b.Key[:])
	})
	if _, err := app.vm.StateRoot(0); err == nil {
		return accounts, app.verifyGenesis(accounts)
	} else if !errors.Is(err, sql.ErrNotFound) {
		return nil, err
	}
	if err := app.vm.ApplyGenesis(accounts); err != nil {
		return nil, err
	}
	app.log.Info("genesis applied",
		zap.String("path", path),
		zap.Int("accounts", len(accounts)),
	)
	return accounts, nil
}

// verifyGenesis checks that accounts, ordered by key, are the same as the applied genesis.
func (app *App) verifyGenesis(accounts []types.Account) error {
	applied, err := dbaccounts.Snapshot(app.db, 0)
	if err != nil {
		return err
	}
	existing := make([]types.Account, 0, len(applied))
	for _, account := range applied {
		existing = append(existing, *account)
	}
	if diff := cmp.Diff(existing, accounts, cmpopts.EquateEmpty()); diff != "" {
		app.log.Error("genesis accounts updated after genesis was applied", zap.String("diff", diff))
		return fmt.Errorf("%w:\n%s", ErrGenesisMismatch, diff)
	}
	app.log.Info("genesis is already applied")
	return nil
}

// Checkpoint writes state of all accounts as of the slot into the data directory.
func (app *App) Checkpoint(ctx context.Context, slot types.Slot) (string, error) {
	if app.db == nil {
		return "", ErrNotStarted
	}
	path, err := checkpoint.Generate(ctx, app.fs, app.db, app.Config.DataDir(), slot)
	if err != nil {
		return "", err
	}
	app.log.Info("checkpoint generated",
		zap.String("path", path),
		zap.Uint64("slot", uint64(slot)),
	)
	return path, nil
}

// Submit applies transactions in the slot that follows the last applied one.
func (app *App) Submit(ctx context.Context, txs ...types.Transaction) (types.Slot, []types.TransactionResult, error) {
	if app.vm == nil {
		return 0, nil, ErrNotStarted
	}
	if _, err := app.vm.StateRoot(0); errors.Is(err, sql.ErrNotFound) {
		return 0, nil, ErrNoGenesis
	} else if err != nil {
		return 0, nil, err
	}
	last, err := app.vm.LastSlot()
	if err != nil {
		return 0, nil, err
	}
	slot := last + 1
	rst, err := app.vm.Apply(ctx, slot, txs)
	if err != nil {
		return 0, nil, err
	}
	return slot, rst, nil
}

// Cleanup stops metrics server and closes the database.
func (app *App) Cleanup(ctx context.Context) {
	app.log.Debug("app cleanup starting...")
	if app.metrics != nil {
		if err := app.metrics.Close(ctx); err != nil {
			app.log.Warn("failed to stop metrics server", zap.Error(err))
		}
		app.metrics = nil
	}
	if err := app.eg.Wait(); err != nil {
		app.log.Error("background task failed", zap.Error(err))
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.log.Error("failed to close database", zap.Error(err))
		}
		app.db = nil
		app.vm = nil
	}
	app.log.Debug("app cleanup completed")
}
