package checkpoint

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/aicredit/go-aicredit/common/types"
	"github.com/aicredit/go-aicredit/sql"
	"github.com/aicredit/go-aicredit/sql/accounts"
	"github.com/aicredit/go-aicredit/sql/slots"
)

const (
	SchemaVersion = "https://aicredit.dev/checkpoint.schema.json.1.0"

	checkpointDir = "checkpoint"
	schemaFile    = "schema.json"
	dirPerm       = 0o700
)

func checkpointDB(ctx context.Context, db *sql.Database, snapshot types.Slot) (*Checkpoint, error) {
	checkpoint := &Checkpoint{
		Version: SchemaVersion,
		Data: InnerData{
			CheckpointID: fmt.Sprintf("snapshot-%d", snapshot),
			Slot:         uint64(snapshot),
			Accounts:     []Account{},
		},
	}

	tx, err := db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("create db tx: %w", err)
	}
	defer tx.Release()

	root, err := slots.StateRoot(tx, snapshot)
	if err != nil {
		return nil, fmt.Errorf("state root: %w", err)
	}
	checkpoint.Data.StateRoot = root.Hex()

	acctSnapshot, err := accounts.Snapshot(tx, snapshot)
	if err != nil {
		return nil, fmt.Errorf("accounts snapshot: %w", err)
	}
	for _, acct := range acctSnapshot {
		checkpoint.Data.Accounts = append(checkpoint.Data.Accounts, FromAccount(acct))
	}
	return checkpoint, nil
}

// Generate writes state of the accounts as of the snapshot slot into the data directory.
// Returns path to the written file.
func Generate(ctx context.Context, fs afero.Fs, db *sql.Database, dataDir string, snapshot types.Slot) (string, error) {
	checkpoint, err := checkpointDB(ctx, db, snapshot)
	if err != nil {
		return "", err
	}
	path := SelfCheckpointFilename(dataDir, snapshot)
	err = writeAtomic(fs, path, func(w io.Writer) error {
		if err := json.NewEncoder(w).Encode(checkpoint); err != nil {
			return fmt.Errorf("marshal checkpoint json: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("write checkpoint %v: %w", path, err)
	}
	return path, nil
}

func SelfCheckpointFilename(dataDir string, snapshot types.Slot) string {
	return filepath.Join(filepath.Join(dataDir, checkpointDir), fmt.Sprintf("snapshot-%d", snapshot))
}

// Read validates and decodes the checkpoint file.
func Read(fs afero.Fs, path string) (*Checkpoint, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read checkpoint file %v: %w", path, err)
	}
	if err := ValidateSchema(data); err != nil {
		return nil, err
	}
	var checkpoint Checkpoint
	if err := json.Unmarshal(data, &checkpoint); err != nil {
		return nil, fmt.Errorf("unmarshal checkpoint from %v: %w", path, err)
	}
	return &checkpoint, nil
}
