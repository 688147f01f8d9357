package slots

import (
	"fmt"
	"time"

	"github.com/aicredit/go-aicredit/common/types"
	"github.com/aicredit/go-aicredit/sql"
)

// Add records state root and block time of the applied slot.
func Add(db sql.Executor, slot types.Slot, root types.Hash32, blockTime time.Time) error {
	if _, err := db.Exec(`insert into slots (id, state_root, block_time) values (?1, ?2, ?3);`,
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, int64(slot))
			stmt.BindBytes(2, root[:])
			stmt.BindInt64(3, blockTime.Unix())
		}, nil); err != nil {
		return fmt.Errorf("insert slot %d: %w", slot, err)
	}
	return nil
}

// StateRoot of the applied slot.
func StateRoot(db sql.Executor, slot types.Slot) (types.Hash32, error) {
	var root types.Hash32
	rows, err := db.Exec(`select state_root from slots where id = ?1;`,
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, int64(slot))
		},
		func(stmt *sql.Statement) bool {
			stmt.ColumnBytes(0, root[:])
			return false
		})
	if err != nil {
		return types.Hash32{}, fmt.Errorf("state root for slot %d: %w", slot, err)
	}
	if rows == 0 {
		return types.Hash32{}, fmt.Errorf("state root for slot %d: %w", slot, sql.ErrNotFound)
	}
	return root, nil
}

// BlockTime of the applied slot.
func BlockTime(db sql.Executor, slot types.Slot) (time.Time, error) {
	var ts int64
	rows, err := db.Exec(`select block_time from slots where id = ?1;`,
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, int64(slot))
		},
		func(stmt *sql.Statement) bool {
			ts = stmt.ColumnInt64(0)
			return false
		})
	if err != nil {
		return time.Time{}, fmt.Errorf("block time for slot %d: %w", slot, err)
	}
	if rows == 0 {
		return time.Time{}, fmt.Errorf("block time for slot %d: %w", slot, sql.ErrNotFound)
	}
	return time.Unix(ts, 0), nil
}

// Last returns the latest applied slot. Zero if nothing was applied.
func Last(db sql.Executor) (types.Slot, error) {
	var slot types.Slot
	if _, err := db.Exec(`select max(id) from slots;`, nil,
		func(stmt *sql.Statement) bool {
			slot = types.Slot(stmt.ColumnInt64(0))
			return false
		}); err != nil {
		return 0, fmt.Errorf("last slot: %w", err)
	}
	return slot, nil
}

// Revert deletes slots after the provided one.
func Revert(db sql.Executor, after types.Slot) error {
	if _, err := db.Exec(`delete from slots where id > ?1;`,
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, int64(after))
		}, nil); err != nil {
		return fmt.Errorf("revert slots after %d: %w", after, err)
	}
	return nil
}
