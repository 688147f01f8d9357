package results

import (
	"fmt"

	"github.com/aicredit/go-aicredit/codec"
	"github.com/aicredit/go-aicredit/common/types"
	"github.com/aicredit/go-aicredit/sql"
)

// Add stores the result of the applied transaction.
func Add(db sql.Executor, rst *types.TransactionResult) error {
	buf, err := codec.Encode(rst)
	if err != nil {
		return fmt.Errorf("encode result %v: %w", rst.ID, err)
	}
	if _, err := db.Exec(`insert into results (id, slot, status, result)
		values (?1, ?2, ?3, ?4);`,
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, rst.ID[:])
			stmt.BindInt64(2, int64(rst.Slot))
			stmt.BindInt64(3, int64(rst.Status))
			stmt.BindBytes(4, buf)
		}, nil); err != nil {
		return fmt.Errorf("insert result %v: %w", rst.ID, err)
	}
	return nil
}

func decode(stmt *sql.Statement, col int) (*types.TransactionResult, error) {
	buf := make([]byte, stmt.ColumnLen(col))
	stmt.ColumnBytes(col, buf)
	var rst types.TransactionResult
	if err := codec.Decode(buf, &rst); err != nil {
		return nil, err
	}
	return &rst, nil
}

// Get result by transaction id.
func Get(db sql.Executor, id types.TransactionID) (rst *types.TransactionResult, err error) {
	var decErr error
	rows, err := db.Exec(`select result from results where id = ?1;`,
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, id[:])
		},
		func(stmt *sql.Statement) bool {
			rst, decErr = decode(stmt, 0)
			return false
		})
	if err != nil {
		return nil, fmt.Errorf("get result %v: %w", id, err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("result %v: %w", id, sql.ErrNotFound)
	}
	if decErr != nil {
		return nil, fmt.Errorf("decode result %v: %w", id, decErr)
	}
	return rst, nil
}

// InSlot returns results of the transactions applied in the slot.
func InSlot(db sql.Executor, slot types.Slot) ([]*types.TransactionResult, error) {
	var (
		rst    []*types.TransactionResult
		decErr error
	)
	_, err := db.Exec(`select result from results where slot = ?1 order by rowid asc;`,
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, int64(slot))
		},
		func(stmt *sql.Statement) bool {
			var r *types.TransactionResult
			if r, decErr = decode(stmt, 0); decErr != nil {
				return false
			}
			rst = append(rst, r)
			return true
		})
	if err != nil {
		return nil, fmt.Errorf("results in slot %d: %w", slot, err)
	}
	if decErr != nil {
		return nil, fmt.Errorf("decode results in slot %d: %w", slot, decErr)
	}
	return rst, nil
}

// Revert deletes results after the slot.
func Revert(db sql.Executor, after types.Slot) error {
	if _, err := db.Exec(`delete from results where slot > ?1;`,
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, int64(after))
		}, nil); err != nil {
		return fmt.Errorf("revert results after slot %d: %w", after, err)
	}
	return nil
}
