package accounts

import (
	"fmt"

	"github.com/aicredit/go-aicredit/common/types"
	"github.com/aicredit/go-aicredit/sql"
)

const columns = "key, slot, owner, lamports, executable, data"

func decode(stmt *sql.Statement, account *types.Account) {
	stmt.ColumnBytes(0, account.Key[:])
	account.Slot = types.Slot(stmt.ColumnInt64(1))
	stmt.ColumnBytes(2, account.Owner[:])
	account.Lamports = uint64(stmt.ColumnInt64(3))
	account.Executable = stmt.ColumnInt(4) != 0
	if n := stmt.ColumnLen(5); n > 0 {
		account.Data = make([]byte, n)
		stmt.ColumnBytes(5, account.Data)
	} else {
		account.Data = nil
	}
}

func load(db sql.Executor, query string, enc sql.Encoder) (types.Account, error) {
	var account types.Account
	rows, err := db.Exec(query, enc, func(stmt *sql.Statement) bool {
		decode(stmt, &account)
		return false
	})
	if err != nil {
		return types.Account{}, err
	}
	if rows == 0 {
		return types.Account{}, sql.ErrNotFound
	}
	return account, nil
}

// Has the account in the database.
func Has(db sql.Executor, key types.Pubkey) (bool, error) {
	rows, err := db.Exec("select 1 from accounts where key = ?1;",
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, key[:])
		}, nil,
	)
	if err != nil {
		return false, fmt.Errorf("has account %v: %w", key, err)
	}
	return rows > 0, nil
}

// Latest account state for the key.
// Returns sql.ErrNotFound if account was never written.
func Latest(db sql.Executor, key types.Pubkey) (types.Account, error) {
	account, err := load(db,
		"select "+columns+" from accounts where key = ?1 order by slot desc;",
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, key[:])
		},
	)
	if err != nil {
		return types.Account{}, fmt.Errorf("load %v: %w", key, err)
	}
	return account, nil
}

// Get account state that was valid at the specified slot.
func Get(db sql.Executor, key types.Pubkey, slot types.Slot) (types.Account, error) {
	account, err := load(db,
		"select "+columns+" from accounts where key = ?1 and slot <= ?2 order by slot desc;",
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, key[:])
			stmt.BindInt64(2, int64(slot))
		},
	)
	if err != nil {
		return types.Account{}, fmt.Errorf("load %v at slot %d: %w", key, slot, err)
	}
	return account, nil
}

// All returns the latest state of every account ordered by key.
func All(db sql.Executor) ([]*types.Account, error) {
	var rst []*types.Account
	_, err := db.Exec(`select key, max(slot), owner, lamports, executable, data
		from accounts group by key order by key asc;`,
		nil,
		func(stmt *sql.Statement) bool {
			var account types.Account
			decode(stmt, &account)
			rst = append(rst, &account)
			return true
		},
	)
	if err != nil {
		return nil, fmt.Errorf("load all accounts: %w", err)
	}
	return rst, nil
}

// Snapshot returns state of every account as of the slot, ordered by key.
func Snapshot(db sql.Executor, slot types.Slot) ([]*types.Account, error) {
	var rst []*types.Account
	_, err := db.Exec(`select key, max(slot), owner, lamports, executable, data
		from accounts where slot <= ?1 group by key order by key asc;`,
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, int64(slot))
		},
		func(stmt *sql.Statement) bool {
			var account types.Account
			decode(stmt, &account)
			rst = append(rst, &account)
			return true
		},
	)
	if err != nil {
		return nil, fmt.Errorf("accounts snapshot at slot %d: %w", slot, err)
	}
	return rst, nil
}

// Update inserts account state for the slot in account.Slot.
func Update(db sql.Executor, account *types.Account) error {
	_, err := db.Exec(`insert into accounts (`+columns+`)
		values (?1, ?2, ?3, ?4, ?5, ?6)
		on conflict (key, slot) do update set
		owner = ?3, lamports = ?4, executable = ?5, data = ?6;`,
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, account.Key[:])
			stmt.BindInt64(2, int64(account.Slot))
			stmt.BindBytes(3, account.Owner[:])
			stmt.BindInt64(4, int64(account.Lamports))
			stmt.BindBool(5, account.Executable)
			if len(account.Data) == 0 {
				stmt.BindNull(6)
			} else {
				stmt.BindBytes(6, account.Data)
			}
		}, nil)
	if err != nil {
		return fmt.Errorf("insert account %v for slot %d: %w", account.Key, account.Slot, err)
	}
	return nil
}

// Revert state after the slot.
func Revert(db sql.Executor, after types.Slot) error {
	_, err := db.Exec(`delete from accounts where slot > ?1;`,
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, int64(after))
		}, nil)
	if err != nil {
		return fmt.Errorf("revert accounts after slot %d: %w", after, err)
	}
	return nil
}
