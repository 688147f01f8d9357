package vm

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/aicredit/go-aicredit/common/types"
	"github.com/aicredit/go-aicredit/sql"
	"github.com/aicredit/go-aicredit/sql/accounts"
	"github.com/aicredit/go-aicredit/vm/core"
)

type accountCache = lru.Cache[types.Pubkey, types.Account]

// accountLoader reads latest committed state of the accounts.
// Accounts that were never written are returned empty, owned by the zero key.
//
// Only a loader created while holding the vm lock may fill the cache. Otherwise a state read
// before a commit can be added after the committed state and shadow it.
type accountLoader struct {
	db    sql.Executor
	cache *accountCache
	fill  bool
}

func (l *accountLoader) Get(key types.Pubkey) (types.Account, error) {
	if account, exist := l.cache.Get(key); exist {
		return account.Copy(), nil
	}
	account, err := accounts.Latest(l.db, key)
	switch {
	case errors.Is(err, sql.ErrNotFound):
		account = types.Account{Key: key}
	case err != nil:
		return types.Account{}, fmt.Errorf("%w: %w", core.ErrInternal, err)
	}
	if l.fill {
		l.cache.Add(key, account.Copy())
	}
	return account, nil
}
