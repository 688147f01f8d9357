package core

// NewStagedCache returns instance of the staged cache.
func NewStagedCache(loader AccountLoader) *StagedCache {
	return &StagedCache{loader: loader, cache: map[Pubkey]*Account{}}
}

// StagedCache is a passthrough cache for accounts state and for changed accounts.
// Writes are kept in memory and are visible to subsequent reads until the cache is dropped.
type StagedCache struct {
	loader AccountLoader

	cache map[Pubkey]*Account
	// order of the touched accounts, preserved to produce deterministic output.
	touched []Pubkey
}

// Get a copy of the account from the cache, or from the underlying loader.
func (ss *StagedCache) Get(key Pubkey) (Account, error) {
	if account, exist := ss.cache[key]; exist {
		return account.Copy(), nil
	}
	account, err := ss.loader.Get(key)
	if err != nil {
		return Account{}, err
	}
	return account, nil
}

// Update the account in the cache.
func (ss *StagedCache) Update(account Account) error {
	cp := account.Copy()
	if _, exist := ss.cache[account.Key]; !exist {
		ss.touched = append(ss.touched, account.Key)
	}
	ss.cache[account.Key] = &cp
	return nil
}

// Changed returns the number of changed accounts.
func (ss *StagedCache) Changed() int {
	return len(ss.touched)
}

// IterateChanged accounts in the order they were updated for the first time.
func (ss *StagedCache) IterateChanged(f func(*Account) bool) {
	for _, key := range ss.touched {
		if !f(ss.cache[key]) {
			return
		}
	}
}

// Flush changed accounts into the updater, in order.
func (ss *StagedCache) Flush(updater AccountUpdater) ([]Pubkey, error) {
	var err error
	ss.IterateChanged(func(account *Account) bool {
		err = updater.Update(*account)
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return append([]Pubkey(nil), ss.touched...), nil
}
