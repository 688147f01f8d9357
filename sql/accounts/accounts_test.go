package accounts

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aicredit/go-aicredit/common/types"
	"github.com/aicredit/go-aicredit/sql"
)

func genSeq(key types.Pubkey, n int) []*types.Account {
	seq := make([]*types.Account, n)
	for i := range seq {
		seq[i] = &types.Account{
			Key:      key,
			Owner:    types.Pubkey{9},
			Lamports: uint64(i + 1),
			Data:     []byte{byte(i), 0, 0, 0, 0, 0, 0, 0, 0},
			Slot:     types.Slot(i + 1),
		}
	}
	return seq
}

func TestUpdate(t *testing.T) {
	db := sql.InMemory()
	key := types.Pubkey{1, 1}
	seq := genSeq(key, 2)
	for _, account := range seq {
		require.NoError(t, Update(db, account))
	}

	latest, err := Latest(db, key)
	require.NoError(t, err)
	require.Equal(t, *seq[len(seq)-1], latest)
}

func TestUpdateSameSlot(t *testing.T) {
	db := sql.InMemory()
	account := &types.Account{Key: types.Pubkey{3}, Lamports: 10, Slot: 4}
	require.NoError(t, Update(db, account))
	account.Lamports = 20
	account.Data = []byte{1}
	require.NoError(t, Update(db, account))

	latest, err := Latest(db, account.Key)
	require.NoError(t, err)
	require.Equal(t, *account, latest)
}

func TestLatestNotFound(t *testing.T) {
	db := sql.InMemory()
	_, err := Latest(db, types.Pubkey{7})
	require.ErrorIs(t, err, sql.ErrNotFound)

	has, err := Has(db, types.Pubkey{7})
	require.NoError(t, err)
	require.False(t, has)
}

func TestGetAtSlot(t *testing.T) {
	db := sql.InMemory()
	key := types.Pubkey{2}
	seq := genSeq(key, 5)
	for _, account := range seq {
		require.NoError(t, Update(db, account))
	}
	for _, expected := range seq {
		account, err := Get(db, key, expected.Slot)
		require.NoError(t, err)
		require.Equal(t, *expected, account)
	}
	_, err := Get(db, key, 0)
	require.ErrorIs(t, err, sql.ErrNotFound)
}

func TestAll(t *testing.T) {
	db := sql.InMemory()
	keys := []types.Pubkey{{1}, {2}, {3}}
	for _, key := range keys {
		for _, account := range genSeq(key, 3) {
			require.NoError(t, Update(db, account))
		}
	}
	all, err := All(db)
	require.NoError(t, err)
	require.Len(t, all, len(keys))
	for i, account := range all {
		require.Equal(t, keys[i], account.Key)
		require.Equal(t, types.Slot(3), account.Slot)
		require.Equal(t, uint64(3), account.Lamports)
	}
}

func TestRevert(t *testing.T) {
	db := sql.InMemory()
	key := types.Pubkey{4}
	seq := genSeq(key, 4)
	for _, account := range seq {
		require.NoError(t, Update(db, account))
	}
	require.NoError(t, Revert(db, 2))

	latest, err := Latest(db, key)
	require.NoError(t, err)
	require.Equal(t, *seq[1], latest)
}

func TestSnapshot(t *testing.T) {
	db := sql.InMemory()
	first := genSeq(types.Pubkey{1}, 3)
	second := genSeq(types.Pubkey{2}, 1)
	for _, account := range append(first, second...) {
		require.NoError(t, Update(db, account))
	}

	snapshot, err := Snapshot(db, 2)
	require.NoError(t, err)
	require.Equal(t, []*types.Account{first[1], second[0]}, snapshot)

	snapshot, err = Snapshot(db, 0)
	require.NoError(t, err)
	require.Empty(t, snapshot)

	snapshot, err = Snapshot(db, 10)
	require.NoError(t, err)
	require.Equal(t, []*types.Account{first[2], second[0]}, snapshot)
}
