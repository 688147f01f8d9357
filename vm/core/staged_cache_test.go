package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aicredit/go-aicredit/common/types"
	"github.com/aicredit/go-aicredit/vm/core"
	"github.com/aicredit/go-aicredit/vm/core/mocks"
)

func TestStagedCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockAccountLoader(ctrl)

	first := types.Pubkey{1}
	second := types.Pubkey{2}
	loader.EXPECT().Get(first).Return(types.Account{Key: first, Data: []byte{1}}, nil)

	ss := core.NewStagedCache(loader)
	account, err := ss.Get(first)
	require.NoError(t, err)
	require.Equal(t, []byte{1}, account.Data)

	require.NoError(t, ss.Update(types.Account{Key: second, Data: []byte{2}}))
	account.Data[0] = 3
	require.NoError(t, ss.Update(account))
	// mutating returned copy doesn't change the cache
	account.Data[0] = 4

	got, err := ss.Get(first)
	require.NoError(t, err)
	require.Equal(t, []byte{3}, got.Data)
	require.Equal(t, 2, ss.Changed())

	updater := mocks.NewMockAccountUpdater(ctrl)
	gomock.InOrder(
		updater.EXPECT().Update(types.Account{Key: second, Data: []byte{2}}).Return(nil),
		updater.EXPECT().Update(types.Account{Key: first, Data: []byte{3}}).Return(nil),
	)
	keys, err := ss.Flush(updater)
	require.NoError(t, err)
	require.Equal(t, []types.Pubkey{second, first}, keys)
}

func TestStagedCacheErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockAccountLoader(ctrl)
	errLoad := errors.New("load")
	loader.EXPECT().Get(gomock.Any()).Return(types.Account{}, errLoad)

	ss := core.NewStagedCache(loader)
	_, err := ss.Get(types.Pubkey{1})
	require.ErrorIs(t, err, errLoad)

	require.NoError(t, ss.Update(types.Account{Key: types.Pubkey{1}}))
	require.NoError(t, ss.Update(types.Account{Key: types.Pubkey{2}}))
	updater := mocks.NewMockAccountUpdater(ctrl)
	errUpdate := errors.New("update")
	updater.EXPECT().Update(gomock.Any()).Return(errUpdate)
	_, err = ss.Flush(updater)
	require.ErrorIs(t, err, errUpdate)
}
