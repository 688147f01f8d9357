package checkpoint

import (
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/aicredit/go-aicredit/common/types"
)

type Checkpoint struct {
	Version string    `json:"version"`
	Data    InnerData `json:"data"`
}

type InnerData struct {
	CheckpointID string    `json:"id,omitempty"`
	Slot         uint64    `json:"slot"`
	StateRoot    string    `json:"stateRoot,omitempty"`
	Accounts     []Account `json:"accounts"`
}

// Account is an account state with keys and data encoded in base58.
type Account struct {
	Key        string `json:"key"`
	Owner      string `json:"owner"`
	Lamports   uint64 `json:"lamports"`
	Executable bool   `json:"executable"`
	Data       string `json:"data"`
}

// FromAccount encodes account for the checkpoint.
func FromAccount(account *types.Account) Account {
	return Account{
		Key:        account.Key.String(),
		Owner:      account.Owner.String(),
		Lamports:   account.Lamports,
		Executable: account.Executable,
		Data:       base58.Encode(account.Data),
	}
}

// Decode account state.
func (a *Account) Decode() (types.Account, error) {
	key, err := types.ParsePubkey(a.Key)
	if err != nil {
		return types.Account{}, fmt.Errorf("account key %s: %w", a.Key, err)
	}
	owner, err := types.ParsePubkey(a.Owner)
	if err != nil {
		return types.Account{}, fmt.Errorf("owner of %s: %w", a.Key, err)
	}
	var data []byte
	if len(a.Data) > 0 {
		data, err = base58.Decode(a.Data)
		if err != nil {
			return types.Account{}, fmt.Errorf("data of %s: %w", a.Key, err)
		}
	}
	return types.Account{
		Key:        key,
		Owner:      owner,
		Lamports:   a.Lamports,
		Executable: a.Executable,
		Data:       data,
	}, nil
}

// Accounts decodes every account in the checkpoint.
// Duplicate keys are rejected.
func (c *Checkpoint) Accounts() ([]types.Account, error) {
	rst := make([]types.Account, 0, len(c.Data.Accounts))
	seen := make(map[types.Pubkey]struct{}, len(c.Data.Accounts))
	for i := range c.Data.Accounts {
		account, err := c.Data.Accounts[i].Decode()
		if err != nil {
			return nil, err
		}
		if _, exist := seen[account.Key]; exist {
			return nil, fmt.Errorf("duplicate account %s", account.Key)
		}
		seen[account.Key] = struct{}{}
		rst = append(rst, account)
	}
	return rst, nil
}
