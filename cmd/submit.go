package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/mr-tron/base58"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/aicredit/go-aicredit/common/types"
	"github.com/aicredit/go-aicredit/config"
	"github.com/aicredit/go-aicredit/keystore"
	"github.com/aicredit/go-aicredit/node"
	"github.com/aicredit/go-aicredit/vm/sdk"
	sdkcredits "github.com/aicredit/go-aicredit/vm/sdk/credits"
	sdkwallet "github.com/aicredit/go-aicredit/vm/sdk/wallet"
)

// txFlags are shared by the commands that submit transactions.
type txFlags struct {
	nonce uint64
	data  string
}

func (f *txFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&f.nonce, "nonce", 0, "Nonce to distinguish identical transactions, current time if not set")
	cmd.Flags().StringVar(&f.data, "data", "", "Base58 encoded bytes appended to the instruction data")
}

// options returns sdk options for the instruction.
// Configured keypair, if it exists, is marked as a signer.
func (f *txFlags) options(conf *config.Config) ([]sdk.Opt, error) {
	var opts []sdk.Opt
	if f.data != "" {
		data, err := base58.Decode(f.data)
		if err != nil {
			return nil, fmt.Errorf("decode data %s: %w", f.data, err)
		}
		opts = append(opts, sdk.WithTrailing(data))
	}
	priv, err := keystore.Load(afero.NewOsFs(), conf.KeypairPath())
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		opts = append(opts, sdk.WithSigner(priv.PublicKey()))
	}
	return opts, nil
}

func (f *txFlags) submit(cmd *cobra.Command, conf *config.Config, ix types.Instruction) error {
	return runApp(cmd, conf, func(ctx context.Context, app *node.App) error {
		nonce := f.nonce
		if nonce == 0 {
			nonce = uint64(app.Now().UnixNano())
		}
		slot, rst, err := app.Submit(ctx, sdk.Transaction(nonce, ix))
		if err != nil {
			return err
		}
		if len(rst) == 0 {
			return fmt.Errorf("transaction was skipped in slot %d", slot)
		}
		return printJSON(cmd.OutOrStdout(), newResultView(&rst[0]))
	})
}

func creditCmd() *cobra.Command {
	var (
		tx     txFlags
		user   string
		token  string
		amount uint8
	)
	cmd := &cobra.Command{
		Use:   "credit",
		Short: "Add credits to the user account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			userKey, err := types.ParsePubkey(user)
			if err != nil {
				return fmt.Errorf("user %s: %w", user, err)
			}
			tokenKey, err := types.ParsePubkey(token)
			if err != nil {
				return fmt.Errorf("token %s: %w", token, err)
			}
			opts, err := tx.options(conf)
			if err != nil {
				return err
			}
			return tx.submit(cmd, conf, sdkcredits.AddCredits(userKey, tokenKey, amount, opts...))
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "User account that receives credits")
	cmd.Flags().StringVar(&token, "token", "", "Token account")
	cmd.Flags().Uint8Var(&amount, "amount", 0, "Amount of credits, 1-255")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("token")
	_ = cmd.MarkFlagRequired("amount")
	tx.register(cmd)
	return cmd
}

func initializeCmd() *cobra.Command {
	var tx txFlags
	cmd := &cobra.Command{
		Use:   "initialize",
		Short: "Invoke initialize instruction of the wallet program",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			opts, err := tx.options(conf)
			if err != nil {
				return err
			}
			return tx.submit(cmd, conf, sdkwallet.Initialize(opts...))
		},
	}
	tx.register(cmd)
	return cmd
}

type resultView struct {
	ID           string   `json:"id"`
	Slot         uint64   `json:"slot"`
	Status       string   `json:"status"`
	Message      string   `json:"message,omitempty"`
	ComputeUnits uint64   `json:"computeUnits"`
	Logs         []string `json:"logs"`
	Accounts     []string `json:"accounts,omitempty"`
}

func newResultView(rst *types.TransactionResult) resultView {
	view := resultView{
		ID:           rst.ID.String(),
		Slot:         uint64(rst.Slot),
		Status:       rst.Status.String(),
		Message:      rst.Message,
		ComputeUnits: rst.ComputeUnits,
		Logs:         rst.Logs,
	}
	for _, key := range rst.Accounts {
		view.Accounts = append(view.Accounts, key.String())
	}
	return view
}

func printJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
