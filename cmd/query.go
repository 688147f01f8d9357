package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aicredit/go-aicredit/checkpoint"
	"github.com/aicredit/go-aicredit/common/types"
	"github.com/aicredit/go-aicredit/node"
	"github.com/aicredit/go-aicredit/vm/programs/credits"
)

type creditsView struct {
	Initialized bool   `json:"initialized"`
	Credits     uint64 `json:"credits"`
}

type accountView struct {
	checkpoint.Account
	Slot    uint64       `json:"slot"`
	Credits *creditsView `json:"credits,omitempty"`
}

func newAccountView(account *types.Account) accountView {
	view := accountView{
		Account: checkpoint.FromAccount(account),
		Slot:    uint64(account.Slot),
	}
	if account.Owner == credits.ProgramID {
		if state, err := credits.DecodeUnchecked(account.Data); err == nil {
			view.Credits = &creditsView{Initialized: state.IsInitialized, Credits: state.Credits}
		}
	}
	return view
}

func accountCmd() *cobra.Command {
	var slot int64
	cmd := &cobra.Command{
		Use:   "account <key>",
		Short: "Print state of the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := types.ParsePubkey(args[0])
			if err != nil {
				return fmt.Errorf("account %s: %w", args[0], err)
			}
			return withApp(cmd, func(ctx context.Context, app *node.App) error {
				var account types.Account
				if slot < 0 {
					account, err = app.VM().Account(key)
				} else {
					account, err = app.VM().AccountAt(key, types.Slot(slot))
				}
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), newAccountView(&account))
			})
		},
	}
	cmd.Flags().Int64Var(&slot, "slot", -1, "Print state as of the slot, latest if not set")
	return cmd
}

func resultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "result <tx id>",
		Short: "Print result of the transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := types.HexToHash32(args[0])
			if err != nil {
				return fmt.Errorf("transaction id %s: %w", args[0], err)
			}
			return withApp(cmd, func(ctx context.Context, app *node.App) error {
				rst, err := app.VM().Result(types.TransactionID(hash))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), newResultView(rst))
			})
		},
	}
}

func checkpointCmd() *cobra.Command {
	var slot int64
	cmd := &cobra.Command{
		Use:   "checkpoint",
		Short: "Write state of all accounts into the checkpoint file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *node.App) error {
				snapshot := types.Slot(slot)
				if slot < 0 {
					last, err := app.VM().LastSlot()
					if err != nil {
						return err
					}
					snapshot = last
				}
				path, err := app.Checkpoint(ctx, snapshot)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&slot, "slot", -1, "Snapshot slot, last applied if not set")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version info",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprint(out, Version)
			if Commit != "" {
				fmt.Fprintf(out, "+%s", Commit)
			}
			fmt.Fprintln(out)
		},
	}
}
