package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aicredit/go-aicredit/filesystem"
	"github.com/aicredit/go-aicredit/node"
)

func genesisCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Create genesis accounts from the file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if file != "" {
				conf.Genesis.Accounts = filesystem.GetCanonicalPath(file)
			}
			path, err := conf.GenesisPath()
			if err != nil {
				return err
			}
			return runApp(cmd, conf, func(ctx context.Context, app *node.App) error {
				accounts, err := app.Genesis(path)
				if err != nil {
					return err
				}
				root, err := app.VM().StateRoot(0)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "accounts: %d\nstate root: %s\n", len(accounts), root)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the accounts file in the checkpoint format")
	return cmd
}
