package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/aicredit/go-aicredit/filesystem"
	"github.com/aicredit/go-aicredit/keystore"
)

func keygenCmd() *cobra.Command {
	var (
		output string
		force  bool
	)
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new keypair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			path := conf.KeypairPath()
			if output != "" {
				path = filesystem.GetCanonicalPath(output)
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("keypair already exists at %s, use --force to overwrite", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			priv, err := keystore.Generate()
			if err != nil {
				return err
			}
			if err := keystore.Save(path, priv); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pubkey: %s\nsaved: %s\n", priv.PublicKey(), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Path to the keypair file, defaults to the configured keypair")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing keypair")
	return cmd
}
