// Package cmd contains the aicredit command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aicredit/go-aicredit/config"
	"github.com/aicredit/go-aicredit/node"
)

var (
	// Version is the app's semantic version. Designed to be overwritten by make.
	Version string

	// Branch is the git branch used to build the App. Designed to be overwritten by make.
	Branch string

	// Commit is the git commit used to build the app. Designed to be overwritten by make.
	Commit string
)

// withApp starts the app with the configuration from flags and config file,
// runs f and stops the app.
func withApp(cmd *cobra.Command, f func(ctx context.Context, app *node.App) error) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return runApp(cmd, conf, f)
}

func runApp(cmd *cobra.Command, conf *config.Config, f func(ctx context.Context, app *node.App) error) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := node.NewLogger(cmd.ErrOrStderr(), conf.LOGGING.Encoder)
	defer logger.Sync()

	app := node.New(
		node.WithConfig(conf),
		node.WithLog(logger),
	)
	if err := app.Lock(); err != nil {
		return err
	}
	defer app.Unlock()

	if err := app.Start(ctx); err != nil {
		logger.Error("failed to start app", zap.Error(err))
		return fmt.Errorf("start app: %w", err)
	}
	defer app.Cleanup(context.Background())
	return f(ctx, app)
}
