package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aicredit/go-aicredit/config"
	"github.com/aicredit/go-aicredit/config/presets"
)

// flagKeys maps persistent flags to the keys of the config file.
var flagKeys = map[string]string{
	"data-folder":         "main.data-folder",
	"filelock":            "main.filelock",
	"keypair":             "main.keypair",
	"db-connections":      "main.db-connections",
	"db-latency-metering": "main.db-latency-metering",
	"metrics":             "main.metrics",
	"metrics-port":        "main.metrics-port",
	"compute-limit":       "vm.compute-limit",
	"cache-size":          "vm.cache-size",
	"genesis-accounts":    "genesis.accounts",
	"log-encoder":         "logging.log-encoder",
	"log-level":           "logging.app",
	"vm-log-level":        "logging.vm",
}

// NewRootCmd creates aicredit command with all subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "aicredit",
		Short:         "Credit ledger and wallet programs on an account vm",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetContext(context.Background())
	AddCommands(root)
	root.AddCommand(
		keygenCmd(),
		genesisCmd(),
		creditCmd(),
		initializeCmd(),
		accountCmd(),
		resultCmd(),
		checkpointCmd(),
		versionCmd(),
	)
	return root
}

// AddCommands adds persistent flags to the command.
// Flags that are set explicitly take precedence over the config file and preset.
func AddCommands(cmd *cobra.Command) {
	defaults := config.DefaultConfig()
	flags := cmd.PersistentFlags()
	flags.StringP("preset", "p", "",
		fmt.Sprintf("preset overwrites default values of the config. options %+s", presets.Options()))
	flags.StringP("config", "c", "", "Load configuration from file")

	/** ======================== BaseConfig Flags ========================== **/
	flags.StringP("data-folder", "d", defaults.DataDirParent, "Specify data directory for aicredit")
	flags.String("filelock", defaults.FileLock, "Filesystem lock to prevent running more than one instance")
	flags.String("keypair", defaults.Keypair, "Path to the keypair, defaults to id.json in the data directory")
	flags.Int("db-connections", defaults.DatabaseConnections, "Database connection pool size")
	flags.Bool("db-latency-metering", defaults.DatabaseLatencyMetering, "Enable database query latency metrics")
	flags.Bool("metrics", defaults.CollectMetrics, "Collect metrics")
	flags.Int("metrics-port", defaults.MetricsPort, "Metrics server port")

	/** ======================== VM Flags ========================== **/
	flags.Uint64("compute-limit", defaults.VM.ComputeLimit, "Compute units available to a single transaction")
	flags.Int("cache-size", defaults.VM.CacheSize, "Number of accounts cached in memory")

	/** ======================== Genesis Flags ========================== **/
	flags.String("genesis-accounts", defaults.Genesis.Accounts, "Path to the genesis accounts file")

	/** ======================== Logging Flags ========================== **/
	flags.String("log-encoder", defaults.LOGGING.Encoder, "Log encoder: console or json")
	flags.String("log-level", defaults.LOGGING.AppLoggerLevel, "Log level of the app")
	flags.String("vm-log-level", defaults.LOGGING.VMLoggerLevel, "Log level of the vm")
}

// loadConfig builds the config in order: defaults or preset, config file, explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	conf := config.DefaultConfig()
	preset, err := flags.GetString("preset")
	if err != nil {
		return nil, err
	}
	if len(preset) > 0 {
		conf, err = presets.Get(preset)
		if err != nil {
			return nil, err
		}
	}
	path, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	if err := config.Load(&conf, path); err != nil {
		return nil, fmt.Errorf("loading config from file: %w", err)
	}
	conf.ConfigFile = path

	v := viper.New()
	flags.Visit(func(f *pflag.Flag) {
		if key, exist := flagKeys[f.Name]; exist {
			v.Set(key, f.Value.String())
		}
	})
	if err := config.Unmarshal(v, &conf); err != nil {
		return nil, fmt.Errorf("mapping cli flags to config: %w", err)
	}
	return &conf, nil
}
