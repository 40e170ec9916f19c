package commands

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"xmrkeys/internal/app"
	"xmrkeys/internal/domain"
)

const envPrefix = "XMRKEYS"

var (
	appCtx   *app.App
	settings *viper.Viper
	cfgFile  string
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	defaults := app.DefaultConfig()
	settings = viper.New()
	cfgFile = ""

	root := &cobra.Command{
		Use:           "xmrkeys",
		Short:         "ed25519 arithmetic and Monero subaddress tools",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadSettings(cmd); err != nil {
				return err
			}
			cfg := app.Config{
				Network:  domain.Network(settings.GetString("network")),
				LogLevel: settings.GetString("log-level"),
				LogJSON:  settings.GetBool("log-json"),
			}
			a, err := app.New(cfg)
			if err != nil {
				return err
			}
			appCtx = a
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	root.PersistentFlags().String("network", defaults.Network.String(), "network: mainnet, testnet or stagenet")
	root.PersistentFlags().String("log-level", defaults.LogLevel, "log level: debug, info, warn, error")
	root.PersistentFlags().Bool("log-json", defaults.LogJSON, "log JSON lines instead of console output")

	root.AddCommand(
		pointCmd(),
		scalarCmd(),
		subaddressCmd(),
		addressCmd(),
		spendKeyCmd(),
		amountCmd(),
	)
	return root
}

func loadSettings(cmd *cobra.Command) error {
	settings.SetEnvPrefix(envPrefix)
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()

	if err := settings.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "bind flags")
	}
	if cfgFile != "" {
		settings.SetConfigFile(cfgFile)
		if err := settings.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", cfgFile)
		}
	}
	return nil
}
