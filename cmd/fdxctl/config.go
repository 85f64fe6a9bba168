package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// config is the external configuration of the CLI, resolved from flags and
// FDX_* environment variables. The client library itself never reads the
// environment; this is the composition root.
type config struct {
	APIToken string        `mapstructure:"api-token"`
	BaseURL  string        `mapstructure:"base-url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Db       string        `mapstructure:"db"`
	Verbose  bool          `mapstructure:"verbose"`
}

func loadConfig(cmd *cobra.Command) (*config, error) {
	v := viper.New()
	v.SetEnvPrefix("FDX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("error binding flags: %w", err)
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}

	if cfg.APIToken == "" {
		return nil, fmt.Errorf("api token is missing (set --api-token or $FDX_API_TOKEN)")
	}

	return &cfg, nil
}
