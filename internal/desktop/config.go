package desktop

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	PortStart       int    `mapstructure:"port_start"`
	PortEnd         int    `mapstructure:"port_end"`
	PollIntervalMS  int    `mapstructure:"poll_interval_ms"`
	StartupTimeoutS int    `mapstructure:"startup_timeout_s"`
	WindowTitle     string `mapstructure:"window_title"`
	WebviewCommand  string `mapstructure:"webview_command"`
	BrowserCommand  string `mapstructure:"browser_command"`
	ServerBinary    string `mapstructure:"server_binary"`
}

const (
	DefaultPortStart       = 8501
	DefaultPortEnd         = 8999
	DefaultPollIntervalMS  = 300
	DefaultStartupTimeoutS = 60
	DefaultWindowTitle     = "Aircraft & Multirotor Calculator"
)

// LoadConfig reads an optional desktop.yaml from the given directories.
// Every setting has a default; a missing file is not an error.
func LoadConfig(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("desktop")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	if len(paths) == 0 {
		v.AddConfigPath(".")
	}

	defaults := map[string]interface{}{
		"port_start":        DefaultPortStart,
		"port_end":          DefaultPortEnd,
		"poll_interval_ms":  DefaultPollIntervalMS,
		"startup_timeout_s": DefaultStartupTimeoutS,
		"window_title":      DefaultWindowTitle,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.PortStart <= 0 || c.PortEnd < c.PortStart {
		return fmt.Errorf("invalid port range %d-%d", c.PortStart, c.PortEnd)
	}
	if c.PollIntervalMS <= 0 || c.StartupTimeoutS <= 0 {
		return fmt.Errorf("poll interval and startup timeout must be positive")
	}
	return nil
}
