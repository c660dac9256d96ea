// Package config loads solver settings from flags, environment and an
// optional config file.
package config

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug            = "debug"
	ConfigVerbose          = "verbose"
	ConfigProgressInterval = "progress-interval"
	ConfigMaxStates        = "max-states"
	ConfigMemoryFraction   = "memory-fraction"
	ConfigThreads          = "threads"
	ConfigOutputFormat     = "output-format"
	ConfigRandomDeals      = "random"
	ConfigConfigFile       = "config-file"
	ConfigCPUProfile       = "cpu-profile"
)

type Config struct {
	*viper.Viper
	args []string
}

// presenceVars switch a setting on whenever they are set, whatever their
// value, so D= and D=0 both turn on debug output.
var presenceVars = map[string]string{
	"D": ConfigDebug,
	"V": ConfigVerbose,
}

// DefaultConfig returns a config holding only default values. It is
// meant for tests and library users that do not parse flags.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigVerbose, false)
	c.SetDefault(ConfigProgressInterval, 1_000_000)
	c.SetDefault(ConfigMaxStates, 0)
	c.SetDefault(ConfigMemoryFraction, 0.0)
	c.SetDefault(ConfigThreads, 1)
	c.SetDefault(ConfigOutputFormat, "text")
	c.SetDefault(ConfigRandomDeals, 0)
}

// Load reads settings in increasing priority: defaults, config file,
// CLUJ_* environment variables, command-line flags. The bare D and V
// variables turn on debug and verbose output when present at all, and
// win over everything else.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	c.setDefaults()

	fs := pflag.NewFlagSet("cluj", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging")
	fs.Bool(ConfigVerbose, false, "print the board after every step")
	fs.Int(ConfigProgressInterval, 1_000_000, "log progress every this many new states")
	fs.Int(ConfigMaxStates, 0, "give up after this many distinct states (0 for no limit)")
	fs.Float64(ConfigMemoryFraction, 0, "derive max-states from this fraction of system memory")
	fs.Int(ConfigThreads, 1, "deals solved in parallel in batch mode")
	fs.String(ConfigOutputFormat, "text", "text or yaml")
	fs.Int(ConfigRandomDeals, 0, "solve this many random deals instead of reading input")
	fs.String(ConfigConfigFile, "", "optional config file")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("cluj")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	for env, key := range presenceVars {
		if _, ok := os.LookupEnv(env); ok {
			c.Set(key, true)
		}
	}

	if cfgFile := c.GetString(ConfigConfigFile); cfgFile != "" {
		c.SetConfigFile(cfgFile)
		if err := c.ReadInConfig(); err != nil {
			return err
		}
	}
	c.args = fs.Args()
	return nil
}

// Args are the positional arguments left after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

// Threads is the configured worker count, at least 1.
func (c *Config) Threads() int {
	return max(1, c.GetInt(ConfigThreads))
}

// SanitizedSettings is every setting, for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
