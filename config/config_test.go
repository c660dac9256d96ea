package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	is.Equal(c.GetBool(ConfigDebug), false)
	is.Equal(c.GetInt(ConfigProgressInterval), 1_000_000)
	is.Equal(c.GetString(ConfigOutputFormat), "text")
	is.Equal(c.Threads(), 1)
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	err := c.Load([]string{"--verbose", "--threads", "4", "--max-states", "500", "a.txt", "b.txt"})
	is.NoErr(err)
	is.True(c.GetBool(ConfigVerbose))
	is.Equal(c.Threads(), 4)
	is.Equal(c.GetInt(ConfigMaxStates), 500)
	is.Equal(c.Args(), []string{"a.txt", "b.txt"})
	_, leaked := c.SanitizedSettings()["args"]
	is.True(!leaked)
}

func TestLoadShortEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("D", "1")
	t.Setenv("CLUJ_OUTPUT_FORMAT", "yaml")
	c := &Config{}
	is.NoErr(c.Load(nil))
	is.True(c.GetBool(ConfigDebug))
	is.Equal(c.GetString(ConfigOutputFormat), "yaml")
}

func TestLoadConfigFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "cluj.yaml")
	is.NoErr(os.WriteFile(path, []byte("threads: 3\nprogress-interval: 10\n"), 0o644))
	c := &Config{}
	is.NoErr(c.Load([]string{"--config-file", path}))
	is.Equal(c.Threads(), 3)
	is.Equal(c.GetInt(ConfigProgressInterval), 10)
}

func TestShortEnvPresenceIsEnough(t *testing.T) {
	is := is.New(t)
	t.Setenv("D", "0")
	t.Setenv("V", "")
	c := &Config{}
	is.NoErr(c.Load(nil))
	is.True(c.GetBool(ConfigDebug))
	is.True(c.GetBool(ConfigVerbose))
}

func TestLongEnvIsParsed(t *testing.T) {
	is := is.New(t)
	t.Setenv("CLUJ_DEBUG", "false")
	t.Setenv("CLUJ_MAX_STATES", "42")
	c := &Config{}
	is.NoErr(c.Load(nil))
	is.True(!c.GetBool(ConfigDebug))
	is.Equal(c.GetInt(ConfigMaxStates), 42)
}
