package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/cluj/board"
	"github.com/domino14/cluj/config"
)

const easyDeal = `T  8 V  T  8 V
K  7 10 K  7 10
D  6 9  D  6 9
V  T 8  V  T 8
10 K 7  10 K 7
9  D 6  9  D 6
`

func TestRunStdin(t *testing.T) {
	is := is.New(t)
	cfg := &config.Config{}
	is.NoErr(cfg.Load(nil))

	var out bytes.Buffer
	is.NoErr(run(context.Background(), cfg, strings.NewReader(easyDeal), &out))
	is.True(strings.HasPrefix(out.String(), "Step   1. Move "))
}

func TestRunYAML(t *testing.T) {
	is := is.New(t)
	cfg := &config.Config{}
	is.NoErr(cfg.Load([]string{"--output-format", "yaml"}))

	var out bytes.Buffer
	is.NoErr(run(context.Background(), cfg, strings.NewReader(easyDeal), &out))
	is.True(strings.Contains(out.String(), "solved: true"))
	is.True(strings.Contains(out.String(), "explanation:"))
}

func TestRunBadInput(t *testing.T) {
	is := is.New(t)
	cfg := &config.Config{}
	is.NoErr(cfg.Load(nil))
	err := run(context.Background(), cfg, strings.NewReader("6 6 6 6 6\n"), &bytes.Buffer{})
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), board.ErrTooManyOfRank.Error()))
}

func TestFailedRunStillWritesProfile(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	prof := filepath.Join(dir, "cpu.prof")
	code := realMain([]string{"--cpu-profile", prof, filepath.Join(dir, "missing.txt")})
	is.Equal(code, 1)

	data, err := os.ReadFile(prof)
	is.NoErr(err)
	// a stopped profile is a gzip stream; an unstopped one is empty.
	is.True(len(data) > 2)
	is.Equal(data[:2], []byte{0x1f, 0x8b})
}
