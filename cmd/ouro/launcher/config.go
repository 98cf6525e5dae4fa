// Config assembly for the launcher: defaults first, then CLI flag overrides.
package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/ouroboros-network/go-ouroboros/ouro"
	"github.com/ouroboros-network/go-ouroboros/ouro/genesis"
)

// LoggingConfig selects the log output shape and destinations.
type LoggingConfig struct {
	Format    string // text|json
	Verbosity int    // logrus level as an integer
	Color     bool
	SentryDSN string // empty disables the Sentry hook
}

// Config aggregates every subsystem's configuration the launcher needs.
type Config struct {
	DataDir        string
	Preset         string
	Network        string
	FakeValidators int
	StartTime      uint64
	Logging        LoggingConfig
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		DataDir:        DefaultDataDir(),
		Preset:         "default",
		Network:        "main",
		FakeValidators: 3,
		Logging: LoggingConfig{
			Format:    "text",
			Verbosity: 4,
		},
	}
}

// DefaultDataDir returns the default data directory (~/.ouro).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ouro"
	}
	return filepath.Join(home, ".ouro")
}

// MakeAllConfigs merges defaults with CLI flag overrides.
func MakeAllConfigs(ctx *cli.Context) Config {
	cfg := DefaultConfig()

	if ctx.GlobalIsSet("datadir") {
		cfg.DataDir = expandHome(ctx.GlobalString("datadir"))
	}
	if ctx.GlobalIsSet("preset") {
		cfg.Preset = ctx.GlobalString("preset")
	}
	if ctx.GlobalIsSet("network") {
		cfg.Network = ctx.GlobalString("network")
	}
	if ctx.GlobalIsSet("fakenet.validators") {
		cfg.FakeValidators = ctx.GlobalInt("fakenet.validators")
	}
	if ctx.GlobalIsSet("start-time") {
		cfg.StartTime = ctx.GlobalUint64("start-time")
	}
	if ctx.GlobalIsSet("log.format") {
		cfg.Logging.Format = ctx.GlobalString("log.format")
	}
	if ctx.GlobalIsSet("log.verbosity") {
		cfg.Logging.Verbosity = ctx.GlobalInt("log.verbosity")
	}
	if ctx.GlobalIsSet("log.color") {
		cfg.Logging.Color = ctx.GlobalBool("log.color")
	}
	if ctx.GlobalIsSet("sentry.dsn") {
		cfg.Logging.SentryDSN = ctx.GlobalString("sentry.dsn")
	}

	return cfg
}

// MakeGenesis resolves the genesis for the configured network. Fake networks
// are generated on the fly; main and test genesis data ships separately and
// must be imported first.
func (c Config) MakeGenesis() (genesis.Genesis, error) {
	switch c.Network {
	case "fake":
		g := genesis.FakeGenesis(c.FakeValidators)
		if c.StartTime != 0 {
			g.Rules.NetworkWideStartTime = c.StartTime
		}
		return g, nil
	case "main", "test":
		return genesis.Genesis{}, fmt.Errorf("genesis for the %q network is not bundled; import it into %s first", c.Network, c.DataDir)
	}
	return genesis.Genesis{}, fmt.Errorf("unknown network %q", c.Network)
}

// Rules returns the network rules matching the configured network name.
func (c Config) Rules() (ouro.Rules, error) {
	switch c.Network {
	case "main":
		return ouro.MainNetRules(), nil
	case "test":
		return ouro.TestNetRules(), nil
	case "fake":
		return ouro.FakeNetRules(), nil
	}
	return ouro.Rules{}, fmt.Errorf("unknown network %q", c.Network)
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
