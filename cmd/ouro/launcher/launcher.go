// Package launcher wires the CLI surface to the certificate-store runtime:
// it parses flags into a Config, sets up logging, opens the store and reports
// the deployment parameters.
package launcher

import (
	"github.com/sirupsen/logrus"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/ouroboros-network/go-ouroboros/flags"
	"github.com/ouroboros-network/go-ouroboros/integration"
	"github.com/ouroboros-network/go-ouroboros/valset"
)

// Launch runs the ouro CLI application with the given arguments.
func Launch(args []string) error {
	app := flags.NewApp()
	app.Flags = append(app.Flags, flags.CommonFlags()...)
	app.Flags = append(app.Flags, flags.NetworkFlags()...)
	app.Action = ouroMain
	return app.Run(args)
}

// ouroMain assembles the node: logging, genesis, stakeholder registry and the
// certificate store. Engine networking is attached by the surrounding host;
// this binary only owns the store.
func ouroMain(ctx *cli.Context) error {
	cfg := MakeAllConfigs(ctx)

	if err := SetupLogging(cfg.Logging); err != nil {
		return err
	}

	g, err := cfg.MakeGenesis()
	if err != nil {
		return err
	}
	if err := g.Rules.Validate(); err != nil {
		return err
	}

	preset, err := integration.GetPresetByName(cfg.Preset)
	if err != nil {
		return err
	}

	store, err := integration.MakeCertStore(cfg.DataDir, preset)
	if err != nil {
		return err
	}
	defer store.Close()

	holders := valset.FromGenesis(g)

	logrus.WithFields(logrus.Fields{
		"network":      g.Rules.Name,
		"genesis":      g.Hash().Hex(),
		"stakeholders": holders.Len(),
		"threshold":    holders.Threshold(),
		"epochSlots":   g.Rules.EpochSlots(),
		"preset":       preset.Name,
		"datadir":      cfg.DataDir,
	}).Info("Certificate store initialized")

	return nil
}
