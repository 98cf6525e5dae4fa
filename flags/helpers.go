package flags

import (
	"os"

	cli "gopkg.in/urfave/cli.v1"
)

// NewApp returns the bare CLI application shared by all ouro commands.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "ouro"
	app.Usage = "Ouroboros PVSS certificate-store node"
	app.Version = "0.1.0"
	app.Writer = os.Stdout
	return app
}
