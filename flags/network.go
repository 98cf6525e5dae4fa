package flags

import (
	cli "gopkg.in/urfave/cli.v1"
)

// NetworkFlags returns the flags selecting which network the node joins.
func NetworkFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "network",
			Usage: "Network to join (main|test|fake)",
			Value: "main",
		},
		cli.IntFlag{
			Name:  "fakenet.validators",
			Usage: "Number of fake-network validators (fake network only)",
			Value: 3,
		},
		cli.Uint64Flag{
			Name:  "start-time",
			Usage: "Network-wide start time override, unix seconds (0 = rules default)",
		},
	}
}
