package command

import (
	"github.com/urfave/cli/v2"

	"github.com/kvora/kvora/internal/cli/repl"
)

// ReplCommand returns the "repl" command, which connects once and
// then hands control to an interactive prompt for the rest of the
// session rather than exiting after a single reply.
func ReplCommand() *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "Start an interactive session against a kvora server",
		Action: func(c *cli.Context) error {
			client, err := EnsureConnected(c)
			if err != nil {
				return err
			}
			defer client.Close()

			return repl.New(client).Run()
		},
	}
}
