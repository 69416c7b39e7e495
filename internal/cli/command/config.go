// Package command provides CLI command definitions for kvora-cli.
package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// ConfigCommand returns the CLI's own local-configuration subcommand
// group. kvora-cli is RESP-only (it never reaches a server's HTTP
// admin port), so unlike the teacher's config command there is no
// remote "server config show/test/reload" subgroup here: server
// configuration is a startup-time file, not a live-reloadable
// resource.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "CLI local configuration",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show CLI configuration",
				Action: configCLIShow,
			},
			{
				Name:   "validate",
				Usage:  "Validate CLI configuration",
				Action: configCLIValidate,
			},
		},
	}
}

func configCLIShow(c *cli.Context) error {
	fmt.Printf("CLI Configuration\n")
	fmt.Printf("=================\n\n")

	homeDir, _ := os.UserHomeDir()
	configPath := homeDir + "/.kvora/cli.yaml"

	fmt.Printf("Config file: %s\n\n", configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("(No configuration file found)\n")
		fmt.Printf("\nDefault settings:\n")
		fmt.Printf("  Server:   127.0.0.1:6379\n")
		fmt.Printf("  Output:   table\n")
		return nil
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	fmt.Printf("%s\n", string(content))
	return nil
}

func configCLIValidate(c *cli.Context) error {
	homeDir, _ := os.UserHomeDir()
	configPath := homeDir + "/.kvora/cli.yaml"

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("No configuration file found at %s\n", configPath)
		fmt.Printf("Using default settings.\n")
		return nil
	}

	if _, err := os.ReadFile(configPath); err != nil {
		return fmt.Errorf("cannot read config: %w", err)
	}

	// TODO: Parse and validate YAML structure
	fmt.Printf("Configuration file is valid: %s\n", configPath)
	return nil
}
