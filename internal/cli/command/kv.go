// Package command provides CLI command definitions for kvora-cli.
package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/kvora/kvora/internal/cli/connection"
	"github.com/kvora/kvora/internal/cli/output"
)

// StringCommand returns the string-value subcommand group: GET, SET.
func StringCommand() *cli.Command {
	return &cli.Command{
		Name:  "string",
		Usage: "String value operations (GET/SET)",
		Subcommands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Get the value of a key",
				ArgsUsage: "KEY",
				Action:    kvAction("GET", 1, 1),
			},
			{
				Name:      "set",
				Usage:     "Set the value of a key",
				ArgsUsage: "KEY VALUE",
				Action:    kvAction("SET", 2, 2),
			},
		},
	}
}

// KeyCommand returns the key-space subcommand group: DEL, EXISTS, TYPE.
func KeyCommand() *cli.Command {
	return &cli.Command{
		Name:  "key",
		Usage: "Key-space operations (DEL/EXISTS/TYPE)",
		Subcommands: []*cli.Command{
			{
				Name:      "del",
				Usage:     "Delete one or more keys",
				ArgsUsage: "KEY [KEY ...]",
				Action:    kvAction("DEL", 1, -1),
			},
			{
				Name:      "exists",
				Usage:     "Count how many of the given keys exist",
				ArgsUsage: "KEY [KEY ...]",
				Action:    kvAction("EXISTS", 1, -1),
			},
			{
				Name:      "type",
				Usage:     "Report the value variant stored at a key",
				ArgsUsage: "KEY",
				Action:    kvAction("TYPE", 1, 1),
			},
		},
	}
}

// ListCommand returns the list-value subcommand group.
func ListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List value operations",
		Subcommands: []*cli.Command{
			{
				Name:      "lpush",
				Usage:     "Prepend one or more values to a list",
				ArgsUsage: "KEY VALUE [VALUE ...]",
				Action:    kvAction("LPUSH", 2, -1),
			},
			{
				Name:      "rpush",
				Usage:     "Append one or more values to a list",
				ArgsUsage: "KEY VALUE [VALUE ...]",
				Action:    kvAction("RPUSH", 2, -1),
			},
			{
				Name:      "lpop",
				Usage:     "Remove and return the head of a list",
				ArgsUsage: "KEY",
				Action:    kvAction("LPOP", 1, 1),
			},
			{
				Name:      "rpop",
				Usage:     "Remove and return the tail of a list",
				ArgsUsage: "KEY",
				Action:    kvAction("RPOP", 1, 1),
			},
			{
				Name:      "lrange",
				Usage:     "Return a range of elements from a list",
				ArgsUsage: "KEY START STOP",
				Action:    kvAction("LRANGE", 3, 3),
			},
			{
				Name:      "llen",
				Usage:     "Return the length of a list",
				ArgsUsage: "KEY",
				Action:    kvAction("LLEN", 1, 1),
			},
		},
	}
}

// SetCommand returns the set-value subcommand group.
func SetCommand() *cli.Command {
	return &cli.Command{
		Name:  "set",
		Usage: "Set value operations",
		Subcommands: []*cli.Command{
			{
				Name:      "sadd",
				Usage:     "Add one or more members to a set",
				ArgsUsage: "KEY MEMBER [MEMBER ...]",
				Action:    kvAction("SADD", 2, -1),
			},
			{
				Name:      "spop",
				Usage:     "Remove and return a member of a set",
				ArgsUsage: "KEY",
				Action:    kvAction("SPOP", 1, 1),
			},
			{
				Name:      "smembers",
				Usage:     "Return all members of a set",
				ArgsUsage: "KEY",
				Action:    kvAction("SMEMBERS", 1, 1),
			},
			{
				Name:      "scard",
				Usage:     "Return the number of members in a set",
				ArgsUsage: "KEY",
				Action:    kvAction("SCARD", 1, 1),
			},
			{
				Name:      "sismember",
				Usage:     "Test whether a value is a member of a set",
				ArgsUsage: "KEY MEMBER",
				Action:    kvAction("SISMEMBER", 2, 2),
			},
		},
	}
}

// ServerCommand returns the server-wide subcommand group.
func ServerCommand() *cli.Command {
	return &cli.Command{
		Name:  "server",
		Usage: "Server-wide operations",
		Subcommands: []*cli.Command{
			{
				Name:   "ping",
				Usage:  "Check server liveness",
				Action: kvAction("PING", 0, 0),
			},
			{
				Name:   "dbsize",
				Usage:  "Report the number of keys on the connection's store",
				Action: kvAction("DBSIZE", 0, 0),
			},
			{
				Name:   "flushall",
				Usage:  "Remove every key",
				Action: kvAction("FLUSHALL", 0, 0),
			},
		},
	}
}

// kvAction returns a cli.ActionFunc that sends verb plus the command's
// positional arguments as a RESP command and prints the decoded reply.
// minArgs/maxArgs bound the positional argument count; maxArgs of -1
// means unbounded.
func kvAction(verb string, minArgs, maxArgs int) cli.ActionFunc {
	return func(c *cli.Context) error {
		args := c.Args().Slice()
		if len(args) < minArgs || (maxArgs >= 0 && len(args) > maxArgs) {
			return fmt.Errorf("%s: wrong number of arguments", verb)
		}

		client, err := EnsureConnected(c)
		if err != nil {
			return err
		}
		defer client.Close()

		reply, err := client.Execute(append([]string{verb}, args...))
		if err != nil {
			return fmt.Errorf("%s failed: %w", verb, err)
		}

		if reply.Kind == connection.ReplyKindError {
			return fmt.Errorf("%s", reply.Str)
		}

		flags := ParseGlobalFlags(c)
		return printReply(flags, reply)
	}
}

// printReply renders a decoded RESP reply through the requested output
// format. Nil bulk replies print "(nil)" directly, matching the
// convention redis-cli and every corpus RESP client use for absent
// values, since a formatted nil would otherwise render as nothing.
func printReply(flags *GlobalFlags, reply connection.Reply) error {
	if reply.Kind == connection.ReplyKindNullBulk {
		fmt.Println("(nil)")
		return nil
	}

	formatter := output.NewFormatter(output.Format(flags.Output), flags.Wide)
	return formatter.Format(os.Stdout, replyValue(reply))
}

func replyValue(reply connection.Reply) any {
	switch reply.Kind {
	case connection.ReplyKindInteger:
		return reply.Int
	case connection.ReplyKindSimpleString, connection.ReplyKindBulkString:
		return reply.Str
	case connection.ReplyKindArray:
		values := make([]any, len(reply.Array))
		for i, item := range reply.Array {
			values[i] = replyValue(item)
		}
		return values
	default:
		return nil
	}
}
