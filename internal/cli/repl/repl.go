// Package repl provides the interactive REPL mode for kvora-cli.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kvora/kvora/internal/cli/connection"
)

// REPL represents the Read-Eval-Print Loop.
type REPL struct {
	input     io.Reader
	output    io.Writer
	completer *Completer
	history   *History
	client    *connection.RESPClient
}

// New creates a new REPL instance. client may be nil, in which case
// commands are accepted but reported as not connected.
func New(client *connection.RESPClient) *REPL {
	return &REPL{
		input:     os.Stdin,
		output:    os.Stdout,
		completer: NewCompleter(),
		history:   NewHistory(),
		client:    client,
	}
}

// Run starts the REPL loop.
func (r *REPL) Run() error {
	reader := bufio.NewReader(r.input)

	for {
		fmt.Fprint(r.output, "kvora> ")

		line, err := reader.ReadString('\n')
		if err == io.EOF {
			fmt.Fprintln(r.output)
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.history.Add(line)

		if line == "exit" || line == "quit" {
			return nil
		}

		if err := r.execute(line); err != nil {
			fmt.Fprintf(r.output, "Error: %v\n", err)
		}
	}
}

func (r *REPL) execute(line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}

	if r.client == nil {
		fmt.Fprintln(r.output, "not connected, use 'connect <server>' first")
		return nil
	}

	reply, err := r.client.Execute(args)
	if err != nil {
		return err
	}

	fmt.Fprintln(r.output, formatReply(reply))
	return nil
}

// formatReply renders a decoded RESP reply the way a redis-cli style
// tool would: one line for scalars, a numbered list for arrays.
func formatReply(reply connection.Reply) string {
	switch reply.Kind {
	case connection.ReplyKindNullBulk:
		return "(nil)"
	case connection.ReplyKindError:
		return "(error) " + reply.Str
	case connection.ReplyKindInteger:
		return fmt.Sprintf("(integer) %d", reply.Int)
	case connection.ReplyKindSimpleString:
		return reply.Str
	case connection.ReplyKindBulkString:
		return fmt.Sprintf("%q", reply.Str)
	case connection.ReplyKindArray:
		if len(reply.Array) == 0 {
			return "(empty array)"
		}
		var b strings.Builder
		for i, item := range reply.Array {
			if i > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "%d) %s", i+1, formatReply(item))
		}
		return b.String()
	default:
		return ""
	}
}
