package command

import (
	"bufio"
	"flag"
	"net"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/kvora/kvora/internal/cli/connection"
)

// fakeServer is a minimal RESP responder driven by a canned reply
// string, used to exercise command actions without a real store.
type fakeServer struct {
	addr string
}

// startFakeServer listens on an ephemeral port and writes reply for
// every command it receives (one reply per request, in order).
func startFakeServer(t *testing.T, replies ...string) *fakeServer {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		r := bufio.NewReader(conn)
		for _, reply := range replies {
			if _, err := readCommand(r); err != nil {
				return
			}
			if _, err := conn.Write([]byte(reply)); err != nil {
				return
			}
		}
	}()

	return &fakeServer{addr: ln.Addr().String()}
}

// readCommand consumes one RESP multibulk request from r without
// decoding its contents, just enough to keep the wire in sync.
func readCommand(r *bufio.Reader) (int, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return 0, err
	}
	line = strings.TrimRight(line, "\r\n")
	if len(line) == 0 || line[0] != '*' {
		return 0, nil
	}
	n := 0
	for _, c := range line[1:] {
		n = n*10 + int(c-'0')
	}
	for i := 0; i < n; i++ {
		if _, err := r.ReadString('\n'); err != nil { // $len
			return 0, err
		}
		if _, err := r.ReadString('\n'); err != nil { // value
			return 0, err
		}
	}
	return n, nil
}

// testContext creates a CLI context targeting the fake server, with
// the given positional args already parsed.
func testContext(server *fakeServer, args ...string) *cli.Context {
	app := &cli.App{
		Name:  "test",
		Flags: globalFlags(),
		Metadata: map[string]any{
			"connMgr": connection.NewManager(),
		},
	}

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range app.Flags {
		f.Apply(set)
	}

	fullArgs := []string{"--server", server.addr}
	fullArgs = append(fullArgs, args...)
	set.Parse(fullArgs)

	return cli.NewContext(app, set, nil)
}
