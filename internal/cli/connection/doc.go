// Package connection provides connection management for kvora-cli.
//
// This package manages connections to kvora-server instances:
//
//   - manager.go: the current-connection state
//   - socket.go: RESP2 client over a plain TCP connection
package connection
