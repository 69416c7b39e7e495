// Package connection provides connection management for kvora-cli.
package connection

// Connection describes one named kvora-server target. Unlike the
// teacher's Connection, which also carried an API key pair and a TLS
// flag, kvora-cli has no authentication layer to configure
// (connection-level authentication is explicitly out of scope).
type Connection struct {
	Name   string
	Server string
}

// Manager tracks the CLI's current server connection. It holds one
// connection at a time and keeps no list of named connections.
type Manager struct {
	current *Connection
}

// NewManager creates a new connection manager.
func NewManager() *Manager {
	return &Manager{}
}

// Connect sets conn as the current connection.
func (m *Manager) Connect(conn *Connection) error {
	m.current = conn
	return nil
}

// Disconnect clears the current connection.
func (m *Manager) Disconnect() {
	m.current = nil
}

// Current returns the current connection, or nil if none is set.
func (m *Manager) Current() *Connection {
	return m.current
}

// IsConnected returns true if a connection is set.
func (m *Manager) IsConnected() bool {
	return m.current != nil
}
