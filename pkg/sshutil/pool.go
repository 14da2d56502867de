package sshutil

import (
	"sync"
	"time"
)

// Pool manages SSH connections for reuse between poll cycles.
// It keeps connections alive to avoid the overhead of reconnecting on
// every refresh.
type Pool struct {
	mu          sync.Mutex
	connections map[string]*poolEntry
	timeout     time.Duration
}

// poolEntry holds a connection and its metadata.
type poolEntry struct {
	client   SSHClient
	lastUsed time.Time
}

// NewPool creates a new SSH connection pool.
// timeout bounds connection establishment for new dials.
func NewPool(timeout time.Duration) *Pool {
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &Pool{
		connections: make(map[string]*poolEntry),
		timeout:     timeout,
	}
}

// key builds the pool key for a host and its dial options.
func key(host string, opts Options) string {
	return opts.User + "@" + host + ":" + opts.Port
}

// Get retrieves an existing connection for the given host, or dials a new one.
// If the cached connection is broken it is replaced with a fresh connection.
func (p *Pool) Get(host string, opts Options) (SSHClient, error) {
	k := key(host, opts)

	p.mu.Lock()
	entry, exists := p.connections[k]
	p.mu.Unlock()

	if exists && entry.client != nil {
		if isAlive(entry.client) {
			p.mu.Lock()
			entry.lastUsed = time.Now()
			p.mu.Unlock()
			return entry.client, nil
		}
		// Connection is dead, close and remove it
		p.remove(k)
	}

	client, err := Dial(host, opts, p.timeout)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.connections[k] = &poolEntry{
		client:   client,
		lastUsed: time.Now(),
	}
	p.mu.Unlock()

	return client, nil
}

// Drop closes and removes the connection for a host, forcing the next Get
// to dial fresh. Used after a command times out and the session state is
// suspect.
func (p *Pool) Drop(host string, opts Options) {
	p.remove(key(host, opts))
}

// Close closes all connections in the pool and clears it.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for k, entry := range p.connections {
		if entry.client != nil {
			_ = entry.client.Close()
		}
		delete(p.connections, k)
	}
}

// Size returns the number of connections in the pool.
func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.connections)
}

// remove closes and removes a connection from the pool.
func (p *Pool) remove(k string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if entry, ok := p.connections[k]; ok {
		if entry.client != nil {
			_ = entry.client.Close()
		}
		delete(p.connections, k)
	}
}

// isAlive checks if a connection is still usable by opening a throwaway session.
func isAlive(client SSHClient) bool {
	if client == nil {
		return false
	}
	session, err := client.NewSession()
	if err != nil {
		return false
	}
	_ = session.Close()
	return true
}
