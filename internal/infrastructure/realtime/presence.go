package realtime

import (
	"sync"
	"time"
)

// Status is a user's live reachability.
type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
)

// UserStatus is the externally visible presence of a single user.
type UserStatus struct {
	UserID   string    `json:"userId"`
	Status   Status    `json:"status"`
	LastSeen time.Time `json:"lastSeen"`
}

type presenceEntry struct {
	conn     *Connection
	status   Status
	lastSeen time.Time
}

// Presence is the process-lifetime registry of connected users. It is the
// source of truth for "is this user reachable right now". At most one
// authoritative connection exists per user; a newer connection supersedes
// the previous one (the caller closes the returned evicted connection).
type Presence struct {
	mu        sync.RWMutex
	byUser    map[string]*presenceEntry
	bySession map[string]string // connection ID -> user ID
}

// NewPresence constructs an empty registry.
func NewPresence() *Presence {
	return &Presence{
		byUser:    make(map[string]*presenceEntry),
		bySession: make(map[string]string),
	}
}

// Connect registers conn as the authoritative connection for its user and
// returns the superseded connection, if any, so the caller can close it.
func (p *Presence) Connect(conn *Connection) *Connection {
	p.mu.Lock()
	defer p.mu.Unlock()

	var previous *Connection
	if entry, ok := p.byUser[conn.UserID]; ok && entry.conn != nil {
		previous = entry.conn
		delete(p.bySession, previous.ID)
	}

	p.byUser[conn.UserID] = &presenceEntry{
		conn:     conn,
		status:   StatusOnline,
		lastSeen: time.Now(),
	}
	p.bySession[conn.ID] = conn.UserID
	return previous
}

// Disconnect flips the owning user offline and clears the handle. A
// connection that was already superseded is no longer authoritative and is
// ignored, so a stale socket closing late cannot knock the new session
// offline.
func (p *Presence) Disconnect(conn *Connection) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	userID, ok := p.bySession[conn.ID]
	if !ok {
		return "", false
	}
	delete(p.bySession, conn.ID)

	if entry, ok := p.byUser[userID]; ok {
		entry.conn = nil
		entry.status = StatusOffline
		entry.lastSeen = time.Now()
	}
	return userID, true
}

// Status reports a user's presence. Users never seen are offline with a zero
// LastSeen.
func (p *Presence) Status(userID string) UserStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()

	entry, ok := p.byUser[userID]
	if !ok {
		return UserStatus{UserID: userID, Status: StatusOffline}
	}
	return UserStatus{UserID: userID, Status: entry.status, LastSeen: entry.lastSeen}
}

// IsOnline reports whether the user currently has a live connection.
func (p *Presence) IsOnline(userID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	entry, ok := p.byUser[userID]
	return ok && entry.status == StatusOnline && entry.conn != nil
}

// Live returns the user's authoritative connection, if online.
func (p *Presence) Live(userID string) (*Connection, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	entry, ok := p.byUser[userID]
	if !ok || entry.status != StatusOnline || entry.conn == nil {
		return nil, false
	}
	return entry.conn, true
}

// ListOnline returns every currently online user with their lastSeen.
func (p *Presence) ListOnline() []UserStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]UserStatus, 0, len(p.byUser))
	for userID, entry := range p.byUser {
		if entry.status != StatusOnline {
			continue
		}
		out = append(out, UserStatus{UserID: userID, Status: StatusOnline, LastSeen: entry.lastSeen})
	}
	return out
}

// Connections snapshots all live connections, for broadcast-to-all events.
func (p *Presence) Connections() []*Connection {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]*Connection, 0, len(p.byUser))
	for _, entry := range p.byUser {
		if entry.conn != nil {
			out = append(out, entry.conn)
		}
	}
	return out
}
