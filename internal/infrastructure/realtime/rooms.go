package realtime

import (
	"sync"
)

// Rooms tracks which connections are subscribed to which chatbox's live
// event stream. Membership is keyed by connection, not user, so a user with
// several sockets would receive one copy per joined socket.
type Rooms struct {
	mu        sync.RWMutex
	rooms     map[string]map[string]*Connection // chatboxID -> connection ID -> connection
	connRooms map[string]map[string]struct{}    // connection ID -> set of chatboxIDs
}

// NewRooms constructs an empty room router.
func NewRooms() *Rooms {
	return &Rooms{
		rooms:     make(map[string]map[string]*Connection),
		connRooms: make(map[string]map[string]struct{}),
	}
}

// Join subscribes conn to the chatbox room.
func (r *Rooms) Join(chatboxID string, conn *Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room := r.rooms[chatboxID]
	if room == nil {
		room = make(map[string]*Connection)
		r.rooms[chatboxID] = room
	}
	room[conn.ID] = conn

	memberships := r.connRooms[conn.ID]
	if memberships == nil {
		memberships = make(map[string]struct{})
		r.connRooms[conn.ID] = memberships
	}
	memberships[chatboxID] = struct{}{}
}

// Leave removes conn from the chatbox room.
func (r *Rooms) Leave(chatboxID string, conn *Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leaveLocked(chatboxID, conn.ID)
}

// Drop removes conn from every room it joined. Called on disconnect and on
// session eviction.
func (r *Rooms) Drop(conn *Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for chatboxID := range r.connRooms[conn.ID] {
		r.leaveLocked(chatboxID, conn.ID)
	}
	delete(r.connRooms, conn.ID)
}

// Broadcast writes payload to every connection joined to the chatbox room
// and returns the number of successful deliveries.
func (r *Rooms) Broadcast(chatboxID string, payload []byte) int {
	return r.BroadcastExcept(chatboxID, nil, payload)
}

// BroadcastExcept delivers to every room member except the given connection.
// Used for ephemeral signals like typing so the originator does not echo its
// own event.
func (r *Rooms) BroadcastExcept(chatboxID string, exclude *Connection, payload []byte) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room := r.rooms[chatboxID]
	delivered := 0
	for _, conn := range room {
		if exclude != nil && conn.ID == exclude.ID {
			continue
		}
		if err := conn.Send(payload); err == nil {
			delivered++
		}
	}
	return delivered
}

// Size reports how many connections are joined to the chatbox room.
func (r *Rooms) Size(chatboxID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms[chatboxID])
}

func (r *Rooms) leaveLocked(chatboxID, connID string) {
	room := r.rooms[chatboxID]
	if room == nil {
		return
	}
	delete(room, connID)
	if len(room) == 0 {
		delete(r.rooms, chatboxID)
	}
	if memberships, ok := r.connRooms[connID]; ok {
		delete(memberships, chatboxID)
		if len(memberships) == 0 {
			delete(r.connRooms, connID)
		}
	}
}
