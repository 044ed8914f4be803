package realtime

// Hub owns the presence registry and the room router and funnels all
// connection bookkeeping through the session lifecycle: attach, join/leave,
// detach. Message-delivery code talks to the hub only through its published
// operations, never by touching presence or rooms directly.
type Hub struct {
	presence *Presence
	rooms    *Rooms
}

// NewHub constructs a hub with empty presence and rooms.
func NewHub() *Hub {
	return &Hub{
		presence: NewPresence(),
		rooms:    NewRooms(),
	}
}

// Attach registers conn as its user's authoritative session and starts the
// write pump. A previous session for the same user is dropped from all rooms
// and closed with CloseSessionReplaced.
func (h *Hub) Attach(conn *Connection) {
	previous := h.presence.Connect(conn)
	conn.Start()

	if previous != nil {
		h.rooms.Drop(previous)
		previous.Close(CloseSessionReplaced, "session replaced")
	}
}

// Detach removes conn from presence and all rooms. It returns the owning
// user id when conn was still the authoritative session; a superseded
// connection detaching late returns ok=false and must not be announced as
// offline.
func (h *Hub) Detach(conn *Connection) (string, bool) {
	userID, ok := h.presence.Disconnect(conn)
	h.rooms.Drop(conn)
	return userID, ok
}

// JoinRoom subscribes conn to a chatbox's live stream.
func (h *Hub) JoinRoom(chatboxID string, conn *Connection) {
	h.rooms.Join(chatboxID, conn)
}

// LeaveRoom unsubscribes conn from a chatbox's live stream.
func (h *Hub) LeaveRoom(chatboxID string, conn *Connection) {
	h.rooms.Leave(chatboxID, conn)
}

// BroadcastRoom delivers payload to every member of the chatbox room.
func (h *Hub) BroadcastRoom(chatboxID string, payload []byte) int {
	return h.rooms.Broadcast(chatboxID, payload)
}

// BroadcastRoomExcept delivers payload to every room member but the
// originating connection.
func (h *Hub) BroadcastRoomExcept(chatboxID string, exclude *Connection, payload []byte) int {
	return h.rooms.BroadcastExcept(chatboxID, exclude, payload)
}

// BroadcastAll delivers payload to every live connection except the given
// one. Used for user status change events.
func (h *Hub) BroadcastAll(exclude *Connection, payload []byte) int {
	delivered := 0
	for _, conn := range h.presence.Connections() {
		if exclude != nil && conn.ID == exclude.ID {
			continue
		}
		if err := conn.Send(payload); err == nil {
			delivered++
		}
	}
	return delivered
}

// NotifyUser delivers payload directly to the user's live connection,
// independent of room membership. Returns false when the user is offline or
// the delivery failed.
func (h *Hub) NotifyUser(userID string, payload []byte) bool {
	conn, ok := h.presence.Live(userID)
	if !ok {
		return false
	}
	return conn.Send(payload) == nil
}

// IsOnline reports whether the user currently has a live connection.
func (h *Hub) IsOnline(userID string) bool {
	return h.presence.IsOnline(userID)
}

// Status reports the user's presence record.
func (h *Hub) Status(userID string) UserStatus {
	return h.presence.Status(userID)
}

// ListOnline returns all currently online users.
func (h *Hub) ListOnline() []UserStatus {
	return h.presence.ListOnline()
}

// Close terminates every live connection. Used on shutdown.
func (h *Hub) Close() {
	for _, conn := range h.presence.Connections() {
		h.Detach(conn)
		conn.Close(1001, "server shutting down")
	}
}
