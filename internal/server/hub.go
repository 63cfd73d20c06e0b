package server

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"hearts/internal/engine"
)

// Hub owns the single authoritative Game, the session<->seat bindings,
// and the connection set. It is constructed explicitly so independent
// instances (tests, future rooms) can coexist; there is no package
// state. One mutex serializes every command from decode to broadcast.
type Hub struct {
	mu       sync.Mutex
	log      *zap.Logger
	game     *engine.Game
	botFill  bool
	conns    map[string]*websocket.Conn
	players  map[string]*engine.Player
	sessions map[*engine.Player]string
	handlers map[string]handler
	namePool []string
}

type handler func(h *Hub, session string, args MessageArgs) result

// result is the dispatch outcome: a single outbound message, sent to
// everyone on broadcast or only to the acting session otherwise.
// Rejections are never broadcast.
type result struct {
	msg       Message
	broadcast bool
}

func reply(msg Message) result {
	return result{msg: msg}
}

func broadcast(msg Message) result {
	return result{msg: msg, broadcast: true}
}

func NewHub(game *engine.Game, botFill bool, log *zap.Logger) *Hub {
	h := &Hub{
		log:      log,
		game:     game,
		botFill:  botFill,
		conns:    map[string]*websocket.Conn{},
		players:  map[string]*engine.Player{},
		sessions: map[*engine.Player]string{},
		namePool: []string{"four", "three", "two", "one"},
	}
	h.handlers = map[string]handler{
		"join":       joinCmd,
		"new_game":   newGameCmd,
		"next_round": requireStarted(nextRoundCmd),
		"next_turn":  requireStarted(nextTurnCmd),
		"play_card":  requireStarted(playCardCmd),
		"help":       helpCmd,
		"echo":       echoCmd,
	}
	return h
}

// runCommand decodes and executes one inbound message. Callers hold mu.
func (h *Hub) runCommand(session string, data []byte) result {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return reply(echoMessage("Invalid message!"))
	}
	cmd, ok := h.handlers[msg.Command]
	if !ok {
		return reply(echoMessage("Command " + msg.Command + " not found!"))
	}
	return cmd(h, session, msg.Args)
}

// HandleConnection runs the read loop for one socket. Each command is
// processed to completion, bot cascades included, before the next is
// read; h.mu keeps commands from other sockets out in the meantime.
func (h *Hub) HandleConnection(conn *websocket.Conn) {
	session := uuid.NewString()

	h.mu.Lock()
	h.conns[session] = conn
	h.mu.Unlock()
	h.log.Info("session connected", zap.String("session", session))

	defer h.disconnect(session)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		h.process(session, data)
	}
}

func (h *Hub) process(session string, data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	defer func() {
		// Programmer errors abort the command loudly without taking
		// the whole server down with them.
		if r := recover(); r != nil {
			h.log.Error("command panicked", zap.String("session", session), zap.Any("panic", r))
			h.sendLocked(session, echoMessage("Internal error!"))
		}
	}()

	res := h.runCommand(session, data)
	if res.broadcast {
		h.broadcastLocked(res.msg)
	} else {
		h.sendLocked(session, res.msg)
	}
}

func (h *Hub) disconnect(session string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, session)
	if p, ok := h.players[session]; ok {
		p.Connected = false
		delete(h.players, session)
		delete(h.sessions, p)
	}
	h.log.Info("session disconnected", zap.String("session", session))
}

func (h *Hub) sendLocked(session string, msg Message) {
	conn, ok := h.conns[session]
	if !ok {
		return
	}
	if err := conn.WriteJSON(msg); err != nil {
		h.log.Warn("send failed", zap.String("session", session), zap.Error(err))
	}
}

func (h *Hub) broadcastLocked(msg Message) {
	for session, conn := range h.conns {
		if err := conn.WriteJSON(msg); err != nil {
			h.log.Warn("broadcast failed", zap.String("session", session), zap.Error(err))
		}
	}
}
