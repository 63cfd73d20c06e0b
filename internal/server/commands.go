package server

import (
	"sort"
	"strings"

	"hearts/internal/engine"
)

// requireStarted short-circuits round and turn commands before the
// game has begun.
func requireStarted(cmd handler) handler {
	return func(h *Hub, session string, args MessageArgs) result {
		if !h.game.Started {
			return reply(echoMessage("Game not started!"))
		}
		return cmd(h, session, args)
	}
}

func joinCmd(h *Hub, session string, args MessageArgs) result {
	if _, ok := h.players[session]; ok {
		return reply(echoMessage("Already joined!"))
	}
	seat := h.game.OpenSeat()
	if seat == nil {
		return reply(echoMessage("No open seats!"))
	}
	name := args.Name
	if name == "random" && len(h.namePool) > 0 {
		name = h.namePool[len(h.namePool)-1]
		h.namePool = h.namePool[:len(h.namePool)-1]
	}
	if name != "" {
		seat.Name = name
	}
	seat.Connected = true
	h.players[session] = seat
	h.sessions[seat] = session
	return broadcast(echoMessage(seat.Name + " has connected!"))
}

func newGameCmd(h *Hub, session string, args MessageArgs) result {
	h.game.Bots = h.botFill
	if err := h.game.Start(); err != nil {
		return reply(echoMessage(err.Error()))
	}
	return broadcast(updateMessage(h.game))
}

func nextRoundCmd(h *Hub, session string, args MessageArgs) result {
	h.game.NextRound()
	return broadcast(updateMessage(h.game))
}

func nextTurnCmd(h *Hub, session string, args MessageArgs) result {
	h.game.NextTurn()
	return broadcast(updateMessage(h.game))
}

func playCardCmd(h *Hub, session string, args MessageArgs) result {
	player, ok := h.players[session]
	if !ok {
		return reply(echoMessage("Join a game first!"))
	}
	card, err := engine.ParseCard(args.Card)
	if err != nil {
		return reply(echoMessage("Card " + args.Card + " is not a card!"))
	}
	if err := h.game.PlayCard(player, card); err != nil {
		return reply(echoMessage(err.Error()))
	}
	return broadcast(updateMessage(h.game))
}

func helpCmd(h *Hub, session string, args MessageArgs) result {
	names := make([]string, 0, len(h.handlers))
	for name := range h.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return reply(echoMessage("Commands: " + strings.Join(names, ", ")))
}

func echoCmd(h *Hub, session string, args MessageArgs) result {
	return broadcast(echoMessage(args.Message))
}
