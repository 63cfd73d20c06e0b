package server

import (
	"hearts/internal/engine"
)

// Message is the wire envelope in both directions. Inbound args are
// flat string values; outbound args carry either a state snapshot or
// an echo message.
type Message struct {
	Command string      `json:"command"`
	Args    MessageArgs `json:"args"`
}

type MessageArgs struct {
	Name    string     `json:"name,omitempty"`
	Message string     `json:"message,omitempty"`
	Card    string     `json:"card,omitempty"`
	State   *StateView `json:"state,omitempty"`
}

func echoMessage(text string) Message {
	return Message{Command: "echo", Args: MessageArgs{Message: text}}
}

func updateMessage(g *engine.Game) Message {
	return Message{Command: "update", Args: MessageArgs{State: buildStateView(g)}}
}

// StateView serializes the full game snapshot. Cards travel as their
// 2-character codes.
type StateView struct {
	Round        int          `json:"round"`
	Turn         int          `json:"turn"`
	Started      bool         `json:"started"`
	Ended        bool         `json:"ended"`
	HeartsBroken bool         `json:"hearts_broken"`
	Deck         []string     `json:"deck"`
	LeadPlayer   int          `json:"lead_player"`
	Players      []PlayerView `json:"players"`
	TurnOrder    []int        `json:"turn_order"`
	PlayedCards  []string     `json:"played_cards"`
	Summary      *SummaryView `json:"summary,omitempty"`
}

type PlayerView struct {
	Name      string   `json:"name"`
	Connected bool     `json:"connected"`
	Bot       bool     `json:"bot"`
	Hand      []string `json:"hand"`
	Play      *string  `json:"play,omitempty"`
	Pile      []string `json:"pile"`
	Scores    []int    `json:"scores"`
	Total     int      `json:"total"`
}

type SummaryView struct {
	Cards []string `json:"cards"`
	Order []int    `json:"order"`
}

func cardCodes(cards []engine.Card) []string {
	codes := make([]string, 0, len(cards))
	for _, c := range cards {
		codes = append(codes, c.String())
	}
	return codes
}

// intSlice keeps unset int fields marshalling as [] rather than null,
// matching the card lists.
func intSlice(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}

func buildStateView(g *engine.Game) *StateView {
	players := make([]PlayerView, 0, len(g.Players))
	for _, p := range g.Players {
		view := PlayerView{
			Name:      p.Name,
			Connected: p.Connected,
			Bot:       p.Bot,
			Hand:      cardCodes(p.Hand),
			Pile:      cardCodes(p.Pile),
			Scores:    intSlice(p.Scores),
			Total:     p.TotalScore(),
		}
		if p.Play != nil {
			code := p.Play.String()
			view.Play = &code
		}
		players = append(players, view)
	}
	var summary *SummaryView
	if g.Summary != nil {
		summary = &SummaryView{
			Cards: cardCodes(g.Summary.Cards),
			Order: g.Summary.Order,
		}
	}
	return &StateView{
		Round:        g.Round,
		Turn:         g.Turn,
		Started:      g.Started,
		Ended:        g.Ended,
		HeartsBroken: g.HeartsBroken,
		Deck:         cardCodes(g.Deck),
		LeadPlayer:   g.Lead,
		Players:      players,
		TurnOrder:    intSlice(g.TurnOrder),
		PlayedCards:  cardCodes(g.PlayedCards),
		Summary:      summary,
	}
}
