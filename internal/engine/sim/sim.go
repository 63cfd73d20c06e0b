// Package sim drives random legal self-play against the engine and
// checks the global invariants after every play. It exists for tests
// and for shaking out rule regressions across many seeds.
package sim

import (
	"fmt"
	"math/rand"

	"hearts/internal/engine"
)

type playRecord struct {
	Round int
	Turn  int
	Seat  int
	Card  engine.Card
}

// RunSelfPlay starts a four-human game and plays random legal cards
// until the game ends or maxPlays is exhausted, with invariant checks
// after every step. Returns a descriptive error on the first violation.
func RunSelfPlay(seed int64, maxPlays int) error {
	g := engine.New(seed)
	for _, p := range g.Players {
		p.Connected = true
	}
	if err := g.Start(); err != nil {
		return fmt.Errorf("start: %v", err)
	}
	g.NextRound()
	g.NextTurn()

	rng := rand.New(rand.NewSource(seed))
	records := []playRecord{}

	for step := 0; step < maxPlays; step++ {
		if g.Ended {
			return nil
		}
		seat, ok := g.CurrentSeat()
		if !ok {
			return failure(seed, g, records, "no current seat mid-round")
		}
		legal := g.LegalPlays(seat)
		if len(legal) == 0 {
			return failure(seed, g, records, fmt.Sprintf("no legal plays for seat %d", seat))
		}
		card := legal[rng.Intn(len(legal))]
		if err := g.PlayCard(g.Players[seat], card); err != nil {
			return failure(seed, g, records, fmt.Sprintf("legal play rejected: %v", err))
		}
		records = append(records, playRecord{Round: g.Round, Turn: g.Turn, Seat: seat, Card: card})
		if err := CheckInvariants(g); err != nil {
			return failure(seed, g, records, err.Error())
		}
	}
	return nil
}

// CheckInvariants verifies the properties that must hold in any dealt
// state: exactly 52 unique cards across hands, piles, the open trick,
// and the deck; a turn order that is a rotation anchored at the lead
// seat; and consistent score histories.
func CheckInvariants(g *engine.Game) error {
	if g.Round == 0 {
		return nil
	}
	total, dup := countCards(g)
	if dup {
		return fmt.Errorf("duplicate card in play")
	}
	if total != 52 {
		return fmt.Errorf("card count mismatch: %d", total)
	}
	if len(g.PlayedCards) > 4 {
		return fmt.Errorf("invalid trick size: %d", len(g.PlayedCards))
	}
	if g.Turn >= 1 {
		if len(g.TurnOrder) != 4 {
			return fmt.Errorf("turn order size: %d", len(g.TurnOrder))
		}
		if g.TurnOrder[0] != g.Lead {
			return fmt.Errorf("turn order not anchored at lead: %v lead=%d", g.TurnOrder, g.Lead)
		}
		for i, seat := range g.TurnOrder {
			if seat != (g.Lead+i)%4 {
				return fmt.Errorf("turn order not a rotation: %v", g.TurnOrder)
			}
		}
	}
	rounds := len(g.Players[0].Scores)
	for _, p := range g.Players {
		if len(p.Scores) != rounds {
			return fmt.Errorf("uneven score history")
		}
		for _, s := range p.Scores {
			if s < 0 || s > 26 {
				return fmt.Errorf("round score out of range: %d", s)
			}
		}
	}
	return nil
}

func countCards(g *engine.Game) (int, bool) {
	seen := map[engine.Card]bool{}
	total := 0
	dup := false
	add := func(c engine.Card) {
		total++
		if seen[c] {
			dup = true
		}
		seen[c] = true
	}
	for _, p := range g.Players {
		for _, c := range p.Hand {
			add(c)
		}
		for _, c := range p.Pile {
			add(c)
		}
	}
	for _, c := range g.PlayedCards {
		add(c)
	}
	for _, c := range g.Deck {
		add(c)
	}
	return total, dup
}

func failure(seed int64, g *engine.Game, records []playRecord, reason string) error {
	start := 0
	if len(records) > 20 {
		start = len(records) - 20
	}
	log := ""
	for _, r := range records[start:] {
		log += fmt.Sprintf("[r%d t%d seat%d] %v\n", r.Round, r.Turn, r.Seat, r.Card)
	}
	return fmt.Errorf("seed=%d round=%d turn=%d reason=%s\nlast plays:\n%s",
		seed, g.Round, g.Turn, reason, log)
}
