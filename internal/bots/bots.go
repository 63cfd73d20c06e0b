package bots

import (
	"math/rand"

	"hearts/internal/engine"
)

// Bot picks a card for a seat whose turn it is.
type Bot interface {
	ChooseCard(g *engine.Game, seat int) engine.Card
}

// RandomBot plays a uniformly random legal card. It respects the
// first-trick and hearts-broken rules through the engine's legal-play
// list; there is no lookahead.
type RandomBot struct {
	RNG *rand.Rand
}

func NewRandom(seed int64) *RandomBot {
	return &RandomBot{RNG: rand.New(rand.NewSource(seed))}
}

func (b *RandomBot) ChooseCard(g *engine.Game, seat int) engine.Card {
	legal := g.LegalPlays(seat)
	return legal[b.RNG.Intn(len(legal))]
}
