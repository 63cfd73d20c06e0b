package engine

import (
	"fmt"
	"math/rand"
	"sort"
)

const (
	seats          = 4
	tricksPerRound = 13
	endScore       = 100
)

// Summary holds the last completed trick for client display: the four
// cards and the seat order they were played in.
type Summary struct {
	Cards []Card
	Order []int
}

// Game is the authoritative Hearts state machine. It is not safe for
// concurrent use; callers serialize all mutation behind one lock.
type Game struct {
	Round        int
	Turn         int
	Started      bool
	Ended        bool
	Bots         bool
	HeartsBroken bool
	Deck         []Card
	Lead         int
	Players      []*Player
	TurnOrder    []int
	PlayedCards  []Card
	Summary      *Summary

	rng       *rand.Rand
	chooser   func(*Game, int) Card
	shuffleFn func([]Card)
	seatsFn   func([]*Player)
}

var defaultNames = []string{"One", "Two", "Three", "Four"}

// New creates a reset game with four empty seats. The seed drives every
// shuffle and bot choice, so a fixed seed replays identically.
func New(seed int64) *Game {
	rng := rand.New(rand.NewSource(seed))
	g := &Game{
		rng: rng,
		shuffleFn: func(deck []Card) {
			shuffleCards(rng, deck)
		},
	}
	g.seatsFn = func(players []*Player) {
		rng.Shuffle(len(players), func(i, j int) {
			players[i], players[j] = players[j], players[i]
		})
	}
	for i := 0; i < seats; i++ {
		g.Players = append(g.Players, &Player{Name: defaultNames[i]})
	}
	g.Reset()
	return g
}

// Reset wipes the game back to NotStarted: fresh shuffled deck, players
// shuffled into random seats, hands, piles, scores, and connection
// flags all cleared. Player identities persist.
func (g *Game) Reset() *Game {
	g.clearRoundState()
	g.Started = false
	g.newDeck()
	g.shuffleDeck()
	g.shuffleSeats()
	for _, p := range g.Players {
		p.Connected = false
		p.Bot = false
		p.Scores = nil
	}
	return g
}

// Start begins a new game. Unlike Reset it keeps connection flags, so
// joined sessions stay bound to their players across the re-seat.
// Requires all four seats connected unless bot-fill is enabled.
func (g *Game) Start() error {
	count := g.ConnectedCount()
	if count != seats && !g.Bots {
		return fmt.Errorf("Must have exactly 4 players!  We have %d", count)
	}
	g.clearRoundState()
	g.newDeck()
	g.shuffleDeck()
	g.shuffleSeats()
	for _, p := range g.Players {
		p.Scores = nil
		if g.Bots && !p.Connected {
			p.Bot = true
		}
	}
	g.Started = true
	return nil
}

func (g *Game) clearRoundState() {
	g.Round = 0
	g.Turn = 0
	g.Ended = false
	g.HeartsBroken = false
	g.Lead = -1
	g.TurnOrder = nil
	g.PlayedCards = nil
	g.Summary = nil
	for _, p := range g.Players {
		p.Hand = nil
		p.Pile = nil
		p.Play = nil
	}
}

func (g *Game) newDeck() *Game {
	g.Deck = NewDeck()
	return g
}

func (g *Game) shuffleDeck() *Game {
	g.shuffleFn(g.Deck)
	return g
}

func (g *Game) shuffleSeats() *Game {
	g.seatsFn(g.Players)
	return g
}

// NextRound deals a fresh round: new shuffled deck, 13 sorted cards per
// seat, lead assigned to the Two of Clubs holder. The shuffle happens
// strictly before the deal; the deal itself is a plain round-robin.
func (g *Game) NextRound() {
	g.Round++
	g.Turn = 0
	g.HeartsBroken = false
	g.Summary = nil
	g.PlayedCards = nil
	g.newDeck()
	g.shuffleDeck()
	for _, p := range g.Players {
		p.Hand = nil
		p.Pile = nil
		p.Play = nil
	}
	g.deal()
	for _, p := range g.Players {
		sortHand(p.Hand)
	}
	g.TurnOrder = []int{0, 1, 2, 3}
}

func (g *Game) deal() {
	for i, card := range g.Deck {
		seat := i % seats
		if card == TwoOfClubs {
			g.Lead = seat
		}
		g.Players[seat].Hand = append(g.Players[seat].Hand, card)
	}
	g.Deck = nil
}

func sortHand(hand []Card) {
	sort.Slice(hand, func(i, j int) bool {
		return hand[i].Less(hand[j])
	})
}

// LeadPlayer returns the round's lead player. Calling it before any
// round has been dealt is a programming error.
func (g *Game) LeadPlayer() *Player {
	if g.Lead < 0 {
		panic("engine: no lead player before first deal")
	}
	return g.Players[g.Lead]
}

// Seat returns the seat index of a player in the current seating.
func (g *Game) Seat(player *Player) int {
	for i, p := range g.Players {
		if p == player {
			return i
		}
	}
	panic("engine: player not seated")
}

// CurrentSeat returns the seat expected to play next in the trick, or
// false when no trick is open.
func (g *Game) CurrentSeat() (int, bool) {
	if !g.Started || g.Ended || g.Turn == 0 {
		return -1, false
	}
	if len(g.PlayedCards) >= len(g.TurnOrder) {
		return -1, false
	}
	return g.TurnOrder[len(g.PlayedCards)], true
}

// OpenSeat returns the first unclaimed seat, or nil when full.
func (g *Game) OpenSeat() *Player {
	for _, p := range g.Players {
		if !p.Connected && !p.Bot {
			return p
		}
	}
	return nil
}

func (g *Game) ConnectedCount() int {
	count := 0
	for _, p := range g.Players {
		if p.Connected {
			count++
		}
	}
	return count
}

func rotationFrom(lead int) []int {
	order := make([]int, 0, seats)
	for i := 0; i < seats; i++ {
		order = append(order, (lead+i)%seats)
	}
	return order
}

// NextTurn opens the round's first trick, or resolves a completed one.
// Called mid-trick, or before any round has been dealt, it does nothing.
func (g *Game) NextTurn() {
	if !g.Started || g.Ended || g.Round == 0 {
		return
	}
	if g.Turn == 0 {
		g.openFirstTrick()
		g.autoPlayBots()
		return
	}
	if len(g.PlayedCards) == seats {
		g.resolveTrick()
		g.autoPlayBots()
	}
}

func (g *Game) openFirstTrick() {
	g.Turn = 1
	g.TurnOrder = rotationFrom(g.Lead)
}

// PlayCard attempts a play for the given player. A non-nil error is a
// rule rejection; the game state is untouched on rejection.
func (g *Game) PlayCard(player *Player, card Card) error {
	if !g.Started {
		return fmt.Errorf("Game not started!")
	}
	if g.Ended {
		return fmt.Errorf("Game is over!")
	}
	seat := g.Seat(player)
	if err := g.checkPlay(seat, card); err != nil {
		return err
	}
	g.commitPlay(seat, card)
	if len(g.PlayedCards) == seats {
		g.resolveTrick()
	}
	g.autoPlayBots()
	return nil
}

func (g *Game) commitPlay(seat int, card Card) {
	if card.Suit == SuitHearts {
		g.HeartsBroken = true
	}
	p := g.Players[seat]
	p.removeCard(card)
	played := card
	p.Play = &played
	g.PlayedCards = append(g.PlayedCards, card)
}

// resolveTrick moves the completed trick to the winner's pile, records
// the summary, rotates the turn order, and when the round is out of
// tricks, scores it and either ends the game or deals the next round.
func (g *Game) resolveTrick() {
	winner := trickWinner(g.TurnOrder, g.PlayedCards)
	g.Players[winner].Pile = append(g.Players[winner].Pile, g.PlayedCards...)
	g.Summary = &Summary{
		Cards: append([]Card(nil), g.PlayedCards...),
		Order: append([]int(nil), g.TurnOrder...),
	}
	g.PlayedCards = nil
	for _, p := range g.Players {
		p.Play = nil
	}
	g.Lead = winner
	g.Turn++

	if g.Turn > tricksPerRound {
		g.scoreRound()
		for _, p := range g.Players {
			if p.rawTotal() >= endScore {
				g.Ended = true
				return
			}
		}
		g.NextRound()
		g.openFirstTrick()
		return
	}
	g.TurnOrder = rotationFrom(winner)
}

// autoPlayBots plays consecutive bot turns until a human seat is
// reached, the game ends, or no trick is open. A bounded loop, never
// recursion: trick resolution happens inline so a full bot round still
// runs within this one call.
func (g *Game) autoPlayBots() {
	if !g.Bots {
		return
	}
	for !g.Ended && g.Turn >= 1 {
		seat := g.TurnOrder[len(g.PlayedCards)]
		if !g.Players[seat].Bot {
			return
		}
		g.commitPlay(seat, g.botCard(seat))
		if len(g.PlayedCards) == seats {
			g.resolveTrick()
		}
	}
}

// SetChooser installs the card picker used for bot seats. A nil
// chooser restores the built-in uniform-random pick.
func (g *Game) SetChooser(fn func(*Game, int) Card) {
	g.chooser = fn
}

// botCard picks a card for a bot seat via the installed chooser. Asking
// for a move on a non-bot seat is a programming error.
func (g *Game) botCard(seat int) Card {
	if !g.Players[seat].Bot {
		panic(fmt.Sprintf("engine: bot move requested for non-bot seat %d", seat))
	}
	if g.chooser != nil {
		return g.chooser(g, seat)
	}
	legal := g.LegalPlays(seat)
	if len(legal) == 0 {
		panic(fmt.Sprintf("engine: no legal plays for bot seat %d", seat))
	}
	return legal[g.rng.Intn(len(legal))]
}
