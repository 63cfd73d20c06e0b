package engine

import (
	"fmt"
	"math/rand"
)

type Suit int

type Rank int

// Suit order is the display/tie-break order: Clubs < Diamonds < Spades < Hearts.
const (
	SuitClubs Suit = iota
	SuitDiamonds
	SuitSpades
	SuitHearts
)

const (
	Rank2 Rank = iota
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
	RankA
)

type Color int

const (
	Black Color = iota
	Red
)

func (s Suit) String() string {
	switch s {
	case SuitClubs:
		return "C"
	case SuitDiamonds:
		return "D"
	case SuitSpades:
		return "S"
	case SuitHearts:
		return "H"
	default:
		return "?"
	}
}

func (s Suit) Color() Color {
	if s == SuitDiamonds || s == SuitHearts {
		return Red
	}
	return Black
}

func (r Rank) String() string {
	switch r {
	case Rank10:
		return "T"
	case RankJ:
		return "J"
	case RankQ:
		return "Q"
	case RankK:
		return "K"
	case RankA:
		return "A"
	default:
		return fmt.Sprintf("%d", int(r)+2)
	}
}

type Card struct {
	Suit Suit
	Rank Rank
}

var (
	TwoOfClubs    = Card{Suit: SuitClubs, Rank: Rank2}
	QueenOfSpades = Card{Suit: SuitSpades, Rank: RankQ}
)

// String is the 2-character wire code, rank char then suit char ("2C", "QS", "TH").
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Less orders by suit first, rank second. Rank order only decides
// trick winners within the led suit; across suits it exists for
// deterministic hand display.
func (c Card) Less(other Card) bool {
	if c.Suit != other.Suit {
		return c.Suit < other.Suit
	}
	return c.Rank < other.Rank
}

// ParseCard reads the 2-character code produced by Card.String.
func ParseCard(code string) (Card, error) {
	if len(code) != 2 {
		return Card{}, fmt.Errorf("invalid card code %q", code)
	}
	var rank Rank
	switch code[0] {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		rank = Rank(code[0] - '2')
	case 'T':
		rank = Rank10
	case 'J':
		rank = RankJ
	case 'Q':
		rank = RankQ
	case 'K':
		rank = RankK
	case 'A':
		rank = RankA
	default:
		return Card{}, fmt.Errorf("invalid rank %q", string(code[0]))
	}
	var suit Suit
	switch code[1] {
	case 'C':
		suit = SuitClubs
	case 'D':
		suit = SuitDiamonds
	case 'S':
		suit = SuitSpades
	case 'H':
		suit = SuitHearts
	default:
		return Card{}, fmt.Errorf("invalid suit %q", string(code[1]))
	}
	return Card{Suit: suit, Rank: rank}, nil
}

var suits = []Suit{SuitClubs, SuitDiamonds, SuitSpades, SuitHearts}

// NewDeck builds the ordered 52-card deck, one of each (suit, rank) pair.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, s := range suits {
		for r := Rank2; r <= RankA; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

func shuffleCards(rng *rand.Rand, deck []Card) {
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}
