package engine

import "fmt"

// checkPlay runs the legality checks in strict order; the first failing
// check produces the rejection. It never mutates state.
func (g *Game) checkPlay(seat int, card Card) error {
	p := g.Players[seat]
	if g.Turn == 0 {
		return fmt.Errorf("No trick in progress!")
	}
	expected := g.TurnOrder[len(g.PlayedCards)]
	if seat != expected {
		return fmt.Errorf("It's not %s's turn!  It is %s's!", p.Name, g.Players[expected].Name)
	}
	firstTrick := g.Turn == 1
	leading := len(g.PlayedCards) == 0
	if firstTrick && leading {
		// The turn check already forces seat == lead; this stays as a
		// second gate in case the turn order ever drifts.
		if seat != g.Lead {
			return fmt.Errorf("Player %s not allowed to play yet, must be %s!", p.Name, g.LeadPlayer().Name)
		}
		if card != TwoOfClubs {
			return fmt.Errorf("Card %s is invalid, must be %s!", card, TwoOfClubs)
		}
	}
	if firstTrick && !leading && card == QueenOfSpades {
		return fmt.Errorf("Can't throw crap on the first turn!")
	}
	if !leading {
		led := g.PlayedCards[0].Suit
		if card.Suit != led && p.HasSuit(led) {
			return fmt.Errorf("Card %s is invalid, must follow suit %s!", card, led)
		}
	} else if card.Suit == SuitHearts && !g.HeartsBroken && !allHearts(p.Hand) {
		return fmt.Errorf("Card %s is invalid, hearts not broken!", card)
	}
	if !p.hasCard(card) {
		return fmt.Errorf("Card %s not in %s's hand!", card, p.Name)
	}
	return nil
}

func allHearts(hand []Card) bool {
	for _, c := range hand {
		if c.Suit != SuitHearts {
			return false
		}
	}
	return true
}

// LegalPlays lists the cards the seat may play right now, assuming it
// is that seat's turn. Used by bots and available to clients.
func (g *Game) LegalPlays(seat int) []Card {
	p := g.Players[seat]
	legal := []Card{}
	for _, c := range p.Hand {
		if g.checkPlay(seat, c) == nil {
			legal = append(legal, c)
		}
	}
	if len(legal) > 0 {
		return legal
	}
	// Forced corner: a hand that fails every check, e.g. the led suit
	// held only as the Queen of Spades on the first trick. Follow suit
	// if possible, otherwise anything.
	if len(g.PlayedCards) > 0 {
		led := g.PlayedCards[0].Suit
		for _, c := range p.Hand {
			if c.Suit == led {
				legal = append(legal, c)
			}
		}
		if len(legal) > 0 {
			return legal
		}
	}
	return append(legal, p.Hand...)
}

// trickWinner picks the winning seat: highest rank among cards matching
// the led suit. Off-suit cards cannot win regardless of rank. Ties are
// impossible with unique cards.
func trickWinner(order []int, cards []Card) int {
	led := cards[0].Suit
	best := 0
	for i := 1; i < len(cards); i++ {
		if cards[i].Suit != led {
			continue
		}
		if cards[i].Rank > cards[best].Rank {
			best = i
		}
	}
	return order[best]
}

// scoreRound appends each seat's round score to its history. If one
// seat captured all 26 penalty points it shot the moon: every seat is
// instead scored 26 minus its own captured points, netting the shooter
// zero and everyone else 26.
func (g *Game) scoreRound() {
	captured := make([]int, len(g.Players))
	moon := false
	for i, p := range g.Players {
		captured[i] = p.ScoreRound()
		if captured[i] == 26 {
			moon = true
		}
	}
	for i, p := range g.Players {
		if moon {
			p.Scores = append(p.Scores, 26-captured[i])
		} else {
			p.Scores = append(p.Scores, captured[i])
		}
	}
}
