package engine

type Player struct {
	Name      string
	Connected bool
	Bot       bool
	Hand      []Card
	Play      *Card
	Pile      []Card
	Scores    []int
}

func (p *Player) HasSuit(suit Suit) bool {
	for _, c := range p.Hand {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

func (p *Player) SuitCount(suit Suit) int {
	count := 0
	for _, c := range p.Hand {
		if c.Suit == suit {
			count++
		}
	}
	return count
}

func (p *Player) hasCard(card Card) bool {
	for _, c := range p.Hand {
		if c == card {
			return true
		}
	}
	return false
}

func (p *Player) removeCard(card Card) bool {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// ScoreRound counts penalty points captured this round: one per Heart,
// thirteen for the Queen of Spades.
func (p *Player) ScoreRound() int {
	score := 0
	for _, c := range p.Pile {
		if c.Suit == SuitHearts {
			score++
		}
		if c == QueenOfSpades {
			score += 13
		}
	}
	return score
}

// TotalScore folds the score history with the wrap-at-100 house rule:
// each time the running sum reaches or passes 100, exactly 100 is
// subtracted before the fold continues. Not modulo; a single addition
// only ever triggers one subtraction.
func (p *Player) TotalScore() int {
	total := 0
	for _, s := range p.Scores {
		total += s
		if total >= 100 {
			total -= 100
		}
	}
	return total
}

// rawTotal is the unwrapped cumulative sum, used for game-end detection.
func (p *Player) rawTotal() int {
	total := 0
	for _, s := range p.Scores {
		total += s
	}
	return total
}
