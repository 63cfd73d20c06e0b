package engine

import "testing"

func TestTrickWinnerByRank(t *testing.T) {
	order := []int{0, 1, 2, 3}
	cards := mustCards(t, "5C", "KC", "2C", "9C")
	if winner := trickWinner(order, cards); winner != 1 {
		t.Fatalf("expected seat 1 to win, got %d", winner)
	}
}

func TestTrickWinnerIgnoresOffSuit(t *testing.T) {
	// The ace of hearts cannot win a diamond trick.
	order := []int{2, 3, 0, 1}
	cards := mustCards(t, "5D", "AH", "JD", "AS")
	if winner := trickWinner(order, cards); winner != 0 {
		t.Fatalf("expected seat 0 (JD) to win, got %d", winner)
	}
}

func TestTrickWinnerLeadCardCanWin(t *testing.T) {
	order := []int{3, 0, 1, 2}
	cards := mustCards(t, "AS", "2H", "3D", "4C")
	if winner := trickWinner(order, cards); winner != 3 {
		t.Fatalf("expected leader to win, got %d", winner)
	}
}

func TestScoreRoundNormal(t *testing.T) {
	g := New(1)
	g.Players[0].Pile = mustCards(t, "2H", "3H", "QS")
	g.Players[1].Pile = mustCards(t, "4H", "2C", "9D")
	g.Players[2].Pile = nil
	g.Players[3].Pile = mustCards(t, "5H", "6H", "7H")

	g.scoreRound()

	want := []int{15, 1, 0, 3}
	for i, p := range g.Players {
		if len(p.Scores) != 1 || p.Scores[0] != want[i] {
			t.Fatalf("seat %d scores: %v, want [%d]", i, p.Scores, want[i])
		}
	}
}

func TestScoreRoundShootTheMoon(t *testing.T) {
	g := New(1)
	hearts := []Card{}
	for r := Rank2; r <= RankA; r++ {
		hearts = append(hearts, Card{Suit: SuitHearts, Rank: r})
	}
	g.Players[2].Pile = append(hearts, QueenOfSpades)

	g.scoreRound()

	for i, p := range g.Players {
		want := 26
		if i == 2 {
			want = 0
		}
		if len(p.Scores) != 1 || p.Scores[0] != want {
			t.Fatalf("seat %d scores: %v, want [%d]", i, p.Scores, want)
		}
	}
}

func TestLegalPlaysFollowSuit(t *testing.T) {
	g := newFixedGame(t)
	g.Turn = 2
	g.Lead = 0
	g.TurnOrder = []int{0, 1, 2, 3}
	g.PlayedCards = mustCards(t, "5D")
	g.Players[1].Hand = mustCards(t, "9D", "KD", "AS", "4H")

	legal := g.LegalPlays(1)
	if len(legal) != 2 {
		t.Fatalf("expected 2 legal plays, got %v", legal)
	}
	for _, c := range legal {
		if c.Suit != SuitDiamonds {
			t.Fatalf("expected only diamonds, got %v", legal)
		}
	}
}

func TestLegalPlaysVoidInLedSuit(t *testing.T) {
	g := newFixedGame(t)
	g.Turn = 2
	g.Lead = 0
	g.TurnOrder = []int{0, 1, 2, 3}
	g.PlayedCards = mustCards(t, "5D")
	g.Players[1].Hand = mustCards(t, "AS", "4H", "9C")

	if legal := g.LegalPlays(1); len(legal) != 3 {
		t.Fatalf("void seat may play anything, got %v", legal)
	}
}

func TestLegalPlaysForcedQueenFollow(t *testing.T) {
	// First trick and the hand is down to the queen of spades alone.
	// The no-dump rule yields no legal card, so the fallback applies.
	g := newFixedGame(t)
	g.Turn = 1
	g.Lead = 0
	g.TurnOrder = []int{0, 1, 2, 3}
	g.PlayedCards = mustCards(t, "2C", "3C")
	g.Players[2].Hand = mustCards(t, "QS")

	legal := g.LegalPlays(2)
	if len(legal) != 1 || legal[0] != QueenOfSpades {
		t.Fatalf("expected forced queen, got %v", legal)
	}
}
