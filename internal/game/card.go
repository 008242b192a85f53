package game

import (
	"bytes"
	"strings"
)

type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const DeckSize = 52

var (
	CardRankNames = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
	CardSuitNames = []rune("cdhs")
)

// Card is one of the 52 cards of a standard deck. id is its position in
// the canonical deck order: suit*13 + rank-1. The zero value is a face up
// Ace of clubs.
type Card struct {
	id     int
	hidden bool
}

func NewCard(r Rank, s Suit) Card {
	return Card{id: int(s)*13 + int(r) - 1}
}

func (c Card) ID() int {
	return c.id
}

func (c Card) Rank() Rank {
	return Rank(c.id%13 + 1)
}

func (c Card) Suit() Suit {
	return Suit(c.id / 13)
}

func (c Card) IsFaceUp() bool {
	return !c.hidden
}

// Value returns the blackjack points of the card. A face down card is worth
// nothing, so the hole card never leaks through a total.
func (c Card) Value() int {
	if c.hidden {
		return 0
	}
	v := int(c.Rank())
	if v > 10 {
		v = 10
	}
	return v
}

func (c *Card) Flip() {
	c.hidden = !c.hidden
}

func (c Card) String() string {
	if c.hidden {
		return "XX"
	}
	bf := bytes.NewBuffer(nil)
	bf.WriteString(CardRankNames[c.id%13])
	bf.WriteRune(CardSuitNames[c.id/13])
	return bf.String()
}

type Cards []Card

func NewCards(ids ...int) Cards {
	var cs Cards
	for _, id := range ids {
		cs = append(cs, Card{id: id})
	}
	return cs
}

// Total sums the cards. The result is 0 while the first card is face down.
// A face up Ace is promoted to 11 once when that keeps the sum within 21.
func (cs Cards) Total() int {
	if len(cs) == 0 || cs[0].Value() == 0 {
		return 0
	}
	sum := 0
	hasAce := false
	for _, c := range cs {
		if c.Value() == int(Ace) {
			hasAce = true
		}
		sum += c.Value()
	}
	if hasAce && sum <= 11 {
		sum += 10
	}
	return sum
}

func (cs Cards) String() string {
	s := make([]string, len(cs))
	for i := range cs {
		s[i] = cs[i].String()
	}
	return strings.Join(s, " ")
}
