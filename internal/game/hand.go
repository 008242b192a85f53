package game

import (
	"strings"
)

// Hand holds the cards a participant, or the deck, currently owns.
type Hand struct {
	cards Cards
}

func (h *Hand) Add(c Card) {
	h.cards = append(h.cards, c)
}

func (h *Hand) Clear() {
	h.cards = h.cards[:0]
}

func (h *Hand) Total() int {
	return h.cards.Total()
}

func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the held cards.
func (h *Hand) Cards() Cards {
	cs := make(Cards, len(h.cards))
	copy(cs, h.cards)
	return cs
}

// String renders each card followed by a tab, the way hands are shown at
// the table.
func (h *Hand) String() string {
	var bf strings.Builder
	for _, c := range h.cards {
		bf.WriteString(c.String())
		bf.WriteByte('\t')
	}
	return bf.String()
}

// take removes the last card.
func (h *Hand) take() (Card, bool) {
	if len(h.cards) == 0 {
		return Card{}, false
	}
	c := h.cards[len(h.cards)-1]
	h.cards = h.cards[:len(h.cards)-1]
	return c, true
}
