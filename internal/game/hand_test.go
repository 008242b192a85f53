package game

import (
	"testing"
)

func TestHand_AddClear(t *testing.T) {
	var h Hand
	h.Add(NewCard(Ace, Spades))
	h.Add(NewCard(Ace, Spades))
	if h.Len() != 2 {
		t.Errorf("Len() = %v, want 2", h.Len())
	}
	if got, want := h.Total(), 12; got != want {
		t.Errorf("Total() = %v, want %v", got, want)
	}

	h.Clear()
	if h.Len() != 0 || h.Total() != 0 {
		t.Errorf("after Clear() Len() = %v, Total() = %v", h.Len(), h.Total())
	}
}

func TestHand_Cards(t *testing.T) {
	var h Hand
	h.Add(NewCard(Two, Clubs))
	cs := h.Cards()
	cs[0].Flip()
	if !h.cards[0].IsFaceUp() {
		t.Errorf("Cards() returned the hand's own slice")
	}
}

func TestHand_String(t *testing.T) {
	var h Hand
	if got := h.String(); got != "" {
		t.Errorf("String() = %#v, want empty", got)
	}
	h.Add(NewCard(Ace, Clubs))
	h.Add(NewCard(Six, Hearts))
	if got, want := h.String(), "Ac\t6h\t"; got != want {
		t.Errorf("String() = %#v, want %#v", got, want)
	}
}
