package blackjack

import (
	"fmt"
	"slices"
	"strings"
)

const blackjackTotal = 21

// Hand is the cards held by one party.
type Hand struct {
	cards []Card
}

// AddCard adds a card to the hand.
func (h *Hand) AddCard(c Card) {
	h.cards = append(h.cards, c)
}

// Clear empties the hand for a new round.
func (h *Hand) Clear() {
	h.cards = h.cards[:0]
}

// Len returns the number of cards held.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the cards in the order they were dealt.
func (h *Hand) Cards() []Card {
	return slices.Clone(h.cards)
}

// Value returns the best total of the hand. Aces count 11, and as many of
// them as needed to stay at or under 21 are recounted as 1.
func (h *Hand) Value() int {
	total, _ := h.score()
	return total
}

// IsSoft reports whether an Ace is still counted as 11 in Value.
func (h *Hand) IsSoft() bool {
	_, soft := h.score()
	return soft > 0
}

func (h *Hand) score() (total, softAces int) {
	for _, c := range h.cards {
		total += c.Value()
		if c.Rank == Ace {
			softAces++
		}
	}
	for total > blackjackTotal && softAces > 0 {
		total -= 10
		softAces--
	}
	return total, softAces
}

// IsBusted reports whether the hand is over 21.
func (h *Hand) IsBusted() bool {
	return h.Value() > blackjackTotal
}

// IsBlackjack reports whether the hand is a two-card 21.
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Value() == blackjackTotal
}

func (h *Hand) String() string {
	labels := make([]string, len(h.cards))
	for i, c := range h.cards {
		labels[i] = c.String()
	}
	return fmt.Sprintf("%s (%d)", strings.Join(labels, " "), h.Value())
}
