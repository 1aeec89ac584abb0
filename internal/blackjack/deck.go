package blackjack

import (
	"errors"
	"math/rand"
)

// LowWaterMark is the card count below which the deck is replaced before a
// round is dealt.
const LowWaterMark = 10

// ErrEmptyDeck is returned by Deal when no cards are left.
var ErrEmptyDeck = errors.New("deck is empty")

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Deck is a stack of cards dealt from the top.
type Deck struct {
	cards []Card
}

// NewDeck creates a standard 52-card deck in suit-major, rank-minor order.
func NewDeck() *Deck {
	cards := make([]Card, 0, len(Suits)*len(Ranks))
	for _, s := range Suits {
		for _, r := range Ranks {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return &Deck{cards: cards}
}

// Shuffle permutes the remaining cards in place. A nil shuffler uses the
// process-wide math/rand source.
func (d *Deck) Shuffle(s Shuffler) {
	swap := func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	if s == nil {
		rand.Shuffle(len(d.cards), swap)
		return
	}
	s.Shuffle(len(d.cards), swap)
}

// Deal removes and returns the top card.
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	top := len(d.cards) - 1
	card := d.cards[top]
	d.cards = d.cards[:top]
	return card, nil
}

// Remaining returns how many cards are left to deal.
func (d *Deck) Remaining() int {
	return len(d.cards)
}
