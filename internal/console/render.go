package console

import (
	"strings"
	"unicode/utf8"

	"github.com/pterm/pterm"

	"github.com/tm-paseri/termjack/internal/blackjack"
)

const cellWidth = 3

// Renderer draws cards as three-line boxes.
type Renderer struct {
	Color bool
}

// RenderCard returns the three rows of a face-up card.
func (r Renderer) RenderCard(c blackjack.Card) []string {
	label := c.String()
	pad := strings.Repeat(" ", max(cellWidth-utf8.RuneCountInString(label), 0))
	return []string{
		"╔═══╗",
		"║" + r.tint(c) + pad + "║",
		"╚═══╝",
	}
}

// RenderHiddenCard returns the three rows of a face-down card.
func (r Renderer) RenderHiddenCard() []string {
	back := "░░░"
	if r.Color {
		back = pterm.Gray(back)
	}
	return []string{
		"╔═══╗",
		"║" + back + "║",
		"╚═══╝",
	}
}

// RenderHand renders cards side by side. With hideFirst set the first card
// is drawn face down.
func (r Renderer) RenderHand(cards []blackjack.Card, hideFirst bool) string {
	rows := make([][]string, 0, len(cards))
	for i, c := range cards {
		if i == 0 && hideFirst {
			rows = append(rows, r.RenderHiddenCard())
			continue
		}
		rows = append(rows, r.RenderCard(c))
	}
	return RenderCardsHorizontal(rows)
}

func (r Renderer) tint(c blackjack.Card) string {
	if !r.Color {
		return c.String()
	}
	if c.Suit.IsRed() {
		return c.Rank.String() + pterm.LightRed(c.Suit.String())
	}
	return c.Rank.String() + pterm.LightWhite(c.Suit.String())
}

// RenderCardsHorizontal joins rendered cards row by row, one space apart.
func RenderCardsHorizontal(cards [][]string) string {
	if len(cards) == 0 {
		return ""
	}
	height := len(cards[0])
	lines := make([]string, height)
	for row := range height {
		parts := make([]string, len(cards))
		for i, card := range cards {
			parts[i] = card[row]
		}
		lines[row] = strings.Join(parts, " ")
	}
	return strings.Join(lines, "\n")
}
