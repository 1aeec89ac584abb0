// Package console is the terminal side of the game: it prompts for bets and
// actions one line at a time and prints everything the engine reports.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/tm-paseri/termjack/internal/blackjack"
)

const separator = "--------------------"

// Console implements blackjack.UI over a reader and a writer.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	render Renderer
}

var _ blackjack.UI = (*Console)(nil)

// New creates a console reading from r and writing to w.
func New(r io.Reader, w io.Writer, color bool) *Console {
	return &Console{
		in:     bufio.NewReader(r),
		out:    w,
		render: Renderer{Color: color},
	}
}

// RequestBet prompts with the balance and reads one line.
func (c *Console) RequestBet(balance uint) (string, error) {
	fmt.Fprintf(c.out, "You have %d chips. Enter your bet (or 0 to quit): ", balance)
	return c.readLine()
}

// RequestAction prompts for hit or stand and reads one line.
func (c *Console) RequestAction() (string, error) {
	fmt.Fprint(c.out, "Hit (h) or Stand (s)? ")
	return c.readLine()
}

// readLine returns the next line without its terminator. A last line with
// no newline is still returned; io.EOF comes back only when nothing was read.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	if err != nil {
		fmt.Fprintln(c.out)
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Notify prints one engine event.
func (c *Console) Notify(ev blackjack.Event) {
	switch ev.Kind {
	case blackjack.KindWelcome:
		fmt.Fprintln(c.out, "Welcome to Blackjack!")
		fmt.Fprintln(c.out, "==================")
	case blackjack.KindTable:
		c.printTable(ev.Table)
	case blackjack.KindDraw:
		who := "You"
		if ev.Party == blackjack.Dealer {
			who = "Dealer"
		}
		fmt.Fprintf(c.out, "%s drew: %s\n", who, c.render.tint(ev.Card))
	case blackjack.KindOutcome:
		fmt.Fprintln(c.out, c.outcomeLine(ev.Outcome, ev.Message))
		fmt.Fprintf(c.out, "You bet %d. You now have %d chips.\n\n", ev.Bet, ev.Balance)
	case blackjack.KindSessionEnd:
		if ev.Reason == blackjack.EndBroke {
			fmt.Fprintln(c.out, "You're out of chips! Game over.")
		}
		fmt.Fprintln(c.out, "Thanks for playing!")
	default:
		if ev.Message != "" {
			fmt.Fprintln(c.out, ev.Message)
		}
	}
}

func (c *Console) printTable(t blackjack.Table) {
	dealerTotal := total(t.DealerTotal, t.DealerSoft)
	if t.HideDealer {
		dealerTotal = "?"
	}
	fmt.Fprintln(c.out, separator)
	fmt.Fprintln(c.out, "=== Dealer's Hand ===")
	fmt.Fprintln(c.out, c.render.RenderHand(t.Dealer, t.HideDealer))
	fmt.Fprintf(c.out, "Total: %s\n", dealerTotal)
	fmt.Fprintln(c.out, "=== Your Hand ===")
	fmt.Fprintln(c.out, c.render.RenderHand(t.Player, false))
	fmt.Fprintf(c.out, "Total: %s\n", total(t.PlayerTotal, t.PlayerSoft))
	fmt.Fprintln(c.out, separator)
}

func total(n int, soft bool) string {
	if soft {
		return fmt.Sprintf("%d (soft)", n)
	}
	return fmt.Sprint(n)
}

func (c *Console) outcomeLine(o blackjack.Outcome, msg string) string {
	if !c.render.Color {
		return msg
	}
	switch {
	case o.Won():
		return pterm.LightGreen(msg)
	case o.Lost():
		return pterm.LightRed(msg)
	default:
		return pterm.LightYellow(msg)
	}
}
