package blackjack

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
)

const (
	// DefaultStartingChips is the balance a new game starts with.
	DefaultStartingChips uint = 1000
	// DealerStandsOn is the total at which the dealer stops drawing, soft or hard.
	DealerStandsOn = 17
)

// State is the step of the round the game is in.
type State int

const (
	AwaitingBet State = iota
	Dealing
	PlayerTurn
	DealerTurn
	Resolved
)

func (s State) String() string {
	switch s {
	case AwaitingBet:
		return "awaiting_bet"
	case Dealing:
		return "dealing"
	case PlayerTurn:
		return "player_turn"
	case DealerTurn:
		return "dealer_turn"
	case Resolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Options configures a new Game. Zero values select the defaults.
type Options struct {
	StartingChips uint
	Shuffler      Shuffler
	Logger        *log.Logger
}

// Game holds the state of one session at the table.
type Game struct {
	id       uuid.UUID
	ui       UI
	shuffler Shuffler
	logger   *log.Logger

	deck   *Deck
	player Hand
	dealer Hand
	chips  uint
	bet    uint
	state  State
}

// NewGame creates a game with a freshly shuffled deck and empty hands.
func NewGame(ui UI, opts Options) *Game {
	chips := opts.StartingChips
	if chips == 0 {
		chips = DefaultStartingChips
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	g := &Game{
		id:       uuid.New(),
		ui:       ui,
		shuffler: opts.Shuffler,
		logger:   logger,
		deck:     NewDeck(),
		chips:    chips,
		state:    AwaitingBet,
	}
	g.deck.Shuffle(g.shuffler)
	return g
}

// ID identifies the session in log lines.
func (g *Game) ID() uuid.UUID { return g.id }

// Chips returns the player's current balance.
func (g *Game) Chips() uint { return g.chips }

// Bet returns the wager of the current or last round.
func (g *Game) Bet() uint { return g.bet }

// State returns the step the current round has reached.
func (g *Game) State() State { return g.state }

// Remaining returns the number of cards left in the deck.
func (g *Game) Remaining() int { return g.deck.Remaining() }

// Snapshot returns both hands for display.
func (g *Game) Snapshot(hideDealer bool) Table {
	return Table{
		Player:      g.player.Cards(),
		PlayerTotal: g.player.Value(),
		Dealer:      g.dealer.Cards(),
		DealerTotal: g.dealer.Value(),
		PlayerSoft:  g.player.IsSoft(),
		DealerSoft:  g.dealer.IsSoft(),
		HideDealer:  hideDealer,
	}
}

// Run plays rounds until the player quits, runs out of chips or input ends.
func (g *Game) Run() error {
	g.ui.Notify(Event{Kind: KindWelcome, Balance: g.chips})
	reason := EndBroke
	for g.chips > 0 {
		more, err := g.PlayRound()
		if errors.Is(err, io.EOF) {
			g.logf("input closed in state %s", g.state)
			reason = EndInputClosed
			break
		}
		if err != nil {
			return err
		}
		if !more {
			reason = EndQuit
			break
		}
	}
	g.logf("session over: balance=%d", g.chips)
	g.ui.Notify(Event{Kind: KindSessionEnd, Reason: reason, Balance: g.chips})
	return nil
}

// PlayRound takes a bet and plays one round to completion. It returns false
// when the player chose to quit instead of betting.
func (g *Game) PlayRound() (bool, error) {
	g.state = AwaitingBet
	bet, err := g.placeBet()
	if err != nil {
		return false, err
	}
	if bet == 0 {
		return false, nil
	}
	g.bet = bet
	g.logf("round start: bet=%d balance=%d remaining=%d", g.bet, g.chips, g.deck.Remaining())

	g.state = Dealing
	g.ensureDeck()
	g.dealInitialHands()
	g.ui.Notify(Event{Kind: KindTable, Table: g.Snapshot(true)})

	g.state = PlayerTurn
	survived, err := g.playerTurn()
	if err != nil {
		return false, err
	}
	if survived {
		g.state = DealerTurn
		g.ui.Notify(Event{Kind: KindTable, Table: g.Snapshot(false)})
		g.dealerTurn()
		g.ui.Notify(Event{Kind: KindTable, Table: g.Snapshot(false)})
	}

	outcome := g.resolve()
	g.state = Resolved
	g.logf("round over: outcome=%s player=[%s] dealer=[%s] balance=%d", outcome, g.player.String(), g.dealer.String(), g.chips)
	g.ui.Notify(Event{
		Kind:    KindOutcome,
		Message: outcome.Message(),
		Table:   g.Snapshot(false),
		Outcome: outcome,
		Bet:     g.bet,
		Balance: g.chips,
	})
	return true, nil
}

func (g *Game) placeBet() (uint, error) {
	for {
		line, err := g.ui.RequestBet(g.chips)
		if err != nil {
			return 0, fmt.Errorf("read bet: %w", err)
		}
		bet, err := ParseBet(line, g.chips)
		if err != nil {
			g.reject(err)
			continue
		}
		return bet, nil
	}
}

// ensureDeck replaces a low deck with a fresh shuffled one.
func (g *Game) ensureDeck() {
	if g.deck.Remaining() >= LowWaterMark {
		return
	}
	g.logf("reshuffling with %d cards left", g.deck.Remaining())
	g.ui.Notify(Event{Kind: KindShuffle, Message: "Shuffling deck..."})
	g.deck = NewDeck()
	g.deck.Shuffle(g.shuffler)
}

// dealInitialHands deals two cards each, alternating player and dealer.
func (g *Game) dealInitialHands() {
	g.player.Clear()
	g.dealer.Clear()
	for range 2 {
		g.draw(&g.player)
		g.draw(&g.dealer)
	}
}

// draw moves the top card into h. An empty deck skips the slot.
func (g *Game) draw(h *Hand) (Card, bool) {
	card, err := g.deck.Deal()
	if err != nil {
		g.logf("invariant violated: %v in state %s, deal skipped", err, g.state)
		return Card{}, false
	}
	h.AddCard(card)
	return card, true
}

// playerTurn runs the hit/stand loop and reports whether the player is
// still in the round.
func (g *Game) playerTurn() (bool, error) {
	for {
		if g.player.IsBusted() {
			g.ui.Notify(Event{Kind: KindBust, Party: Player, Message: "You busted!"})
			return false, nil
		}
		if g.player.IsBlackjack() {
			g.ui.Notify(Event{Kind: KindBlackjack, Party: Player, Message: "Blackjack!"})
			return true, nil
		}

		line, err := g.ui.RequestAction()
		if err != nil {
			return false, fmt.Errorf("read action: %w", err)
		}
		action, err := ParseAction(line)
		if err != nil {
			g.reject(err)
			continue
		}
		switch action {
		case Hit:
			card, ok := g.draw(&g.player)
			if !ok {
				continue
			}
			g.ui.Notify(Event{Kind: KindDraw, Party: Player, Card: card})
			g.ui.Notify(Event{Kind: KindTable, Table: g.Snapshot(true)})
		case Stand:
			return true, nil
		}
	}
}

// dealerTurn draws until the dealer reaches DealerStandsOn.
func (g *Game) dealerTurn() {
	for g.dealer.Value() < DealerStandsOn {
		card, ok := g.draw(&g.dealer)
		if !ok {
			return
		}
		g.ui.Notify(Event{Kind: KindDraw, Party: Dealer, Card: card})
	}
	if !g.dealer.IsBusted() {
		g.ui.Notify(Event{
			Kind:    KindDealerStands,
			Party:   Dealer,
			Message: fmt.Sprintf("Dealer stands on %d.", g.dealer.Value()),
		})
	}
}

// resolve judges the round and is the only place the balance changes.
func (g *Game) resolve() Outcome {
	outcome := Judge(&g.player, &g.dealer)
	g.chips = Settle(g.chips, g.bet, outcome)
	return outcome
}

func (g *Game) reject(err error) {
	g.ui.Notify(Event{Kind: KindRejected, Message: rejection(err)})
}

func (g *Game) logf(format string, args ...any) {
	g.logger.Printf("session=%s "+format, append([]any{g.id}, args...)...)
}
