package blackjack

// UI is everything the engine needs from the terminal: two prompts that
// each return one line of text, and a sink for everything it reports.
type UI interface {
	RequestBet(balance uint) (string, error)
	RequestAction() (string, error)
	Notify(Event)
}

// Kind says what an Event reports.
type Kind int

const (
	KindWelcome Kind = iota + 1
	KindRejected
	KindShuffle
	KindTable
	KindDraw
	KindBust
	KindBlackjack
	KindDealerStands
	KindOutcome
	KindSessionEnd
)

// Party identifies who a card was dealt to.
type Party int

const (
	Player Party = iota + 1
	Dealer
)

func (p Party) String() string {
	switch p {
	case Player:
		return "player"
	case Dealer:
		return "dealer"
	default:
		return "unknown"
	}
}

// EndReason says why a session stopped.
type EndReason int

const (
	EndQuit EndReason = iota + 1
	EndBroke
	EndInputClosed
)

// Table is a snapshot of both hands for display.
type Table struct {
	Player      []Card
	PlayerTotal int
	Dealer      []Card
	DealerTotal int
	// PlayerSoft and DealerSoft mark totals that still count an Ace as 11.
	PlayerSoft bool
	DealerSoft bool
	// HideDealer masks the dealer's first card and total.
	HideDealer bool
}

// Event is one report from the engine. Only the fields relevant to Kind are set.
type Event struct {
	Kind    Kind
	Message string
	Table   Table
	Party   Party
	Card    Card
	Outcome Outcome
	Balance uint
	Bet     uint
	Reason  EndReason
}
