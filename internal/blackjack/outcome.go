package blackjack

// Outcome is how a round ended for the player.
type Outcome int

const (
	PlayerBust Outcome = iota + 1
	DealerBust
	PlayerBlackjack
	DealerBlackjack
	PlayerWin
	DealerWin
	Push
)

func (o Outcome) String() string {
	switch o {
	case PlayerBust:
		return "player_bust"
	case DealerBust:
		return "dealer_bust"
	case PlayerBlackjack:
		return "player_blackjack"
	case DealerBlackjack:
		return "dealer_blackjack"
	case PlayerWin:
		return "player_win"
	case DealerWin:
		return "dealer_win"
	case Push:
		return "push"
	default:
		return "unknown"
	}
}

// Message is the line shown to the player when the round resolves.
func (o Outcome) Message() string {
	switch o {
	case PlayerBust:
		return "You lose! You busted."
	case DealerBust:
		return "You win! Dealer busted."
	case PlayerBlackjack:
		return "You win with Blackjack!"
	case DealerBlackjack:
		return "Dealer wins with Blackjack!"
	case PlayerWin:
		return "You win!"
	case DealerWin:
		return "Dealer wins!"
	case Push:
		return "Push! It's a tie."
	default:
		return "The round is over."
	}
}

// Won reports whether the player is paid.
func (o Outcome) Won() bool {
	return o == DealerBust || o == PlayerBlackjack || o == PlayerWin
}

// Lost reports whether the player forfeits the bet.
func (o Outcome) Lost() bool {
	return o == PlayerBust || o == DealerBlackjack || o == DealerWin
}

// Judge decides the round. The first matching rule wins: player bust,
// dealer bust, player blackjack, dealer blackjack, then higher total.
func Judge(player, dealer *Hand) Outcome {
	switch {
	case player.IsBusted():
		return PlayerBust
	case dealer.IsBusted():
		return DealerBust
	case player.IsBlackjack() && !dealer.IsBlackjack():
		return PlayerBlackjack
	case dealer.IsBlackjack() && !player.IsBlackjack():
		return DealerBlackjack
	}
	p, d := player.Value(), dealer.Value()
	switch {
	case p > d:
		return PlayerWin
	case d > p:
		return DealerWin
	default:
		return Push
	}
}

// Settle returns the balance after paying out bet for outcome o.
// Blackjack pays 3:2 with the odd half chip dropped.
func Settle(balance, bet uint, o Outcome) uint {
	switch {
	case o == PlayerBlackjack:
		return balance + bet*3/2
	case o.Won():
		return balance + bet
	case o.Lost():
		if bet > balance {
			return 0
		}
		return balance - bet
	default:
		return balance
	}
}
