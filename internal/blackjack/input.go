package blackjack

import (
	"errors"
	"strconv"
	"strings"
)

// Input rejections. None of them changes game state.
var (
	ErrInvalidBet        = errors.New("bet is not a whole number")
	ErrInsufficientChips = errors.New("bet exceeds chip balance")
	ErrUnknownAction     = errors.New("unknown action")
)

// Action is a player decision during their turn.
type Action int

const (
	Hit Action = iota + 1
	Stand
)

func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	default:
		return "unknown"
	}
}

// ParseBet reads a bet from one line of input. A zero bet means the player
// wants to quit and is returned without error.
func ParseBet(line string, balance uint) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, ErrInvalidBet
	}
	if n > uint64(balance) {
		return 0, ErrInsufficientChips
	}
	return uint(n), nil
}

// ParseAction reads "h"/"hit" or "s"/"stand", ignoring case and surrounding space.
func ParseAction(line string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "h", "hit":
		return Hit, nil
	case "s", "stand":
		return Stand, nil
	default:
		return 0, ErrUnknownAction
	}
}

func rejection(err error) string {
	switch {
	case errors.Is(err, ErrInsufficientChips):
		return "You don't have enough chips!"
	case errors.Is(err, ErrInvalidBet):
		return "Invalid input! Please enter a number."
	case errors.Is(err, ErrUnknownAction):
		return "Invalid input! Please enter 'h' for hit or 's' for stand."
	default:
		return err.Error()
	}
}
