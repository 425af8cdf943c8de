// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Mode selects whether questions add, subtract, or pick either at random.
type Mode int

// Quiz modes. ModeUnset means the user is asked at startup.
const (
	ModeUnset Mode = iota
	ModeAdd
	ModeSubtract
	ModeRandom
)

func (m Mode) String() string {
	switch m {
	case ModeAdd:
		return "add"
	case ModeSubtract:
		return "subtract"
	case ModeRandom:
		return "random"
	default:
		return "unset"
	}
}

// ModeFromChoice maps a menu number to a Mode. Anything other than 1 or 2
// selects ModeRandom.
func ModeFromChoice(choice int) Mode {
	switch choice {
	case 1:
		return ModeAdd
	case 2:
		return ModeSubtract
	default:
		return ModeRandom
	}
}

// ParseMode parses a mode name or menu number from flags or config.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ModeUnset, nil
	case "1", "add", "addition":
		return ModeAdd, nil
	case "2", "sub", "subtract", "subtraction":
		return ModeSubtract, nil
	case "3", "random", "mixed":
		return ModeRandom, nil
	default:
		return ModeUnset, fmt.Errorf("unknown mode %q (expected add, subtract or random)", s)
	}
}

// Config defines quiz settings.
type Config struct {
	Mode Mode
	Seed int64
	TUI  bool
}

// SessionSummary captures the tallies of a quiz session.
type SessionSummary struct {
	Mode            Mode
	Rounds          int
	Correct         int
	Incorrect       int
	Streak          int
	BestStreak      int
	TotalAnswerTime time.Duration
	AnswerTimes     []time.Duration
}
