// Package quiz runs quiz sessions and tracks their score.
package quiz

import (
	"time"

	"github.com/verte-zerg/timequiz/internal/model"
)

// State is the mutable score of one session. The mode is fixed on creation.
type State struct {
	mode       model.Mode
	streak     int
	bestStreak int
	rounds     int
	correct    int
	answerTime time.Duration
	times      []time.Duration
}

// NewState returns an empty State for mode.
func NewState(mode model.Mode) *State {
	return &State{mode: mode}
}

// Mode returns the session mode.
func (s *State) Mode() model.Mode { return s.mode }

// Streak returns the current run of consecutive correct answers.
func (s *State) Streak() int { return s.streak }

// Record scores one round: a correct answer extends the streak, an incorrect
// one resets it to zero.
func (s *State) Record(correct bool, elapsed time.Duration) {
	s.rounds++
	if elapsed < 0 {
		elapsed = 0
	}
	s.answerTime += elapsed
	s.times = append(s.times, elapsed)
	if !correct {
		s.streak = 0
		return
	}
	s.correct++
	s.streak++
	if s.streak > s.bestStreak {
		s.bestStreak = s.streak
	}
}

// Summary returns a snapshot of the session tallies.
func (s *State) Summary() model.SessionSummary {
	return model.SessionSummary{
		Mode:            s.mode,
		Rounds:          s.rounds,
		Correct:         s.correct,
		Incorrect:       s.rounds - s.correct,
		Streak:          s.streak,
		BestStreak:      s.bestStreak,
		TotalAnswerTime: s.answerTime,
		AnswerTimes:     append([]time.Duration(nil), s.times...),
	}
}
