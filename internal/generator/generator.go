// Package generator builds randomized clock arithmetic questions.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/timequiz/internal/clocktime"
	"github.com/verte-zerg/timequiz/internal/model"
)

// Offset bounds for generated questions. Offsets are always at least one hour.
const (
	minOffsetHours = 1
	maxOffsetHours = 3
)

// Question is a single quiz round. The answer is computed at construction and
// cannot be changed afterwards.
type Question struct {
	base       clocktime.TimeOfDay
	offset     clocktime.Offset
	isAddition bool
	answer     clocktime.TimeOfDay
}

// NewQuestion builds a Question and derives its answer with clocktime.Wrap.
func NewQuestion(base clocktime.TimeOfDay, offset clocktime.Offset, isAddition bool) Question {
	return Question{
		base:       base,
		offset:     offset,
		isAddition: isAddition,
		answer:     clocktime.Wrap(base, offset, isAddition),
	}
}

// Base returns the starting time.
func (q Question) Base() clocktime.TimeOfDay { return q.base }

// Offset returns the duration applied to the base time.
func (q Question) Offset() clocktime.Offset { return q.offset }

// IsAddition reports whether the offset is added rather than subtracted.
func (q Question) IsAddition() bool { return q.isAddition }

// Answer returns the expected time.
func (q Question) Answer() clocktime.TimeOfDay { return q.answer }

// Generator produces randomized questions.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed, producing a reproducible
// question sequence.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Generate draws a base time, an offset and a direction for the given mode.
func (g *Generator) Generate(mode model.Mode) Question {
	base := clocktime.TimeOfDay{
		Hour:   g.rnd.Intn(clocktime.HoursPerDay),
		Minute: g.rnd.Intn(clocktime.MinutesPerHour),
	}
	offset := clocktime.Offset{
		Hours:   g.rnd.Intn(maxOffsetHours-minOffsetHours+1) + minOffsetHours,
		Minutes: g.rnd.Intn(clocktime.MinutesPerHour),
	}
	return NewQuestion(base, offset, g.isAddition(mode))
}

func (g *Generator) isAddition(mode model.Mode) bool {
	switch mode {
	case model.ModeAdd:
		return true
	case model.ModeSubtract:
		return false
	default:
		return g.rnd.Intn(2) == 1
	}
}
