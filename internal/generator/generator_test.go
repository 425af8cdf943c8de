package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/timequiz/internal/clocktime"
	"github.com/verte-zerg/timequiz/internal/model"
)

func TestGenerateRanges(t *testing.T) {
	gen := NewSeeded(42)
	for i := 0; i < 2000; i++ {
		q := gen.Generate(model.ModeRandom)
		base, offset := q.Base(), q.Offset()
		require.True(t, base.Hour >= 0 && base.Hour <= 23, "base hour %d", base.Hour)
		require.True(t, base.Minute >= 0 && base.Minute <= 59, "base minute %d", base.Minute)
		require.True(t, offset.Hours >= 1 && offset.Hours <= 3, "offset hours %d", offset.Hours)
		require.True(t, offset.Minutes >= 0 && offset.Minutes <= 59, "offset minutes %d", offset.Minutes)
		require.Equal(t, clocktime.Wrap(base, offset, q.IsAddition()), q.Answer())
	}
}

func TestGenerateFixedModes(t *testing.T) {
	gen := NewSeeded(1)
	for i := 0; i < 100; i++ {
		assert.True(t, gen.Generate(model.ModeAdd).IsAddition())
		assert.False(t, gen.Generate(model.ModeSubtract).IsAddition())
	}
}

func TestGenerateRandomProducesBothDirections(t *testing.T) {
	gen := NewSeeded(2024)
	var adds, subs int
	for i := 0; i < 100; i++ {
		if gen.Generate(model.ModeRandom).IsAddition() {
			adds++
		} else {
			subs++
		}
	}
	assert.Positive(t, adds)
	assert.Positive(t, subs)
}

func TestSeededGeneratorIsReproducible(t *testing.T) {
	a := NewSeeded(99)
	b := NewSeeded(99)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Generate(model.ModeRandom), b.Generate(model.ModeRandom))
	}
}

func TestNewQuestionDerivesAnswer(t *testing.T) {
	q := NewQuestion(clocktime.TimeOfDay{Hour: 23, Minute: 30}, clocktime.Offset{Hours: 1}, true)
	assert.Equal(t, clocktime.TimeOfDay{Hour: 0, Minute: 30}, q.Answer())
}
