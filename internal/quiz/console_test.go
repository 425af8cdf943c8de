package quiz

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/timequiz/internal/clocktime"
	"github.com/verte-zerg/timequiz/internal/generator"
	"github.com/verte-zerg/timequiz/internal/model"
)

const testSeed = 7

func newTestConsole(input string, mode model.Mode) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	c := NewConsole(Options{
		In:        strings.NewReader(input),
		Out:       &out,
		Mode:      mode,
		Generator: generator.NewSeeded(testSeed),
		Clock:     clock.NewMock(),
	})
	return c, &out
}

func TestConsoleScoresRounds(t *testing.T) {
	oracle := generator.NewSeeded(testSeed)
	first := oracle.Generate(model.ModeAdd).Answer()
	second := oracle.Generate(model.ModeAdd).Answer()
	wrong := clocktime.FromMinutes(second.Minutes() + 1)

	input := fmt.Sprintf("1\n%d\n%d\ny\n%d %d\nn\n", first.Hour, first.Minute, wrong.Hour, wrong.Minute)
	c, out := newTestConsole(input, model.ModeUnset)
	require.NoError(t, c.Run())

	summary := c.State().Summary()
	assert.Equal(t, model.ModeAdd, summary.Mode)
	assert.Equal(t, 2, summary.Rounds)
	assert.Equal(t, 1, summary.Correct)
	assert.Equal(t, 0, summary.Streak)
	assert.Equal(t, 1, summary.BestStreak)

	text := out.String()
	for _, want := range []string{
		"Choose a mode",
		"Correct! Well done!",
		"Streak: 1",
		"The answer was " + second.String(),
		"Streak: 0",
		"Thanks for playing!",
		"Summary",
	} {
		assert.Contains(t, text, want)
	}
}

func TestConsoleNormalizesRawAnswer(t *testing.T) {
	oracle := generator.NewSeeded(testSeed)
	first := oracle.Generate(model.ModeSubtract).Answer()
	second := oracle.Generate(model.ModeSubtract).Answer()

	input := fmt.Sprintf("%d %d Y %d %d n", first.Hour+24, first.Minute+60, second.Hour-24, second.Minute-60)
	c, out := newTestConsole(input, model.ModeSubtract)
	require.NoError(t, c.Run())

	assert.NotContains(t, out.String(), "Choose a mode")
	summary := c.State().Summary()
	assert.Equal(t, 2, summary.Rounds)
	assert.Equal(t, 2, summary.Correct)
	assert.Equal(t, 2, summary.Streak)
}

func TestConsoleInvalidModeChoiceUsesRandom(t *testing.T) {
	for _, choice := range []string{"abc", "3", "0", "42"} {
		c, out := newTestConsole(choice+"\n", model.ModeUnset)
		require.NoError(t, c.Run(), "choice %q", choice)
		assert.Equal(t, model.ModeRandom, c.State().Mode(), "choice %q", choice)
		assert.Contains(t, out.String(), "No rounds played.")
	}
}

func TestConsoleWarnsOnUnrecognizedModeChoice(t *testing.T) {
	tests := map[string]bool{
		"42":  true,
		"0":   true,
		"-1":  true,
		"abc": true,
		"1":   false,
		"3":   false,
	}
	for choice, warned := range tests {
		var logs bytes.Buffer
		c := NewConsole(Options{
			In:        strings.NewReader(choice + "\n"),
			Out:       io.Discard,
			Generator: generator.NewSeeded(testSeed),
			Clock:     clock.NewMock(),
			Logger:    log.New(&logs),
		})
		require.NoError(t, c.Run(), "choice %q", choice)
		assert.Equal(t, warned, strings.Contains(logs.String(), "unrecognized mode choice"), "choice %q", choice)
	}
}

func TestConsoleEndsOnClosedInput(t *testing.T) {
	c, out := newTestConsole("", model.ModeUnset)
	require.NoError(t, c.Run())
	assert.Contains(t, out.String(), "Thanks for playing!")

	oracle := generator.NewSeeded(testSeed)
	answer := oracle.Generate(model.ModeAdd).Answer()
	c, _ = newTestConsole(fmt.Sprintf("%d %d", answer.Hour, answer.Minute), model.ModeAdd)
	require.NoError(t, c.Run())
	assert.Equal(t, 1, c.State().Summary().Correct)
}

func TestConsoleRejectsMalformedNumber(t *testing.T) {
	c, out := newTestConsole("1\nten\n", model.ModeUnset)
	err := c.Run()
	require.ErrorIs(t, err, ErrMalformedNumber)
	assert.Contains(t, err.Error(), `invalid hour "ten"`)
	assert.NotContains(t, out.String(), "Thanks for playing!")

	c, _ = newTestConsole("3\n1.5\n", model.ModeAdd)
	require.ErrorIs(t, c.Run(), ErrMalformedNumber)
}

func TestConsoleAnyOtherReplyEndsSession(t *testing.T) {
	for _, reply := range []string{"n", "yes", "N", "1"} {
		c, _ := newTestConsole("0 0 "+reply+" 0 0", model.ModeAdd)
		require.NoError(t, c.Run())
		assert.Equal(t, 1, c.State().Summary().Rounds, "reply %q", reply)
	}
}

type tickingReader struct {
	lines []string
	mock  *clock.Mock
	step  time.Duration
}

func (r *tickingReader) Read(p []byte) (int, error) {
	if len(r.lines) == 0 {
		return 0, io.EOF
	}
	r.mock.Add(r.step)
	n := copy(p, r.lines[0])
	r.lines[0] = r.lines[0][n:]
	if r.lines[0] == "" {
		r.lines = r.lines[1:]
	}
	return n, nil
}

func TestConsoleMeasuresAnswerTime(t *testing.T) {
	oracle := generator.NewSeeded(testSeed)
	answer := oracle.Generate(model.ModeSubtract).Answer()

	mock := clock.NewMock()
	reader := &tickingReader{
		lines: []string{"2\n", fmt.Sprintf("%d\n", answer.Hour), fmt.Sprintf("%d\n", answer.Minute), "n\n"},
		mock:  mock,
		step:  3 * time.Second,
	}
	var out bytes.Buffer
	c := NewConsole(Options{
		In:        reader,
		Out:       &out,
		Generator: generator.NewSeeded(testSeed),
		Clock:     mock,
	})
	require.NoError(t, c.Run())

	summary := c.State().Summary()
	assert.Equal(t, 1, summary.Correct)
	assert.Equal(t, 6*time.Second, summary.TotalAnswerTime)
	assert.Contains(t, out.String(), "6s")
}

func TestQuestionText(t *testing.T) {
	q := generator.NewQuestion(clocktime.TimeOfDay{Hour: 3, Minute: 15}, clocktime.Offset{Hours: 1, Minutes: 45}, true)
	assert.Equal(t, "Question: what time is 1h 45m after 03:15?", QuestionText(q))
	q = generator.NewQuestion(clocktime.TimeOfDay{Hour: 0, Minute: 30}, clocktime.Offset{Hours: 1}, false)
	assert.Equal(t, "Question: what time is 1h before 00:30?", QuestionText(q))
}
