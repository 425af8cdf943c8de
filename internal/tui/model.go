// Package tui provides the Bubble Tea quiz interface.
package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/verte-zerg/timequiz/internal/clocktime"
	"github.com/verte-zerg/timequiz/internal/generator"
	"github.com/verte-zerg/timequiz/internal/model"
	"github.com/verte-zerg/timequiz/internal/quiz"
	"github.com/verte-zerg/timequiz/internal/stats"
	"github.com/verte-zerg/timequiz/internal/theme"
)

type phase int

const (
	phaseMode phase = iota
	phaseAnswer
	phaseResult
)

const inputHint = "Enter the answer as H:M, for example 13:05"

// Model implements the Bubble Tea quiz UI.
type Model struct {
	gen    *generator.Generator
	clock  clock.Clock
	logger *log.Logger
	state  *quiz.State
	input  textinput.Model

	phase       phase
	question    generator.Question
	askedAt     time.Time
	lastAnswer  clocktime.TimeOfDay
	lastCorrect bool
	inputErr    string

	width  int
	height int
}

// NewModel constructs a quiz TUI model. With ModeUnset the user picks a mode
// on the first screen.
func NewModel(mode model.Mode, gen *generator.Generator, clk clock.Clock, logger *log.Logger) *Model {
	if gen == nil {
		gen = generator.New()
	}
	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	input := textinput.New()
	input.Placeholder = "HH:MM"
	input.Prompt = "› "
	input.CharLimit = 16
	input.Width = 16

	m := &Model{
		gen:    gen,
		clock:  clk,
		logger: logger,
		state:  quiz.NewState(model.ModeUnset),
		input:  input,
		phase:  phaseMode,
	}
	if mode != model.ModeUnset {
		m.start(mode)
	}
	return m
}

// Summary returns the tallies of the session so far.
func (m *Model) Summary() model.SessionSummary {
	return m.state.Summary()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch m.phase {
		case phaseMode:
			m.start(modeForKey(msg.String()))
			return m, textinput.Blink
		case phaseAnswer:
			if msg.Type == tea.KeyEnter {
				m.submit()
				return m, nil
			}
		case phaseResult:
			if strings.EqualFold(msg.String(), "y") {
				m.nextQuestion()
				return m, textinput.Blink
			}
			return m, tea.Quit
		}
	}
	if m.phase != phaseAnswer {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	contentWidth := int(float64(m.width) * 0.70)
	lines := m.contentLines(contentWidth)
	content := strings.Join(lines, "\n")
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return content + "\n\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) contentLines(width int) []string {
	var lines []string
	add := func(style lipgloss.Style, text string) {
		for _, line := range wrapText(text, width) {
			lines = append(lines, style.Render(line))
		}
	}

	add(theme.Title, "🕒 Time quiz")
	lines = append(lines, "")
	switch m.phase {
	case phaseMode:
		add(theme.Question, "Choose a mode:")
		add(theme.Question, "1  Addition only")
		add(theme.Question, "2  Subtraction only")
		add(theme.Question, "3  Random (any other key)")
	case phaseAnswer:
		add(theme.Question, quiz.QuestionText(m.question))
		lines = append(lines, "", m.input.View())
		if m.inputErr != "" {
			add(theme.Failure, m.inputErr)
		}
		add(theme.Muted, "enter to answer · esc to quit")
	case phaseResult:
		add(theme.Question, quiz.QuestionText(m.question))
		lines = append(lines, "")
		if m.lastCorrect {
			add(theme.Success, fmt.Sprintf("✅ Correct! %s is right.", m.lastAnswer))
		} else {
			add(theme.Failure, fmt.Sprintf("❌ Incorrect. You said %s, the answer was %s.", m.lastAnswer, m.question.Answer()))
		}
		add(theme.Accent, fmt.Sprintf("🌟 Streak: %d", m.state.Streak()))
		lines = append(lines, "")
		add(theme.Muted, "Next question? (y/n)")
	}
	return lines
}

func (m *Model) renderFooter() string {
	s := m.state.Summary()
	segments := []string{fmt.Sprintf("Mode %s", s.Mode)}
	segments = append(segments, fmt.Sprintf("Streak %d", s.Streak), fmt.Sprintf("Best %d", s.BestStreak))
	if s.Rounds > 0 {
		segments = append(segments, fmt.Sprintf("Accuracy %.1f%%", stats.Accuracy(s.Correct, s.Incorrect)*100))
	}
	return theme.Footer.Render(strings.Join(segments, " · "))
}

func (m *Model) start(mode model.Mode) {
	m.state = quiz.NewState(mode)
	m.logger.Debug("mode selected", "mode", mode)
	m.nextQuestion()
}

func (m *Model) nextQuestion() {
	m.question = m.gen.Generate(m.state.Mode())
	m.askedAt = m.clock.Now()
	m.phase = phaseAnswer
	m.inputErr = ""
	m.input.Reset()
	m.input.Focus()
	m.logger.Debug("question generated", "base", m.question.Base(), "offset", m.question.Offset(), "addition", m.question.IsAddition())
}

func (m *Model) submit() {
	answer, err := quiz.ParseAnswer(m.input.Value())
	if err != nil {
		m.logger.Debug("rejected answer", "input", m.input.Value(), "err", err)
		m.inputErr = inputHint
		return
	}
	elapsed := m.clock.Since(m.askedAt)
	correct := clocktime.IsCorrect(answer, m.question.Answer())
	m.state.Record(correct, elapsed)
	m.logger.Debug("answer evaluated", "answer", answer, "expected", m.question.Answer(), "correct", correct, "elapsed", elapsed)

	m.lastAnswer = answer
	m.lastCorrect = correct
	m.inputErr = ""
	m.phase = phaseResult
	m.input.Blur()
}

func modeForKey(key string) model.Mode {
	choice, err := strconv.Atoi(key)
	if err != nil {
		return model.ModeRandom
	}
	return model.ModeFromChoice(choice)
}
