package quiz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/log"

	"github.com/verte-zerg/timequiz/internal/clocktime"
	"github.com/verte-zerg/timequiz/internal/generator"
	"github.com/verte-zerg/timequiz/internal/model"
	"github.com/verte-zerg/timequiz/internal/stats"
	"github.com/verte-zerg/timequiz/internal/theme"
)

var errInputClosed = errors.New("input closed")

// Options configures a Console session. Zero values get defaults.
type Options struct {
	In        io.Reader
	Out       io.Writer
	Mode      model.Mode
	Generator *generator.Generator
	Clock     clock.Clock
	Logger    *log.Logger
}

// Console runs a quiz over whitespace-delimited tokens on a reader.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
	gen     *generator.Generator
	clock   clock.Clock
	logger  *log.Logger
	preset  model.Mode
	state   *State
	werr    error
}

// NewConsole builds a Console from opts.
func NewConsole(opts Options) *Console {
	scanner := bufio.NewScanner(opts.In)
	scanner.Split(bufio.ScanWords)
	c := &Console{
		scanner: scanner,
		out:     opts.Out,
		gen:     opts.Generator,
		clock:   opts.Clock,
		logger:  opts.Logger,
		preset:  opts.Mode,
		state:   NewState(opts.Mode),
	}
	if c.out == nil {
		c.out = io.Discard
	}
	if c.gen == nil {
		c.gen = generator.New()
	}
	if c.clock == nil {
		c.clock = clock.New()
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	return c
}

// State returns the session score.
func (c *Console) State() *State {
	return c.state
}

// Run plays rounds until the user declines to continue or input ends.
func (c *Console) Run() error {
	c.printf("%s\n", theme.Title.Render("🕒 Welcome to the time quiz!"))

	mode, err := c.selectMode()
	if err != nil {
		return c.finish(err)
	}
	c.state = NewState(mode)

	for {
		if err := c.playRound(); err != nil {
			return c.finish(err)
		}
		next, err := c.askContinue()
		if err != nil {
			return c.finish(err)
		}
		if !next {
			break
		}
	}
	return c.finish(nil)
}

func (c *Console) selectMode() (model.Mode, error) {
	if c.preset != model.ModeUnset {
		c.logger.Debug("mode preset", "mode", c.preset)
		return c.preset, nil
	}
	c.printf("Choose a mode:\n1. Addition only\n2. Subtraction only\n3. Random\nEnter a number: ")
	token, err := c.readToken()
	if err != nil {
		return model.ModeUnset, err
	}
	choice, err := strconv.Atoi(token)
	if err != nil || choice < 1 || choice > 3 {
		c.logger.Warn("unrecognized mode choice, using random", "input", token)
		return model.ModeRandom, nil
	}
	mode := model.ModeFromChoice(choice)
	c.logger.Debug("mode selected", "choice", choice, "mode", mode)
	return mode, nil
}

func (c *Console) playRound() error {
	q := c.gen.Generate(c.state.Mode())
	c.logger.Debug("question generated", "base", q.Base(), "offset", q.Offset(), "addition", q.IsAddition())

	c.printf("\n🕒 %s\n", theme.Question.Render(QuestionText(q)))
	started := c.clock.Now()

	c.printf("Your answer:\nHour: ")
	hour, err := c.readNumber("hour")
	if err != nil {
		return err
	}
	c.printf("Minute: ")
	minute, err := c.readNumber("minute")
	if err != nil {
		return err
	}
	elapsed := c.clock.Since(started)

	user := clocktime.Normalize(hour, minute)
	correct := clocktime.IsCorrect(user, q.Answer())
	c.state.Record(correct, elapsed)
	c.logger.Debug("answer evaluated", "answer", user, "expected", q.Answer(), "correct", correct, "elapsed", elapsed)

	if correct {
		c.printf("%s\n", theme.Success.Render("✅ Correct! Well done!"))
	} else {
		c.printf("%s\n", theme.Failure.Render(fmt.Sprintf("❌ Incorrect. The answer was %s.", q.Answer())))
	}
	c.printf("🌟 Streak: %d\n", c.state.Streak())
	return nil
}

func (c *Console) askContinue() (bool, error) {
	c.printf("\nNext question? (y/n): ")
	token, err := c.readToken()
	if errors.Is(err, errInputClosed) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.EqualFold(token, "y"), nil
}

func (c *Console) finish(err error) error {
	if errors.Is(err, errInputClosed) {
		c.logger.Info("input closed, ending session")
		c.printf("\n")
		err = nil
	}
	if err != nil {
		return err
	}
	c.printf("%s\n\n", theme.Accent.Render("🦊 Thanks for playing!"))
	if c.werr == nil {
		c.werr = stats.RenderSummary(c.out, c.state.Summary())
	}
	if c.werr != nil {
		return fmt.Errorf("failed to write output: %w", c.werr)
	}
	return nil
}

func (c *Console) readNumber(field string) (int, error) {
	token, err := c.readToken()
	if err != nil {
		return 0, err
	}
	return ParseNumber(field, token)
}

func (c *Console) readToken() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", errInputClosed
	}
	return c.scanner.Text(), nil
}

// printf writes to the output and keeps the first write error for Run.
func (c *Console) printf(format string, args ...any) {
	if c.werr != nil {
		return
	}
	if _, err := fmt.Fprintf(c.out, format, args...); err != nil {
		c.werr = err
	}
}

// QuestionText renders the prompt for q.
func QuestionText(q generator.Question) string {
	direction := "before"
	if q.IsAddition() {
		direction = "after"
	}
	return fmt.Sprintf("Question: what time is %s %s %s?", q.Offset(), direction, q.Base())
}
