// Package stats contains session metrics and the end-of-session report.
package stats

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/timequiz/internal/model"
)

const trendChars = " .:-=+*#%@"

// Accuracy returns the share of correct answers in [0,1].
func Accuracy(correct, incorrect int) float64 {
	total := correct + incorrect
	if total <= 0 {
		return 0
	}
	return float64(correct) / float64(total)
}

// AverageAnswerTime returns the mean time per round.
func AverageAnswerTime(total time.Duration, rounds int) time.Duration {
	if rounds <= 0 || total <= 0 {
		return 0
	}
	return total / time.Duration(rounds)
}

// RenderSummary prints a summary table for a session.
func RenderSummary(w io.Writer, s model.SessionSummary) error {
	if s.Rounds == 0 {
		_, err := fmt.Fprintln(w, "No rounds played.")
		return err
	}
	rows := []summaryRow{
		{"🎯 Mode", s.Mode.String()},
		{"📝 Rounds", strconv.Itoa(s.Rounds)},
		{"✅ Correct", strconv.Itoa(s.Correct)},
		{"❌ Incorrect", strconv.Itoa(s.Incorrect)},
		{"📈 Accuracy", fmt.Sprintf("%.1f%%", Accuracy(s.Correct, s.Incorrect)*100)},
		{"🌟 Streak", strconv.Itoa(s.Streak)},
		{"🏆 Best streak", strconv.Itoa(s.BestStreak)},
		{"⏱ Avg answer", formatDuration(AverageAnswerTime(s.TotalAnswerTime, s.Rounds))},
	}
	if len(s.AnswerTimes) > 1 {
		rows = append(rows, summaryRow{"📉 Answer times", "[" + AnswerTrend(s.AnswerTimes) + "]"})
	}
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	for _, line := range formatRows(rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// AnswerTrend draws one character per round, from blank for the fastest
// answer to '@' for the slowest.
func AnswerTrend(times []time.Duration) string {
	if len(times) == 0 {
		return ""
	}
	fastest, slowest := times[0], times[0]
	for _, d := range times[1:] {
		fastest = min(fastest, d)
		slowest = max(slowest, d)
	}
	span := slowest - fastest
	if span <= 0 {
		return strings.Repeat(string(trendChars[len(trendChars)/2]), len(times))
	}
	steps := time.Duration(len(trendChars) - 1)
	out := make([]byte, len(times))
	for i, d := range times {
		// Rounded to the nearest level.
		out[i] = trendChars[int(((d-fastest)*steps*2+span)/(2*span))]
	}
	return string(out)
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return d.Round(100 * time.Millisecond).String()
}
