package tui

import "github.com/mattn/go-runewidth"

// wrapText breaks text into lines no wider than width display cells,
// preferring to break at spaces.
func wrapText(text string, width int) []string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return []string{text}
	}
	var lines []string
	runes := []rune(text)
	line := make([]rune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		r := runes[i]
		w := runewidth.RuneWidth(r)
		if lineWidth+w > width && len(line) > 0 {
			switch {
			case r == ' ':
				lines = append(lines, string(line))
				line = line[:0]
				i++
			case lastSpaceIdx >= 0:
				lines = append(lines, string(line[:lastSpaceIdx]))
				line = append([]rune{}, line[lastSpaceIdx+1:]...)
			default:
				lines = append(lines, string(line))
				line = line[:0]
			}
			lineWidth = runewidth.StringWidth(string(line))
			lastSpaceIdx = lastSpaceIndex(line)
			continue
		}
		line = append(line, r)
		lineWidth += w
		if r == ' ' {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	return append(lines, string(line))
}

func lastSpaceIndex(line []rune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i] == ' ' {
			return i
		}
	}
	return -1
}
