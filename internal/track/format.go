package track

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// DateLayout is the textual day-month-year format accepted on the command
// line for range bounds, e.g. "31-08-2026".
const DateLayout = "02-01-2006"

// ParseDate parses a dd-mm-yyyy date in the local zone. The keyword "today"
// resolves to the start of the current day.
func ParseDate(text string, now time.Time) (time.Time, error) {
	if text == "today" {
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.Local), nil
	}
	t, err := time.ParseInLocation(DateLayout, text, time.Local)
	if err != nil {
		return time.Time{}, NewValidationError(fmt.Sprintf("invalid date %q: expected dd-mm-yyyy or \"today\"", text))
	}
	return t, nil
}

// FormatMinutes renders a whole-minute duration as "H hours M minutes",
// omitting the hours clause when it would be zero.
func FormatMinutes(minutes int64) string {
	hours := minutes / 60
	rest := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%d %s", rest, plural(rest, "minute"))
	}
	return fmt.Sprintf("%d %s %d %s", hours, plural(hours, "hour"), rest, plural(rest, "minute"))
}

func plural(n int64, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

// Wrap breaks text into lines of at most maxWidth runes, splitting at the
// last whitespace run before the limit. A single word longer than maxWidth
// is hard-split mid-word. Existing newlines are treated as ordinary
// whitespace. maxWidth values below 1 return the text as a single line.
func Wrap(text string, maxWidth int) []string {
	if maxWidth < 1 {
		return []string{text}
	}

	words := strings.FieldsFunc(text, unicode.IsSpace)
	if len(words) == 0 {
		return nil
	}

	lines := []string{}
	current := ""
	for _, word := range words {
		for len([]rune(word)) > maxWidth {
			// Hard split: flush the current line, then take full-width
			// chunks off the front of the oversized word.
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			runes := []rune(word)
			lines = append(lines, string(runes[:maxWidth]))
			word = string(runes[maxWidth:])
		}
		switch {
		case current == "":
			current = word
		case len([]rune(current))+1+len([]rune(word)) <= maxWidth:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
