package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/roach88/wtt/internal/track"
)

// timestampLayout is how session instants appear in tables.
const timestampLayout = "02-01-2006 15:04"

// sessionView is the JSON payload for a single session.
type sessionView struct {
	ID      string   `json:"id"`
	StartAt int64    `json:"start_at"`
	EndAt   *int64   `json:"end_at,omitempty"`
	Minutes int64    `json:"minutes"`
	Note    string   `json:"note,omitempty"`
	Labels  []string `json:"labels"`
}

func viewOf(sess track.Session, now time.Time) sessionView {
	v := sessionView{
		ID:      sess.ID,
		StartAt: sess.StartAt.Unix(),
		Minutes: sess.Minutes(now),
		Note:    sess.Note,
		Labels:  sess.Labels,
	}
	if v.Labels == nil {
		v.Labels = []string{}
	}
	if sess.EndAt != nil {
		end := sess.EndAt.Unix()
		v.EndAt = &end
	}
	return v
}

// renderSessionsTable lays out sessions as a plain text table. The note
// column is wrapped to noteWidth; continuation lines leave the other
// columns blank. Durations of running sessions are measured against now.
func renderSessionsTable(sessions []track.Session, noteWidth int, now time.Time) string {
	headers := []string{"ID", "STARTED", "ENDED", "DURATION", "LABELS", "NOTE"}
	rows := make([][]string, 0, len(sessions))
	for i := range sessions {
		sess := &sessions[i]
		ended := "running"
		if sess.EndAt != nil {
			ended = sess.EndAt.Format(timestampLayout)
		}
		rows = append(rows, []string{
			sess.ID,
			sess.StartAt.Format(timestampLayout),
			ended,
			track.FormatMinutes(sess.Minutes(now)),
			strings.Join(sess.Labels, ","),
			sess.Note,
		})
	}

	// Column widths from content. The note column is last and written raw,
	// so it needs no width of its own.
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	noteCol := len(headers) - 1
	for _, row := range rows {
		for i, cell := range row[:noteCol] {
			if w := len([]rune(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		var line strings.Builder
		for i, cell := range cells {
			if i > 0 {
				line.WriteString("  ")
			}
			if i == len(cells)-1 {
				line.WriteString(cell)
			} else {
				fmt.Fprintf(&line, "%-*s", widths[i], cell)
			}
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}

	writeRow(headers)
	for _, row := range rows {
		noteLines := track.Wrap(row[noteCol], noteWidth)
		if len(noteLines) == 0 {
			noteLines = []string{""}
		}
		first := append(row[:noteCol:noteCol], noteLines[0])
		writeRow(first)
		for _, line := range noteLines[1:] {
			cont := make([]string, len(headers))
			cont[noteCol] = line
			writeRow(cont)
		}
	}
	return b.String()
}
