package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/verte-zerg/starletters/internal/model"
)

// Headers are the history table column titles.
var Headers = []string{"#", "Finished", "Duration", "Letters", "Categories", "Hugs", "Skipped"}

var headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)

// Rows converts journeys into table cells, one row per journey.
func Rows(journeys []model.Journey) [][]string {
	rows := make([][]string, 0, len(journeys))
	for _, j := range journeys {
		skipped := "no"
		if j.Skipped {
			skipped = "yes"
		}
		rows = append(rows, []string{
			strconv.FormatInt(j.ID, 10),
			j.FinishedAt.Local().Format("2006-01-02 15:04"),
			formatDuration(j.FinishedAt.Sub(j.StartedAt)),
			strconv.Itoa(j.LettersRead),
			strconv.Itoa(j.CategoriesCompleted),
			strconv.Itoa(j.Hugs),
			skipped,
		})
	}
	return rows
}

// Summary totals a set of journeys.
type Summary struct {
	Journeys int
	Complete int
	Hugs     int
}

// Summarize totals journeys; a journey is complete when it was not skipped.
func Summarize(journeys []model.Journey) Summary {
	var s Summary
	for _, j := range journeys {
		s.Journeys++
		if !j.Skipped {
			s.Complete++
		}
		s.Hugs += j.Hugs
	}
	return s
}

// WriteHistory prints journeys as a table followed by a summary line.
func WriteHistory(w io.Writer, journeys []model.Journey, forceColor bool) error {
	if len(journeys) == 0 {
		_, err := fmt.Fprintln(w, "No journeys recorded yet.")
		return err
	}
	lines := formatTable(Headers, Rows(journeys), map[int]bool{0: true, 3: true, 4: true, 5: true})
	if shouldUseColor(w, forceColor) {
		lines[0] = headerStyle.Render(lines[0])
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	s := Summarize(journeys)
	_, err := fmt.Fprintf(w, "\n%d journeys, %d read to the end, %d hugs sent\n", s.Journeys, s.Complete, s.Hugs)
	return err
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	minutes := int(d / time.Minute)
	seconds := int((d % time.Minute) / time.Second)
	return fmt.Sprintf("%dm%02ds", minutes, seconds)
}

func shouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
