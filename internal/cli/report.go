package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/ngmap/core"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorGray  = lipgloss.Color("245")
	colorWhite = lipgloss.Color("255")
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	keyWidth    = 12
)

// Report summarizes a map: its dimension, its dart count and the number of
// i-cells for every i.
type Report struct {
	Title     string
	Dimension int
	Darts     int
	Cells     []int
	Valid     error
}

// newReport collects the statistics of m.
func newReport[A any](title string, m *core.Map[A]) (Report, error) {
	r := Report{
		Title:     title,
		Dimension: m.Dimension(),
		Darts:     m.Len(),
		Cells:     make([]int, m.Dimension()+1),
		Valid:     m.Validate(),
	}
	for i := range r.Cells {
		n, err := m.CellCount(i)
		if err != nil {
			return Report{}, fmt.Errorf("count %d-cells: %w", i, err)
		}
		r.Cells[i] = n
	}
	return r, nil
}

// Render writes the report to w, one key/value per line. Colors are only
// emitted when w is a terminal.
func (r Report) Render(w io.Writer) {
	re := lipgloss.NewRenderer(w)
	title := re.NewStyle().Bold(true).Foreground(colorCyan)
	key := re.NewStyle().Foreground(colorGray).Width(keyWidth)
	value := re.NewStyle().Foreground(colorWhite)

	line := func(k, v string) {
		fmt.Fprintln(w, key.Render(k)+" "+value.Render(v))
	}

	fmt.Fprintln(w, title.Render(r.Title))
	line("dimension", strconv.Itoa(r.Dimension))
	line("darts", strconv.Itoa(r.Darts))
	for i, n := range r.Cells {
		line(strconv.Itoa(i)+"-cells", strconv.Itoa(n))
	}
	if r.Valid != nil {
		fmt.Fprintln(w, re.NewStyle().Foreground(colorRed).Render(iconError)+" "+r.Valid.Error())
		return
	}
	fmt.Fprintln(w, re.NewStyle().Foreground(colorGreen).Render(iconSuccess)+" valid")
}
