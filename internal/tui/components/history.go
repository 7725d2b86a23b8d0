package components

import (
	"fmt"
	"time"

	"github.com/allbin/go-ka3005p"
	"github.com/allbin/go-ka3005p/internal/tui/colors"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Sample is one status poll
type Sample struct {
	Timestamp time.Time
	Status    ka3005p.Status
}

const defaultHistoryLimit = 200

// History is a scrolling table of recent samples, newest first
type History struct {
	table   table.Model
	samples []Sample
	limit   int
}

func NewHistory(width, height int) *History {
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(historyColumns(width)),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colors.Subtext0).
		BorderBottom(true).
		Bold(true).
		Foreground(colors.Text)
	s.Selected = s.Selected.
		Foreground(colors.Text).
		Bold(false)
	t.SetStyles(s)

	return &History{table: t, limit: defaultHistoryLimit}
}

func historyColumns(width int) []table.Column {
	timeWidth := 12
	fixed := 8 // mode and output
	remaining := width - timeWidth - 2*fixed - 10
	value := remaining / 2
	if value < 10 {
		value = 10
	}
	return []table.Column{
		{Title: "Time", Width: timeWidth},
		{Title: "Voltage", Width: value},
		{Title: "Current", Width: value},
		{Title: "Mode", Width: fixed},
		{Title: "Output", Width: fixed},
	}
}

func (h *History) SetSize(width, height int) {
	if height < 3 {
		height = 3
	}
	h.table.SetColumns(historyColumns(width))
	h.table.SetHeight(height)
	h.table.SetWidth(width)
}

// Add records a sample, dropping the oldest beyond the limit
func (h *History) Add(sample Sample) {
	h.samples = append([]Sample{sample}, h.samples...)
	if len(h.samples) > h.limit {
		h.samples = h.samples[:h.limit]
	}
	h.refresh()
}

func (h *History) Len() int {
	return len(h.samples)
}

func (h *History) refresh() {
	rows := make([]table.Row, len(h.samples))
	for i, s := range h.samples {
		rows[i] = table.Row{
			s.Timestamp.Format("15:04:05.000"),
			FormatVolts(s.Status.Voltage),
			FormatAmps(s.Status.Current),
			s.Status.Flags.Channel1().String(),
			fmt.Sprint(s.Status.Flags.Output()),
		}
	}
	h.table.SetRows(rows)
}

func (h *History) View() string {
	return h.table.View()
}
