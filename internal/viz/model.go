package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/wagnandr/hemoview/internal/config"
	"github.com/wagnandr/hemoview/internal/dataset"
	"github.com/wagnandr/hemoview/internal/player"
)

type TickMsg time.Time

// Model plays vessel datasets as columns of terminal charts, one column
// per vessel with flow, pressure and concentration-ratio panels.
type Model struct {
	sets     []*dataset.Dataset
	times    []float64
	seq      *player.Sequencer
	frame    int
	interval time.Duration
	plotW    int
	plotH    int
}

// NewModel builds the playback UI over datasets sharing one time window.
func NewModel(sets []*dataset.Dataset, times []float64, cfg *config.Config) Model {
	return Model{
		sets:     sets,
		times:    times,
		seq:      player.New(len(times)),
		interval: cfg.Interval(),
		plotW:    cfg.Plot.Width,
		plotH:    cfg.Plot.Height,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances playback on each tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.seq.Toggle()
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.seq.Toggle()
		}
	case TickMsg:
		m.frame = m.seq.Advance()
		return m, m.tick()
	}
	return m, nil
}

// View renders the header, one chart column per vessel and the key hints.
func (m Model) View() string {
	var b strings.Builder

	if len(m.times) == 0 {
		b.WriteString(HeaderStyle.Render("hemoview") + "\n\n")
		b.WriteString(Subtle.Render("nothing to play: start time is past the end of the data") + "\n\n")
		b.WriteString(KeyHint.Render("Q:Quit"))
		return b.String()
	}

	status := StatusRunning.Render("RUNNING")
	if !m.seq.Running() {
		status = StatusPaused.Render("PAUSED")
	}
	header := HeaderStyle.Render(fmt.Sprintf("hemoview  t = %.4f", m.times[m.frame]))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header, "  ", status) + "\n\n")

	cols := make([]string, len(m.sets))
	for i, ds := range m.sets {
		cols[i] = m.column(ds)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	b.WriteString("\n" + KeyHint.Render("SP/Click:Pause  Q:Quit"))
	return b.String()
}

func (m Model) column(ds *dataset.Dataset) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		Subtle.Render(fmt.Sprintf("vessel %d", ds.ID)),
		m.panel(TitleFlow.Render("q"), ds.Q, false),
		m.panel(TitlePressure.Render("p"), ds.P, false),
		m.panel(TitleRatio.Render("c/a"), ds.CA, true),
	)
}

// panel charts one component row. Autoscaled panels let asciigraph fit
// the current frame; the ratio panel keeps the fixed [0, 1.05] axis.
func (m Model) panel(title string, data [][]float64, fixed bool) string {
	if data == nil {
		return PanelStyle.Render(title + "\n" + Subtle.Render("not available"))
	}

	opts := []asciigraph.Option{
		asciigraph.Height(m.plotH),
		asciigraph.Width(m.plotW),
	}
	if fixed {
		opts = append(opts, asciigraph.LowerBound(0), asciigraph.UpperBound(1.05))
	}

	chart := asciigraph.Plot(data[m.frame], opts...)
	return PanelStyle.Render(title + "\n" + chart)
}
