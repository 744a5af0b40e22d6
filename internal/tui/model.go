package tui

import (
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/glitchrain/internal/engine"
)

var bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))

const pausedBanner = "*PAUSED* (press [SPACE] to resume, [q] to quit)"

// TermSize is the atomic size cell bridging Bubble Tea's resize messages to
// the engine's per-tick size query.
type TermSize struct {
	w, h atomic.Int32
}

func (t *TermSize) Set(width, height int) {
	t.w.Store(int32(width))
	t.h.Store(int32(height))
}

// Size implements engine.SizeFunc. Before the first WindowSizeMsg arrives
// it reports ErrNoSize and the engine skips those ticks.
func (t *TermSize) Size() (int, int, error) {
	w, h := int(t.w.Load()), int(t.h.Load())
	if w <= 0 || h <= 0 {
		return 0, 0, engine.ErrNoSize
	}
	return w, h, nil
}

// FrameMsg carries one rendered frame from the printer loop.
type FrameMsg string

// PrinterDoneMsg arrives once the printer loop has fully stopped; it is the
// only path into tea.Quit, so the terminal is never restored while the
// printer might still be drawing.
type PrinterDoneMsg struct{}

// Model is the input half of the program: it forwards key and resize events
// to the engine's control flags and displays whatever frame the printer
// published last.
type Model struct {
	eng    *engine.Engine
	size   *TermSize
	frame  string
	paused bool
}

func NewModel(eng *engine.Engine, size *TermSize) Model {
	return Model{eng: eng, size: size}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForFrame(m.eng.Frames()), waitForDone(m.eng.Done()))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "Q", "ctrl+c":
			m.eng.Stop()
		case " ":
			m.paused = m.eng.TogglePause()
		}
		// every other key is deliberately inert
		return m, nil
	case tea.WindowSizeMsg:
		m.size.Set(msg.Width, msg.Height)
		return m, nil
	case FrameMsg:
		m.frame = string(msg)
		return m, waitForFrame(m.eng.Frames())
	case PrinterDoneMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.frame == "" {
		return ""
	}
	if !m.paused {
		return m.frame
	}
	// overlay the status line at the top left, leaving the rain beneath
	rest := ""
	if i := strings.IndexByte(m.frame, '\n'); i >= 0 {
		rest = m.frame[i:]
	}
	return bannerStyle.Render(pausedBanner) + rest
}

func waitForFrame(frames <-chan string) tea.Cmd {
	return func() tea.Msg {
		return FrameMsg(<-frames)
	}
}

func waitForDone(done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-done
		return PrinterDoneMsg{}
	}
}
