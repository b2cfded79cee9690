package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/germanamz/bullcow/pkg/bullcow"
	"github.com/germanamz/bullcow/pkg/console"
)

// gameModel is the root bubbletea model. It owns the console and engine and
// forwards every key press to the console; bubbletea serializes messages, so
// neither needs locking.
type gameModel struct {
	console *console.Console
	engine  *bullcow.Engine
	width   int
	height  int
}

func newGameModel(s *session) gameModel {
	return gameModel{
		console: s.console,
		engine:  s.engine,
	}
}

func (m gameModel) Init() tea.Cmd {
	return nil
}

func (m gameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}

		for _, ev := range translateKey(msg) {
			m.console.HandleKey(ev.key, ev.shift, false)
			if m.engine.Exited() {
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

// chromeRows is the height taken by the frame border and the help line.
const chromeRows = 3

func (m gameModel) View() string {
	if m.engine.Exited() {
		return ""
	}

	screen := renderRichText(m.console.Render())

	rows := m.console.MaxLines()
	if m.height > 0 {
		rows = min(rows, m.height-chromeRows)
	}
	screen = lastLines(screen, max(rows, 1))

	frame := frameStyle
	if m.width > 4 {
		frame = frame.Width(m.width - 2)
	}

	return frame.Render(screen) + "\n" + dimStyle.Render(" ↑/↓ select · enter confirm · "+keys.Quit.Help().Key+" quit")
}

// lastLines keeps the bottom n lines of s. The logo expands to several lines
// after rendering, so a frame can outgrow the console's own bound.
func lastLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[len(lines)-n:], "\n")
}
