// Package console implements a virtual text terminal: a bounded scrollback
// buffer, an editable input line and an option menu, driven by discrete key
// events. The console never interprets the text it prints; rich-text spans
// inside printed lines are passed through to the rendered frame untouched.
//
// A Console is owned by a single event loop and is not safe for concurrent use.
package console

import (
	"fmt"
	"strings"
)

// Prompt prefixes the input line and every committed line in the scrollback.
const Prompt = "$> "

// DefaultMaxLines bounds the scrollback when WithMaxLines is not given.
const DefaultMaxLines = 20

// InputHandler receives each committed input line.
type InputHandler interface {
	OnInput(line string)
}

// InputHandlerFunc adapts a function to InputHandler.
type InputHandlerFunc func(line string)

// OnInput calls f(line).
func (f InputHandlerFunc) OnInput(line string) { f(line) }

// mode is either freeText or *menu. A menu always holds at least one option
// and a selection within range.
type mode interface {
	isMode()
}

type freeText struct{}

func (freeText) isMode() {}

type menu struct {
	options  []string
	selected int
}

func (*menu) isMode() {}

func (m *menu) move(delta int) {
	m.selected = clamp(m.selected+delta, 0, len(m.options)-1)
}

// Option configures a Console.
type Option func(*Console)

// WithMaxLines bounds the scrollback and the rendered frame. Values below one
// are ignored.
func WithMaxLines(n int) Option {
	return func(c *Console) {
		if n > 0 {
			c.maxLines = n
		}
	}
}

// WithMaxColumns wraps rendered lines at n display cells. Zero disables
// wrapping.
func WithMaxColumns(n int) Option {
	return func(c *Console) {
		if n >= 0 {
			c.maxColumns = n
		}
	}
}

// WithInputHandler sets the receiver of committed lines.
func WithInputHandler(h InputHandler) Option {
	return func(c *Console) { c.handler = h }
}

// WithRenderFunc registers a callback invoked with the fresh frame after every
// mutation and key event.
func WithRenderFunc(fn func(frame string)) Option {
	return func(c *Console) { c.onRender = fn }
}

// Console is a virtual terminal.
type Console struct {
	buffer     []string
	input      []rune
	mode       mode
	maxLines   int
	maxColumns int
	handler    InputHandler
	onRender   func(string)
}

// New creates an empty console in free-text mode.
func New(opts ...Option) *Console {
	c := &Console{
		mode:     freeText{},
		maxLines: DefaultMaxLines,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SetInputHandler replaces the receiver of committed lines. It exists so the
// console and its handler can be constructed in either order.
func (c *Console) SetInputHandler(h InputHandler) {
	c.handler = h
}

// Print appends text to the scrollback, one line per "\n"-separated segment.
func (c *Console) Print(text string) {
	c.appendLines(strings.Split(text, "\n")...)
	c.update()
}

// Printf is Print with fmt-style formatting.
func (c *Console) Printf(format string, args ...any) {
	c.Print(fmt.Sprintf(format, args...))
}

// Clear empties the scrollback.
func (c *Console) Clear() {
	c.buffer = c.buffer[:0]
	c.update()
}

// ShowMenu switches to menu mode with the given options. defaultIndex is
// clamped into range. An empty option list is ignored and leaves the current
// mode in place.
func (c *Console) ShowMenu(options []string, defaultIndex int) {
	if len(options) == 0 {
		return
	}

	opts := make([]string, len(options))
	copy(opts, options)

	c.mode = &menu{
		options:  opts,
		selected: clamp(defaultIndex, 0, len(opts)-1),
	}
	c.update()
}

// HandleKey processes one key event.
func (c *Console) HandleKey(k Key, shift, caps bool) {
	defer c.update()

	if m, ok := c.mode.(*menu); ok {
		switch k {
		case KeyEnter:
			c.input = []rune(m.options[m.selected])
			c.mode = freeText{}
			c.commit()
		case KeyUp, KeyW:
			m.move(-1)
		case KeyDown, KeyS:
			m.move(1)
		}
		return
	}

	switch k {
	case KeyEnter:
		c.commit()
	case KeyBackspace:
		if len(c.input) > 0 {
			c.input = c.input[:len(c.input)-1]
		}
	default:
		if r, ok := Char(k, shift, caps); ok {
			c.input = append(c.input, r)
		}
	}
}

// Submit commits line as if it had been typed and entered. A visible menu is
// dismissed first.
func (c *Console) Submit(line string) {
	c.mode = freeText{}
	c.input = []rune(line)
	c.commit()
	c.update()
}

func (c *Console) commit() {
	line := string(c.input)
	c.appendLines(Prompt + line)

	if c.handler != nil {
		c.handler.OnInput(line)
	}

	c.input = c.input[:0]
}

func (c *Console) appendLines(lines ...string) {
	c.buffer = append(c.buffer, lines...)
	if over := len(c.buffer) - c.maxLines; over > 0 {
		c.buffer = append(c.buffer[:0], c.buffer[over:]...)
	}
}

func (c *Console) update() {
	if c.onRender != nil {
		c.onRender(c.Render())
	}
}

// Render returns the current frame: the scrollback followed by either the
// menu or the prompt line, limited to the last MaxLines lines.
func (c *Console) Render() string {
	lines := make([]string, 0, len(c.buffer)+8)
	lines = append(lines, c.buffer...)

	if m, ok := c.mode.(*menu); ok {
		lines = append(lines, "")
		for i, opt := range m.options {
			lines = append(lines, menuLine(opt, i == m.selected))
		}
	} else {
		lines = append(lines, Prompt+string(c.input))
	}

	if c.maxColumns > 0 {
		lines = wrapLines(lines, c.maxColumns)
	}

	if over := len(lines) - c.maxLines; over > 0 {
		lines = lines[over:]
	}

	return strings.Join(lines, "\n")
}

func menuLine(label string, selected bool) string {
	if selected {
		return "\t<RichText.MenuItem.Selected>[ " + label + " ]</>"
	}
	return "\t<RichText.MenuItem>  " + label + "  </>"
}

// Lines returns a copy of the scrollback.
func (c *Console) Lines() []string {
	out := make([]string, len(c.buffer))
	copy(out, c.buffer)
	return out
}

// Input returns the line being composed.
func (c *Console) Input() string { return string(c.input) }

// Menu reports the visible options and selection, if a menu is shown.
func (c *Console) Menu() (options []string, selected int, ok bool) {
	m, ok := c.mode.(*menu)
	if !ok {
		return nil, 0, false
	}

	out := make([]string, len(m.options))
	copy(out, m.options)
	return out, m.selected, true
}

// InMenu reports whether a menu is shown.
func (c *Console) InMenu() bool {
	_, ok := c.mode.(*menu)
	return ok
}

// MaxLines returns the scrollback bound.
func (c *Console) MaxLines() int { return c.maxLines }

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
