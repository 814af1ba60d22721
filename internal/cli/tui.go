package cli

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/surfplot/surfplot/pkg/layout"
	"github.com/surfplot/surfplot/pkg/surface"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// LayoutModel - Interactive layout explorer
// =============================================================================

// LayoutModel is the bubbletea model for exploring layouts interactively.
// Every view is listed; enabled views take part in the layout in list
// order.
type LayoutModel struct {
	Left, Right bool
	Mode        layout.Mode
	Flip        bool
	Views       []surface.View
	Enabled     []bool
	Cursor      int
	Done        bool // confirmed with enter
}

// NewLayoutModel creates a layout model with the given views enabled, in
// order, followed by the remaining views disabled.
func NewLayoutModel(left, right bool, mode layout.Mode, views []surface.View, flip bool) LayoutModel {
	m := LayoutModel{Left: left, Right: right, Mode: mode, Flip: flip}
	for _, v := range views {
		m.Views = append(m.Views, v)
		m.Enabled = append(m.Enabled, true)
	}
	for _, v := range surface.Views {
		if !slices.Contains(views, v) {
			m.Views = append(m.Views, v)
			m.Enabled = append(m.Enabled, false)
		}
	}
	return m
}

// SelectedViews returns the enabled views in list order.
func (m LayoutModel) SelectedViews() []surface.View {
	var out []surface.View
	for i, v := range m.Views {
		if m.Enabled[i] {
			out = append(out, v)
		}
	}
	return out
}

// Layout computes the layout for the current selection.
func (m LayoutModel) Layout() (layout.Layout, error) {
	l, err := layout.Compute(m.Left, m.Right, m.Mode, m.SelectedViews())
	if err != nil {
		return layout.Layout{}, err
	}
	if m.Flip && m.Left && m.Right {
		l = l.Flip()
	}
	return l, nil
}

// Command returns the layout command line reproducing the selection.
func (m LayoutModel) Command() string {
	var hemis []string
	if m.Left {
		hemis = append(hemis, string(surface.Left))
	}
	if m.Right {
		hemis = append(hemis, string(surface.Right))
	}
	var views []string
	for _, v := range m.SelectedViews() {
		views = append(views, string(v))
	}
	parts := []string{appName, "layout",
		"--hemispheres", strings.Join(hemis, ","),
		"--layout", string(m.Mode),
		"--views", strings.Join(views, ","),
	}
	if m.Flip {
		parts = append(parts, "--flip")
	}
	return strings.Join(parts, " ")
}

func (m LayoutModel) Init() tea.Cmd {
	return nil
}

func (m LayoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		if _, err := m.Layout(); err != nil {
			return m, nil
		}
		m.Done = true
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Views)-1 {
			m.Cursor++
		}
	case "K":
		if m.Cursor > 0 {
			m.swap(m.Cursor, m.Cursor-1)
			m.Cursor--
		}
	case "J":
		if m.Cursor < len(m.Views)-1 {
			m.swap(m.Cursor, m.Cursor+1)
			m.Cursor++
		}
	case " ":
		m.Enabled = append([]bool(nil), m.Enabled...)
		m.Enabled[m.Cursor] = !m.Enabled[m.Cursor]
	case "tab", "m":
		m.Mode = nextMode(m.Mode)
	case "f":
		m.Flip = !m.Flip
	case "1":
		m.Left = !m.Left
	case "2":
		m.Right = !m.Right
	}
	return m, nil
}

// swap exchanges two list entries. The slices are copied first so that
// earlier model values stay untouched.
func (m *LayoutModel) swap(i, j int) {
	m.Views = append([]surface.View(nil), m.Views...)
	m.Enabled = append([]bool(nil), m.Enabled...)
	m.Views[i], m.Views[j] = m.Views[j], m.Views[i]
	m.Enabled[i], m.Enabled[j] = m.Enabled[j], m.Enabled[i]
}

func nextMode(mode layout.Mode) layout.Mode {
	for i, m := range layout.Modes {
		if m == mode {
			return layout.Modes[(i+1)%len(layout.Modes)]
		}
	}
	return layout.Modes[0]
}

func (m LayoutModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Layout Explorer"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ move  space toggle  J/K reorder  tab mode  f flip  1/2 hemispheres  ⏎ done  q quit"))
	b.WriteString("\n\n")

	for i, v := range m.Views {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		check := "[ ] "
		if m.Enabled[i] {
			check = "[x] "
		} else if i != m.Cursor {
			style = listDimStyle
		}
		b.WriteString(style.Render(cursor + check + string(v)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	onOff := func(name string, on bool) string {
		if on {
			return listSelectedStyle.Render(name)
		}
		return listDimStyle.Render(name)
	}
	b.WriteString(listDimStyle.Render("mode ") + listNormalStyle.Render(string(m.Mode)) + "  ")
	b.WriteString(onOff("left", m.Left) + " " + onOff("right", m.Right) + "  " + onOff("flip", m.Flip))
	b.WriteString("\n\n")

	l, err := m.Layout()
	if err != nil {
		b.WriteString(listErrorStyle.Render(iconError + " " + err.Error()))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(layoutTable(l))
	b.WriteString("\n")
	return b.String()
}
