// This file is part of rtinput.
//
// rtinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rtinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rtinput.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	gloss "github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/rtinput/userinput"
)

type styles struct {
	heading gloss.Style
	label   gloss.Style
	on      gloss.Style
	off     gloss.Style
	dim     gloss.Style
}

var colour = styles{
	heading: gloss.NewStyle().Bold(true).Foreground(gloss.Color("14")),
	label:   gloss.NewStyle().Foreground(gloss.Color("15")),
	on:      gloss.NewStyle().Foreground(gloss.Color("10")),
	off:     gloss.NewStyle().Foreground(gloss.Color("9")),
	dim:     gloss.NewStyle().Foreground(gloss.Color("#aaaaaa")),
}

var plain = styles{
	heading: gloss.NewStyle(),
	label:   gloss.NewStyle(),
	on:      gloss.NewStyle(),
	off:     gloss.NewStyle(),
	dim:     gloss.NewStyle(),
}

func (st styles) flag(b bool) string {
	if b {
		return st.on.Render("down")
	}
	return st.off.Render("up  ")
}

// render the snapshot as text.
func render(s snapshot, st styles) string {
	var b strings.Builder

	b.WriteString(st.heading.Render(fmt.Sprintf("  BACKEND: %s", s.backend)))
	if s.status != "" {
		b.WriteString(st.dim.Render(" | " + s.status))
	}
	b.WriteString("\n\n")

	b.WriteString(st.heading.Render(fmt.Sprintf("  KEYS (trial %d)", s.trial)))
	b.WriteString("\n")
	if len(s.keys) == 0 {
		b.WriteString(st.dim.Render("  none"))
		b.WriteString("\n")
	}
	for _, k := range s.keys {
		b.WriteString(st.label.Render(fmt.Sprintf("  %-12s", k.name)))
		b.WriteString(st.dim.Render(fmt.Sprintf(" at %9.4fs  rt %8.4fs", k.time, k.rt)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(st.heading.Render(fmt.Sprintf("  MOUSE (%s)", s.units)))
	b.WriteString("\n")
	b.WriteString(st.label.Render(fmt.Sprintf("  pos    %9.3f %9.3f", s.pos.X, s.pos.Y)))
	b.WriteString("\n")
	b.WriteString(st.label.Render(fmt.Sprintf("  wheel  %9.1f %9.1f", s.wheel.X, s.wheel.Y)))
	b.WriteString("\n")
	for i, mb := range userinput.AllMouseButtons {
		b.WriteString(st.label.Render(fmt.Sprintf("  %-6s ", mb)))
		b.WriteString(st.flag(s.buttons[i]))
		b.WriteString(st.dim.Render(fmt.Sprintf(" %8.4fs", s.times[i])))
		b.WriteString("\n")
	}
	b.WriteString(st.label.Render(fmt.Sprintf("  moved  %-5v last move %8.4fs  cursor %s", s.moved, s.moveTime, s.visible)))
	b.WriteString("\n\n")

	b.WriteString(st.heading.Render(fmt.Sprintf("  JOYSTICKS (%d)", len(s.joysticks))))
	b.WriteString("\n")
	for i, j := range s.joysticks {
		b.WriteString(st.label.Render(fmt.Sprintf("  %d %s", i, j.name)))
		b.WriteString("\n")
		for a, v := range j.axes {
			b.WriteString(st.dim.Render(fmt.Sprintf("    axis %d %6.3f", a, v)))
			b.WriteString("\n")
		}
		if len(j.buttons) > 0 {
			b.WriteString(st.dim.Render("    buttons "))
			for _, d := range j.buttons {
				if d {
					b.WriteString(st.on.Render("*"))
				} else {
					b.WriteString(st.off.Render("."))
				}
			}
			b.WriteString("\n")
		}
		for h, d := range j.hats {
			b.WriteString(st.dim.Render(fmt.Sprintf("    hat %d %v", h, d)))
			b.WriteString("\n")
		}
	}

	b.WriteString(st.dim.Render("\n  escape: quit    space: new trial\n"))

	return b.String()
}

// model is the bubbletea model for the probe.
type model struct {
	snaps chan snapshot
	snap  snapshot
}

// wait for the next snapshot. a closed channel ends the program.
func (m model) wait() tea.Cmd {
	return func() tea.Msg {
		s, ok := <-m.snaps
		if !ok {
			return tea.Quit()
		}
		return s
	}
}

func (m model) Init() tea.Cmd {
	return m.wait()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
	case snapshot:
		m.snap = msg
		if msg.quit {
			return m, tea.Quit
		}
		return m, m.wait()
	}
	return m, nil
}

func (m model) View() string {
	return render(m.snap, colour)
}

// draw the snapshot on a tcell screen. used when the terminal is also the
// input backend.
func draw(screen tcell.Screen, s snapshot) {
	screen.Clear()
	for y, l := range strings.Split(render(s, plain), "\n") {
		for x, r := range []rune(l) {
			screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		}
	}
	screen.Show()
}
