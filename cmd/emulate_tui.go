// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/glintwerk/pendant/pkg/emulator"
	"github.com/glintwerk/pendant/pkg/pendant"
)

// How long the emulated button is held for a tap and for a long press.
// The long hold must exceed LongPressTicks tick periods.
const (
	tapHold  = 120 * time.Millisecond
	longHold = 2600 * time.Millisecond
)

type emulateTickMsg time.Time

// emulateModel is the Bubble Tea model for the emulated pendant
type emulateModel struct {
	dev    *pendant.Device
	matrix *emulator.Matrix
	button *emulator.Button

	input   textinput.Model
	focused bool // textinput has focus

	width    int
	height   int
	quitting bool
}

func newEmulateModel(dev *pendant.Device, matrix *emulator.Matrix, button *emulator.Button) emulateModel {
	ti := textinput.New()
	ti.Placeholder = "link bytes (enter sends + CR)"
	ti.CharLimit = 128
	ti.Width = 40

	return emulateModel{
		dev:    dev,
		matrix: matrix,
		button: button,
		input:  ti,
	}
}

func (m emulateModel) Init() tea.Cmd {
	return emulateTick()
}

func emulateTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return emulateTickMsg(t)
	})
}

func (m emulateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case emulateTickMsg:
		return m, emulateTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "ctrl+r":
			// abort byte: link reset
			m.dev.Receive(27)
			return m, nil

		case "tab":
			m.focused = !m.focused
			if m.focused {
				m.input.Focus()
			} else {
				m.input.Blur()
			}
			return m, nil
		}

		if m.focused {
			switch msg.String() {
			case "esc":
				m.focused = false
				m.input.Blur()
				return m, nil
			case "enter":
				for _, b := range []byte(m.input.Value()) {
					m.dev.Receive(b)
				}
				m.dev.Receive('\r')
				m.input.SetValue("")
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "s", " ":
			m.pressFor(tapHold)
			return m, nil
		case "l":
			m.pressFor(longHold)
			return m, nil
		}
	}

	return m, nil
}

// pressFor presses the emulated button and schedules its release. The
// release runs off the UI loop; the debouncer samples the line on its own
// tick cadence either way.
func (m *emulateModel) pressFor(hold time.Duration) {
	m.button.Press()
	btn := m.button
	time.AfterFunc(hold, btn.Release)
}

func (m emulateModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	matrixStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	pixelOn := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	pixelOff := lipgloss.NewStyle().Foreground(lipgloss.Color("236"))

	var s strings.Builder
	s.WriteString(titleStyle.Render("Glint - Emulated Pendant"))
	s.WriteString("\n\n")

	// Matrix: rows top to bottom, bit 0 is the top row of each column.
	visible := m.matrix.Visible()
	var rows []string
	for r := 0; r < emulator.Rows; r++ {
		var row strings.Builder
		for c := 0; c < emulator.Cols; c++ {
			if visible[c]&(1<<r) != 0 {
				row.WriteString(pixelOn.Render("██"))
			} else {
				row.WriteString(pixelOff.Render("··"))
			}
		}
		rows = append(rows, row.String())
	}
	s.WriteString(matrixStyle.Render(strings.Join(rows, "\n")))
	s.WriteString("\n\n")

	st := m.dev.Status()
	s.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Protocol:"), valueStyle.Render(st.Protocol)))
	s.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Mode:"), valueStyle.Render(st.Mode.String())))
	s.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Cursors:"),
		valueStyle.Render(fmt.Sprintf("play %d, program %d", st.MessageCursor, st.ProgrammingCursor))))
	s.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Link:"),
		valueStyle.Render(fmt.Sprintf("%d bytes, %d programmed, %d resets",
			st.Stats.BytesReceived, st.Stats.BytesProgrammed, st.Stats.Resets))))
	s.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Button:"),
		valueStyle.Render(fmt.Sprintf("%d short, %d long", st.Stats.ShortPresses, st.Stats.LongPresses))))
	s.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Window:"),
		valueStyle.Render(fmt.Sprintf("%d / %d columns", m.matrix.Window(), len(m.matrix.Columns())))))

	s.WriteString("\n")
	s.WriteString(m.input.View())
	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("s/space: tap button  l: hold button  tab: link input  ctrl+r: reset  q: quit"))
	s.WriteString("\n")

	return s.String()
}
