package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/clambin/ledstrip/internal/button"
	"github.com/clambin/ledstrip/internal/controller"
	"github.com/clambin/ledstrip/internal/pattern"
	"github.com/clambin/ledstrip/internal/strip"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#555"))
)

const help = "c: click · d: double click · t: triple click · o: on/off · l: start/stop long press · q: quit"

// preview runs the controller inside the terminal UI's event loop. Keys stand in for the button: they are queued
// and only applied at the start of the next frame.
type preview struct {
	controller *controller.Controller
	strip      *strip.Terminal
	buttons    *button.Queue
	holding    bool
}

type frameMsg struct{}

func newPreview(c *controller.Controller, s *strip.Terminal, q *button.Queue) *preview {
	return &preview{controller: c, strip: s, buttons: q}
}

func (p *preview) Init() tea.Cmd {
	return p.frame()
}

func (p *preview) frame() tea.Cmd {
	return tea.Tick(p.controller.Frame(), func(time.Time) tea.Msg { return frameMsg{} })
}

func (p *preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		p.controller.Periodic()
		return p, p.frame()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return p, tea.Quit
		case "c", " ":
			p.buttons.Push(button.Event{Gesture: button.Click, Clicks: 1})
		case "d":
			p.buttons.Push(button.Event{Gesture: button.DoubleClick, Clicks: 2})
		case "t":
			p.buttons.Push(button.Event{Gesture: button.MultiClick, Clicks: 3})
		case "o":
			p.buttons.Push(button.Event{Gesture: button.MultiClick, Clicks: 4})
		case "l":
			gesture := button.LongPressStart
			if p.holding {
				gesture = button.LongPressStop
			}
			p.holding = !p.holding
			p.buttons.Push(button.Event{Gesture: gesture})
		}
	}
	return p, nil
}

func (p *preview) View() string {
	state := p.controller.State
	power := "on"
	if !state.Enabled {
		power = "off"
	}
	advance := "manual"
	if state.Automatic {
		advance = "automatic"
	}
	status := fmt.Sprintf("%s · %s/%s · %s · brightness %d",
		power, state.Family, pattern.Name(state.Family, state.Pattern), advance, state.Brightness,
	)
	if p.holding {
		status += " · adjusting"
	}
	return p.strip.String() + "\n" + statusStyle.Render(status) + "\n" + helpStyle.Render(help) + "\n"
}
