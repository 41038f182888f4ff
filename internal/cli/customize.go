package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gridboard/gridboard/pkg/component"
	"github.com/gridboard/gridboard/pkg/controller"
	"github.com/gridboard/gridboard/pkg/template"
)

// Customize styles
var (
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	normalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	dirtyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// Gesture step sizes in pixels.
const (
	moveStep   = 24
	resizeStep = 24
)

// customizeCommand creates the customize command for interactive layout editing.
func (c *CLI) customizeCommand() *cobra.Command {
	var (
		key   string
		width int
	)

	cmd := &cobra.Command{
		Use:   "customize",
		Short: "Interactively customize a saved layout",
		Long: `Interactively customize a saved layout.

Opens a customization session against the configured store. Edits are
autosaved after a short pause; Esc discards unsaved changes and exits.

Keys:
  tab/shift+tab  select component
  arrows         move selected component
  +/-            grow/shrink selected component
  a              add a widget
  c              duplicate selected
  x              remove selected
  v              toggle visibility
  r              re-flow the layout
  s              save now
  esc            discard pending changes and quit
  q              save and quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			store, err := newStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			ctrl := controller.New(store, key, controller.Options{
				Grid:           cfg.GridSettings(),
				ContainerWidth: width,
				AutosaveDelay:  cfg.Autosave.Delay(),
				Logger:         c.Logger,
			})
			if err := ctrl.Load(cmd.Context()); err != nil {
				return err
			}
			if len(ctrl.Components()) == 0 {
				seed, err := template.Builtin().Instantiate(template.NameDefault)
				if err != nil {
					return err
				}
				ctrl.UseComponents(seed)
			}
			ctrl.StartCustomizing()

			model := newCustomizeModel(ctrl, width)
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "default", "layout key in the store")
	cmd.Flags().IntVarP(&width, "width", "w", 1280, "container width in pixels")

	return cmd
}

// =============================================================================
// customizeModel - Interactive layout editing
// =============================================================================

// customizeModel is the bubbletea model for the customization session.
type customizeModel struct {
	ctrl   *controller.Controller
	width  int
	cursor int
	status string
	err    error
}

func newCustomizeModel(ctrl *controller.Controller, width int) customizeModel {
	return customizeModel{ctrl: ctrl, width: width}
}

func (m customizeModel) Init() tea.Cmd {
	return nil
}

// savedMsg reports the outcome of an explicit save.
type savedMsg struct{ err error }

func (m customizeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.status = "saved"
		}
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		m.err = nil
		switch msg.String() {
		case "ctrl+c", "esc":
			m.ctrl.StopCustomizing()
			return m, tea.Quit

		case "q":
			ctrl := m.ctrl
			return m, tea.Sequence(
				func() tea.Msg { return savedMsg{err: ctrl.Save(context.Background())} },
				tea.Quit,
			)

		case "tab":
			if n := len(m.components()); n > 0 {
				m.cursor = (m.cursor + 1) % n
			}
		case "shift+tab":
			if n := len(m.components()); n > 0 {
				m.cursor = (m.cursor - 1 + n) % n
			}

		case "up", "down", "left", "right":
			m.moveSelected(msg.String())
		case "+", "=":
			m.resizeSelected(resizeStep)
		case "-":
			m.resizeSelected(-resizeStep)

		case "a":
			added := m.ctrl.Add(component.Component{
				Kind:      component.KindWidget,
				Title:     "New widget",
				Draggable: true,
				Resizable: true,
				Visible:   true,
			})
			m.selectByID(added.ID)
			m.status = "added " + added.DisplayTitle()
		case "c":
			if sel, ok := m.selected(); ok {
				dup, err := m.ctrl.Duplicate(sel.ID)
				if err != nil {
					m.err = err
					break
				}
				m.selectByID(dup.ID)
				m.status = "duplicated " + sel.DisplayTitle()
			}
		case "x":
			if sel, ok := m.selected(); ok {
				if err := m.ctrl.Remove(sel.ID); err != nil {
					m.err = err
					break
				}
				if n := len(m.components()); m.cursor >= n && n > 0 {
					m.cursor = n - 1
				}
				m.status = "removed " + sel.DisplayTitle()
			}
		case "v":
			if sel, ok := m.selected(); ok {
				m.err = m.ctrl.ToggleVisibility(sel.ID)
			}
		case "r":
			m.ctrl.Reflow(m.width)
			m.status = "re-flowed"
		case "s":
			ctrl := m.ctrl
			return m, func() tea.Msg { return savedMsg{err: ctrl.Save(context.Background())} }
		}
	}
	return m, nil
}

func (m *customizeModel) components() []component.Component {
	return m.ctrl.Components()
}

func (m *customizeModel) selected() (component.Component, bool) {
	comps := m.components()
	if m.cursor < 0 || m.cursor >= len(comps) {
		return component.Component{}, false
	}
	return comps[m.cursor], true
}

func (m *customizeModel) selectByID(id string) {
	for i, comp := range m.components() {
		if comp.ID == id {
			m.cursor = i
			return
		}
	}
}

func (m *customizeModel) moveSelected(key string) {
	sel, ok := m.selected()
	if !ok || !sel.Draggable {
		return
	}
	pos := sel.Position
	switch key {
	case "up":
		pos.Y -= moveStep
	case "down":
		pos.Y += moveStep
	case "left":
		pos.X -= moveStep
	case "right":
		pos.X += moveStep
	}
	m.err = m.ctrl.Move(sel.ID, pos, sel.Size)
}

func (m *customizeModel) resizeSelected(delta int) {
	sel, ok := m.selected()
	if !ok || !sel.Resizable {
		return
	}
	size := sel.Size
	size.Width += delta
	size.Height += delta
	m.err = m.ctrl.Resize(sel.ID, size)
}

func (m customizeModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("gridboard customize"))
	b.WriteString("\n\n")

	for i, comp := range m.components() {
		line := fmt.Sprintf("%-24s %-8s %4d,%-4d %4dx%-4d",
			comp.DisplayTitle(), comp.Kind,
			comp.Position.X, comp.Position.Y,
			comp.Size.Width, comp.Size.Height)
		if !comp.Visible {
			line += "  (hidden)"
		}
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("→ " + line))
		} else if comp.Visible {
			b.WriteString(normalStyle.Render("  " + line))
		} else {
			b.WriteString(dimStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
	case m.ctrl.Dirty():
		b.WriteString(dirtyStyle.Render("unsaved changes"))
	case m.status != "":
		b.WriteString(dimStyle.Render(m.status))
	default:
		b.WriteString(dimStyle.Render("all changes saved"))
	}
	if m.ctrl.ResidualOverlap() {
		b.WriteString(dimStyle.Render("  residual overlap"))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("tab select · arrows move · +/- resize · a add · c copy · x remove · v hide · r reflow · s save · q quit"))

	return b.String()
}
