package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gridboard/gridboard/pkg/component"
)

var (
	colorBorder = lipgloss.Color("240")
	colorTitle  = lipgloss.Color("86")
	colorDim    = lipgloss.Color("244")
	colorBars   = lipgloss.Color("75")

	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorTitle)
	styleDim   = lipgloss.NewStyle().Foreground(colorDim)
	styleBars  = lipgloss.NewStyle().Foreground(colorBars)
)

// frame styles a component box at the given inner dimensions.
func frame(title, body string, width, height int) string {
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}
	content := styleTitle.Render(title)
	if body != "" {
		content += "\n" + body
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Width(width - 2).
		Height(height - 2).
		Render(content)
}

// boxRenderer is the generic fallback: a plain titled frame.
type boxRenderer struct{}

func (boxRenderer) Render(c component.Component, width, height int) string {
	return frame(c.DisplayTitle(), styleDim.Render(c.Kind), width, height)
}

// widgetRenderer draws a summary widget with its config source, if set.
type widgetRenderer struct{}

func (widgetRenderer) Render(c component.Component, width, height int) string {
	body := ""
	if src, ok := c.Config["source"].(string); ok {
		body = styleDim.Render("source: " + src)
	}
	return frame(c.DisplayTitle(), body, width, height)
}

// chartRenderer draws a placeholder bar series sized to the box.
type chartRenderer struct{}

var chartGlyphs = []rune("▁▂▃▄▅▆▇█")

func (chartRenderer) Render(c component.Component, width, height int) string {
	inner := width - 4
	if inner < 1 {
		inner = 1
	}
	var b strings.Builder
	for i := 0; i < inner; i++ {
		b.WriteRune(chartGlyphs[(i*3+len(c.ID))%len(chartGlyphs)])
	}
	return frame(c.DisplayTitle(), styleBars.Render(b.String()), width, height)
}

// tableRenderer draws a header rule and a row-count hint.
type tableRenderer struct{}

func (tableRenderer) Render(c component.Component, width, height int) string {
	inner := width - 4
	if inner < 1 {
		inner = 1
	}
	body := styleDim.Render(strings.Repeat("─", inner))
	if limit, ok := c.Config["limit"]; ok {
		body += "\n" + styleDim.Render(fmt.Sprintf("%v rows", limit))
	}
	return frame(c.DisplayTitle(), body, width, height)
}
