// Package display renders configuration sections for the terminal.
//
// Rendering is a pure function of the section; it never touches the document
// and can be swapped or dropped without affecting the editors.
package display

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/chezconf/pkg/document"
)

var (
	keyColor = lipgloss.AdaptiveColor{
		Light: "#17A2B8",
		Dark:  "#4DD0E1",
	}

	keyStyle = lipgloss.NewStyle().
			Foreground(keyColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DC3545")).
			Bold(true)
)

var keyIcons = map[string]string{
	"url":      "🌐 ",
	"username": "👤 ",
	"token":    "🔑 ",
	"http":     "📡 ",
	"https":    "🔒 ",
	"noProxy":  "🚫 ",
	"machines": "🖥️ ",
	"proxy":    "🌐 ",
}

const defaultIcon = "📄 "

// Renderer turns document tables into indented, iconized text.
type Renderer struct {
	color bool
}

// NewRenderer creates a renderer; color enables lipgloss/pterm styling.
func NewRenderer(color bool) *Renderer {
	return &Renderer{color: color}
}

// DetectColor reports whether output should be styled.
func DetectColor(output *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// Heading renders a section heading.
func (r *Renderer) Heading(title string) string {
	if !r.color {
		return title
	}
	return pterm.Bold.Sprint(title)
}

// Error renders an error line.
func (r *Renderer) Error(msg string) string {
	if !r.color {
		return msg
	}
	return errorStyle.Render(msg)
}

// Render renders a section as a tree, one key per line.
func (r *Renderer) Render(section *document.Table) string {
	var b strings.Builder
	r.write(&b, section, 0)
	return b.String()
}

func (r *Renderer) write(b *strings.Builder, value any, indent int) {
	spacer := strings.Repeat("  ", indent)
	switch v := value.(type) {
	case *document.Table:
		for _, k := range v.Keys() {
			child, _ := v.Get(k)
			fmt.Fprintf(b, "%s%s%s:\n", spacer, icon(k, child), r.key(k))
			r.write(b, child, indent+1)
		}
	case []*document.Table:
		for i, t := range v {
			fmt.Fprintf(b, "%s🔢 Entry %d:\n", spacer, i+1)
			r.write(b, t, indent+1)
		}
	case []any:
		for i, e := range v {
			fmt.Fprintf(b, "%s🔢 Entry %d:\n", spacer, i+1)
			r.write(b, e, indent+1)
		}
	default:
		fmt.Fprintf(b, "%s- %v\n", spacer, v)
	}
}

func (r *Renderer) key(k string) string {
	if !r.color {
		return k
	}
	return keyStyle.Render(k)
}

func icon(key string, value any) string {
	if key == "enabled" {
		if enabled, _ := value.(bool); enabled {
			return "✅ "
		}
		return "❌ "
	}
	if i, ok := keyIcons[key]; ok {
		return i
	}
	return defaultIcon
}
