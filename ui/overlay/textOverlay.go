package overlay

import (
	"github.com/charmbracelet/lipgloss"
)

// TextOverlay is a bordered box with a title and a block of text, dismissed
// with any key.
type TextOverlay struct {
	// Title displayed at the top
	title string
	// Content is the pre-rendered body
	content string

	width int
}

// NewTextOverlay creates a new text overlay
func NewTextOverlay(title, content string) *TextOverlay {
	return &TextOverlay{
		title:   title,
		content: content,
	}
}

// SetContent replaces the body
func (t *TextOverlay) SetContent(content string) {
	t.content = content
}

// SetWidth sets the overlay width
func (t *TextOverlay) SetWidth(width int) {
	t.width = width
}

// Render renders the text overlay
func (t *TextOverlay) Render() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("62"))

	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1)
	if t.width > 0 {
		boxStyle = boxStyle.Width(t.width)
	}

	body := titleStyle.Render(t.title) + "\n\n" + t.content + "\n\n" + hintStyle.Render("press any key to close")
	return boxStyle.Render(body)
}
