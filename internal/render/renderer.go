package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"

	"github.com/yigit/passboard/internal/app/models"
)

// Renderer writes a filtered record sequence. An empty sequence produces the
// NoResults indicator instead of a table.
type Renderer interface {
	Render(w io.Writer, records []models.Record) error
}

// New returns the renderer for a format name: "json" or anything else for text.
func New(format string) Renderer {
	if strings.EqualFold(format, "json") {
		return JSONRenderer{}
	}
	return NewTextRenderer()
}

// TextRenderer draws an aligned text table.
type TextRenderer struct {
	header lipgloss.Style
	cell   lipgloss.Style
	sep    lipgloss.Style
}

// NewTextRenderer creates a TextRenderer with the default styles.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{
		header: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		cell:   lipgloss.NewStyle().Padding(0, 1),
		sep:    lipgloss.NewStyle().Faint(true),
	}
}

// Render implements Renderer.
func (t *TextRenderer) Render(w io.Writer, records []models.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, NoResults)
		return err
	}

	rows := Rows(records)
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = r.Cells()
	}

	widths := make([]int, len(Headers))
	for i, h := range Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range cells {
		for i, c := range row {
			if w := lipgloss.Width(c); w > widths[i] {
				widths[i] = w
			}
		}
	}
	// padding is counted inside the style width
	for i := range widths {
		widths[i] += 2
	}

	var sb strings.Builder
	t.writeLine(&sb, Headers, widths, t.header)

	total := 0
	for _, w := range widths {
		total += w
	}
	sb.WriteString(t.sep.Render(strings.Repeat("-", total+len(widths)-1)))
	sb.WriteString("\n")

	for _, row := range cells {
		t.writeLine(&sb, row, widths, t.cell)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (t *TextRenderer) writeLine(sb *strings.Builder, cells []string, widths []int, style lipgloss.Style) {
	for i, c := range cells {
		sb.WriteString(style.Width(widths[i]).Render(c))
		if i < len(cells)-1 {
			sb.WriteString(t.sep.Render("|"))
		}
	}
	sb.WriteString("\n")
}

// JSONRenderer writes the rows as a JSON document.
type JSONRenderer struct{}

type jsonResult struct {
	Rows    []Row  `json:"rows,omitempty"`
	Message string `json:"message,omitempty"`
}

// Render implements Renderer.
func (JSONRenderer) Render(w io.Writer, records []models.Record) error {
	result := jsonResult{Rows: Rows(records)}
	if len(records) == 0 {
		result = jsonResult{Message: NoResults}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
