// Package render turns a Preview into styled terminal output for the CLI.
// Styling is best-effort: any renderer failure falls back to plain text so
// the command never errors out over cosmetics.
package render

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/glamour"

	"github.com/hyperifyio/cliplens/internal/preview"
)

const (
	ansiReset = "\x1b[0m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiCyan  = "\x1b[36m"
	ansiDim   = "\x1b[2m"
	ansiBold  = "\x1b[1m"
)

// Terminal renders a preview as ANSI-styled text.
func Terminal(p preview.Preview) string {
	switch {
	case p.Markdown != nil:
		return markdown(p.Markdown)
	case p.Code != nil:
		return code(p.Code)
	case p.Diff != nil:
		return diff(p.Diff)
	case p.JSON != nil:
		return jsonLines(p.JSON)
	case p.Table != nil:
		return table(p.Table)
	case p.LaTeX != nil:
		return latex(p.LaTeX)
	case p.Contact != nil:
		return p.Contact.Value + " " + ansiDim + "<" + p.Contact.Href + ">" + ansiReset
	case p.HTML != nil:
		return p.HTML.Sanitized
	case p.Files != nil:
		return strings.Join(p.Files.Paths, "\n")
	case p.Image != nil:
		return ansiDim + "[image] " + p.Image.Path + ansiReset
	case p.Text != nil:
		return p.Text.Content
	default:
		return ""
	}
}

func markdown(m *preview.MarkdownPreview) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return m.Content
	}
	styled, err := r.Render(m.Content)
	if err != nil {
		return m.Content
	}
	return styled
}

func code(c *preview.CodePreview) string {
	language := c.Language
	if language == "" {
		language = "text"
	}
	var b strings.Builder
	if err := quick.Highlight(&b, c.Content, language, "terminal256", "monokai"); err != nil {
		return c.Content
	}
	return b.String()
}

func diff(d *preview.DiffPreview) string {
	var b strings.Builder
	for _, line := range d.Lines {
		switch line.Kind {
		case preview.DiffAddition:
			b.WriteString(ansiGreen + line.Text + ansiReset)
		case preview.DiffDeletion:
			b.WriteString(ansiRed + line.Text + ansiReset)
		case preview.DiffHunk:
			b.WriteString(ansiCyan + line.Text + ansiReset)
		case preview.DiffMeta:
			b.WriteString(ansiDim + line.Text + ansiReset)
		default:
			b.WriteString(line.Text)
		}
		b.WriteString("\n")
	}
	if d.Truncated {
		b.WriteString(ansiDim + "…" + ansiReset + "\n")
	}
	return b.String()
}

func jsonLines(j *preview.JSONPreview) string {
	var b strings.Builder
	for _, line := range j.Lines {
		if line.Key != "" {
			indent := line.Raw[:strings.Index(line.Raw, `"`)]
			b.WriteString(indent + ansiCyan + `"` + line.Key + `"` + ansiReset + ": " + line.Value)
		} else {
			b.WriteString(line.Raw)
		}
		b.WriteString("\n")
	}
	if j.Truncated {
		b.WriteString(fmt.Sprintf(ansiDim+"… %d lines total"+ansiReset+"\n", j.TotalLines))
	}
	return b.String()
}

func table(t *preview.TablePreview) string {
	var b strings.Builder
	b.WriteString(ansiBold + strings.Join(t.Header, " | ") + ansiReset + "\n")
	for _, row := range t.Rows {
		b.WriteString(strings.Join(row, " | ") + "\n")
	}
	if t.Remaining > 0 {
		b.WriteString(fmt.Sprintf(ansiDim+"… %d more rows"+ansiReset+"\n", t.Remaining))
	}
	return b.String()
}

func latex(l *preview.LaTeXPreview) string {
	var b strings.Builder
	for _, seg := range l.Segments {
		switch seg.Type {
		case preview.MathBlock:
			b.WriteString(ansiCyan + "$$ " + seg.Content + " $$" + ansiReset + "\n")
		case preview.MathInline:
			b.WriteString(ansiCyan + "$" + seg.Content + "$" + ansiReset)
		default:
			b.WriteString(seg.Content)
		}
	}
	if l.Truncated {
		b.WriteString("\n" + ansiDim + "…" + ansiReset)
	}
	return b.String()
}
