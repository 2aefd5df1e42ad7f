// Package export writes a Preview to a PDF file, mirroring the clip-export
// feature of the desktop app. Layout is intentionally simple: a monospaced
// body with per-kind coloring, bounded by the full display budget.
package export

import (
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/hyperifyio/cliplens/internal/preview"
)

// PDF renders a preview to outPath.
func PDF(p preview.Preview, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Courier", "", 10)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "cliplens preview ("+string(p.Kind)+")", "", 1, "L", false, 0, "")
	pdf.SetFont("Courier", "", 10)
	pdf.Ln(2)

	switch {
	case p.Diff != nil:
		writeDiff(pdf, p.Diff)
	case p.Table != nil:
		writeTable(pdf, p.Table)
	case p.JSON != nil:
		for _, line := range p.JSON.Lines {
			writeLine(pdf, line.Raw)
		}
	case p.Contact != nil:
		pdf.WriteLinkString(5, p.Contact.Value, p.Contact.Href)
		pdf.Ln(5)
	case p.Code != nil:
		for _, line := range strings.Split(p.Code.Content, "\n") {
			writeLine(pdf, line)
		}
	case p.Markdown != nil:
		for _, line := range strings.Split(p.Markdown.Content, "\n") {
			writeLine(pdf, line)
		}
	case p.LaTeX != nil:
		for _, seg := range p.LaTeX.Segments {
			writeLine(pdf, seg.Content)
		}
	case p.HTML != nil:
		for _, line := range strings.Split(p.HTML.Sanitized, "\n") {
			writeLine(pdf, line)
		}
	case p.Files != nil:
		for _, path := range p.Files.Paths {
			writeLine(pdf, path)
		}
	case p.Image != nil:
		writeLine(pdf, p.Image.Path)
	case p.Text != nil:
		for _, line := range strings.Split(p.Text.Content, "\n") {
			writeLine(pdf, line)
		}
	}
	return pdf.OutputFileAndClose(outPath)
}

func writeLine(pdf *gofpdf.Fpdf, s string) {
	if strings.TrimSpace(s) == "" {
		pdf.Ln(4)
		return
	}
	pdf.MultiCell(0, 4.5, s, "", "L", false)
}

func writeDiff(pdf *gofpdf.Fpdf, d *preview.DiffPreview) {
	for _, line := range d.Lines {
		switch line.Kind {
		case preview.DiffAddition:
			pdf.SetTextColor(0, 128, 0)
		case preview.DiffDeletion:
			pdf.SetTextColor(180, 0, 0)
		case preview.DiffHunk, preview.DiffMeta:
			pdf.SetTextColor(100, 100, 100)
		default:
			pdf.SetTextColor(0, 0, 0)
		}
		writeLine(pdf, line.Text)
	}
	pdf.SetTextColor(0, 0, 0)
}

func writeTable(pdf *gofpdf.Fpdf, t *preview.TablePreview) {
	pdf.SetFont("Courier", "B", 10)
	writeLine(pdf, strings.Join(t.Header, " | "))
	pdf.SetFont("Courier", "", 10)
	for _, row := range t.Rows {
		writeLine(pdf, strings.Join(row, " | "))
	}
}
