package directory

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rotisserie/eris"
)

// Source yields the raw directory text, page-concatenated.
type Source interface {
	Text(ctx context.Context) (string, error)
}

// NewSource picks a source by file extension: PDFs go through the
// configured extraction provider, anything else is read as plain text.
func NewSource(path, provider, pdfToTextPath string) Source {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return &PDFFile{Path: path, Provider: provider, PdfToTextPath: pdfToTextPath}
	}
	return &TextFile{Path: path}
}

// TextFile reads an already-extracted directory text dump.
type TextFile struct {
	Path string
}

func (t *TextFile) Text(_ context.Context) (string, error) {
	b, err := os.ReadFile(t.Path)
	if err != nil {
		return "", eris.Wrap(err, "directory: read text file")
	}
	return string(b), nil
}

// PDFFile extracts text from a PDF directory. Provider "local" (default)
// shells out to pdftotext -layout, which preserves the line structure the
// record grammar depends on; "native" uses a pure-Go reader and is the
// fallback when pdftotext is not installed.
type PDFFile struct {
	Path          string
	Provider      string
	PdfToTextPath string
}

func (p *PDFFile) Text(ctx context.Context) (string, error) {
	switch p.Provider {
	case "native":
		return p.nativeText()
	case "local", "":
		return p.localText(ctx)
	default:
		return "", eris.Errorf("directory: unknown pdf provider %q", p.Provider)
	}
}

// localText runs pdftotext -layout and returns stdout.
func (p *PDFFile) localText(ctx context.Context) (string, error) {
	bin := p.PdfToTextPath
	if bin == "" {
		bin = "pdftotext"
	}
	cmd := exec.CommandContext(ctx, bin, "-layout", p.Path, "-")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", eris.Wrapf(err, "directory: pdftotext failed for %s: %s", p.Path, stderr.String())
	}
	return stdout.String(), nil
}

// nativeText extracts page text with the pure-Go reader.
func (p *PDFFile) nativeText() (string, error) {
	f, r, err := pdf.Open(p.Path)
	if err != nil {
		return "", eris.Wrapf(err, "directory: open pdf %s", p.Path)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page loses its records, not the run.
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}
